package markdown

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// EventKind enumerates the flat event vocabulary the segmenter walks.
type EventKind int

const (
	EventText EventKind = iota
	EventCode
	EventHeadingStart
	EventHeadingEnd
	EventParagraphStart
	EventParagraphEnd
	EventStrongStart
	EventStrongEnd
	EventEmphasisStart
	EventEmphasisEnd
	EventListStart
	EventListEnd
	EventItemStart
	EventItemEnd
	EventCodeBlockStart
	EventCodeBlockEnd
	EventQuoteStart
	EventQuoteEnd
	EventImage
	EventTableStart
	EventTableEnd
	EventTableHeadStart
	EventTableHeadEnd
	EventTableRowStart
	EventTableRowEnd
	EventTableCellStart
	EventTableCellEnd
)

// Event is one entry in the linearized stream. Only the fields that apply to
// Kind are populated.
type Event struct {
	Kind    EventKind
	Literal string // EventText, EventCode
	Level   int    // EventHeadingStart
	Ordered bool   // EventListStart
	Fenced  bool   // EventCodeBlockStart
	Info    string // EventCodeBlockStart
	Alt     string // EventImage
	URL     string // EventImage
}

// scanEvents parses src with the common markdown extensions (tables, fenced
// code, strikethrough) and flattens the tree into start/end events. Inline
// containers that only decorate text, links and strikethrough, are
// transparent: their children pass straight through.
func scanEvents(src []byte) []Event {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(src)

	var events []Event
	push := func(e Event) { events = append(events, e) }

	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Heading:
			if entering {
				push(Event{Kind: EventHeadingStart, Level: n.Level})
			} else {
				push(Event{Kind: EventHeadingEnd})
			}
		case *ast.Paragraph:
			if entering {
				push(Event{Kind: EventParagraphStart})
			} else {
				push(Event{Kind: EventParagraphEnd})
			}
		case *ast.Text:
			push(Event{Kind: EventText, Literal: string(n.Literal)})
		case *ast.Code:
			push(Event{Kind: EventCode, Literal: string(n.Literal)})
		case *ast.Strong:
			if entering {
				push(Event{Kind: EventStrongStart})
			} else {
				push(Event{Kind: EventStrongEnd})
			}
		case *ast.Emph:
			if entering {
				push(Event{Kind: EventEmphasisStart})
			} else {
				push(Event{Kind: EventEmphasisEnd})
			}
		case *ast.List:
			if entering {
				push(Event{Kind: EventListStart, Ordered: n.ListFlags&ast.ListTypeOrdered != 0})
			} else {
				push(Event{Kind: EventListEnd})
			}
		case *ast.ListItem:
			if entering {
				push(Event{Kind: EventItemStart})
			} else {
				push(Event{Kind: EventItemEnd})
			}
		case *ast.CodeBlock:
			// Leaf in the tree; re-expanded into start/text/end so the
			// segmenter sees one shape for every block construct.
			push(Event{Kind: EventCodeBlockStart, Fenced: n.IsFenced, Info: string(n.Info)})
			push(Event{Kind: EventText, Literal: string(n.Literal)})
			push(Event{Kind: EventCodeBlockEnd})
		case *ast.BlockQuote:
			if entering {
				push(Event{Kind: EventQuoteStart})
			} else {
				push(Event{Kind: EventQuoteEnd})
			}
		case *ast.Image:
			// Emitted as one atomic event; the children carry the alt text.
			if entering {
				push(Event{Kind: EventImage, Alt: childText(n), URL: string(n.Destination)})
				return ast.SkipChildren
			}
		case *ast.Table:
			if entering {
				push(Event{Kind: EventTableStart})
			} else {
				push(Event{Kind: EventTableEnd})
			}
		case *ast.TableHeader:
			if entering {
				push(Event{Kind: EventTableHeadStart})
			} else {
				push(Event{Kind: EventTableHeadEnd})
			}
		case *ast.TableRow:
			if entering {
				push(Event{Kind: EventTableRowStart})
			} else {
				push(Event{Kind: EventTableRowEnd})
			}
		case *ast.TableCell:
			if entering {
				push(Event{Kind: EventTableCellStart})
			} else {
				push(Event{Kind: EventTableCellEnd})
			}
		case *ast.Hardbreak:
			push(Event{Kind: EventText, Literal: "\n"})
		}
		return ast.GoToNext
	})

	return events
}

// childText concatenates the literal text beneath a node.
func childText(node ast.Node) string {
	var b strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Literal)
		case *ast.Code:
			b.Write(t.Literal)
		}
		return ast.GoToNext
	})
	return b.String()
}
