// Package markdown turns markdown text into a slide-oriented document model.
//
// Level 1 and 2 headings open new slides. Everything between two slide
// headings becomes content of the slide above it: sub-headings, paragraphs,
// lists, code blocks, quotes, images and tables.
package markdown

import (
	"fmt"
	"strings"

	"github.com/starford/sowilo/internal/apperr"
)

// Parse converts markdown source into a slide document.
func Parse(src []byte) (*Document, error) {
	events := scanEvents(src)

	doc := &Document{
		Metadata: DocumentMetadata{Title: scanTitle(events)},
		Slides:   buildSlides(events),
	}
	if len(doc.Slides) == 0 {
		return nil, fmt.Errorf("%w: no slides found in markdown document", apperr.ErrParsing)
	}
	return doc, nil
}

// scanTitle returns the text of the first level 1 heading that opens with a
// plain text run. Headings that start with inline markup are skipped.
func scanTitle(events []Event) string {
	for i, e := range events {
		if e.Kind == EventHeadingStart && e.Level == 1 && i+1 < len(events) && events[i+1].Kind == EventText {
			return events[i+1].Literal
		}
	}
	return ""
}

// buildSlides walks the event stream once, cutting a new slide at every
// level 1 or 2 heading. A slide in progress is only kept when it gained a
// title or at least one content element.
func buildSlides(events []Event) []Slide {
	var slides []Slide
	var current Slide

	i := 0
	for i < len(events) {
		e := events[i]
		switch {
		case e.Kind == EventHeadingStart && e.Level <= 2:
			if current.Title != "" || len(current.Content) > 0 {
				slides = append(slides, current)
				current = Slide{}
			}
			current.Title, i = collectHeading(events, i+1)

		case e.Kind == EventHeadingStart:
			var text string
			text, i = collectHeading(events, i+1)
			current.Content = append(current.Content, Heading{Level: e.Level, Text: text})

		case e.Kind == EventParagraphStart:
			var text string
			var images []Image
			text, images, i = collectParagraph(events, i+1)
			if strings.TrimSpace(text) != "" {
				current.Content = append(current.Content, Paragraph{Text: text})
			}
			for _, img := range images {
				current.Content = append(current.Content, img)
			}

		case e.Kind == EventListStart:
			var items []string
			items, i = collectListItems(events, i+1)
			current.Content = append(current.Content, List{Items: items, Ordered: e.Ordered})

		case e.Kind == EventCodeBlockStart:
			var lang string
			if e.Fenced {
				lang = e.Info
			}
			var code string
			code, i = collectCodeBlock(events, i+1)
			current.Content = append(current.Content, CodeBlock{Language: lang, Code: code})

		case e.Kind == EventQuoteStart:
			var text string
			text, i = collectQuote(events, i+1)
			current.Content = append(current.Content, Quote{Text: text})

		case e.Kind == EventTableStart:
			var headers []string
			var rows [][]string
			headers, rows, i = collectTable(events, i+1)
			current.Content = append(current.Content, Table{Headers: headers, Rows: rows})

		default:
			i++
		}
	}

	if current.Title != "" || len(current.Content) > 0 {
		slides = append(slides, current)
	}
	return slides
}

// collectHeading gathers the plain text of a heading, dropping inline
// markers, and returns the position after the heading's end event.
func collectHeading(events []Event, i int) (string, int) {
	var b strings.Builder
	for i < len(events) {
		e := events[i]
		i++
		switch e.Kind {
		case EventText:
			b.WriteString(e.Literal)
		case EventCode:
			b.WriteString(e.Literal)
		case EventHeadingEnd:
			return b.String(), i
		}
	}
	return b.String(), i
}

// collectParagraph rebuilds the paragraph's text with inline markup folded
// back into markdown notation. Images found inside the paragraph are lifted
// out and returned separately so they render as standalone elements.
func collectParagraph(events []Event, i int) (string, []Image, int) {
	var b strings.Builder
	var images []Image
	for i < len(events) {
		e := events[i]
		i++
		switch e.Kind {
		case EventText:
			b.WriteString(e.Literal)
		case EventCode:
			b.WriteString("`")
			b.WriteString(e.Literal)
			b.WriteString("`")
		case EventStrongStart, EventStrongEnd:
			b.WriteString("**")
		case EventEmphasisStart, EventEmphasisEnd:
			b.WriteString("*")
		case EventImage:
			images = append(images, Image{Alt: e.Alt, URL: e.URL})
		case EventParagraphEnd:
			return b.String(), images, i
		}
	}
	return b.String(), images, i
}

// collectListItems flattens the items of one list. Item boundaries flush the
// text gathered so far; paragraph events inside loose items pass through.
// A nested list's end event terminates collection early.
func collectListItems(events []Event, i int) ([]string, int) {
	var items []string
	var current strings.Builder
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			items = append(items, s)
		}
		current.Reset()
	}
	for i < len(events) {
		e := events[i]
		i++
		switch e.Kind {
		case EventItemStart, EventItemEnd:
			flush()
		case EventText:
			current.WriteString(e.Literal)
		case EventCode:
			current.WriteString("`")
			current.WriteString(e.Literal)
			current.WriteString("`")
		case EventListEnd:
			return items, i
		}
	}
	return items, i
}

// collectCodeBlock gathers the verbatim body of a code block.
func collectCodeBlock(events []Event, i int) (string, int) {
	var b strings.Builder
	for i < len(events) {
		e := events[i]
		i++
		switch e.Kind {
		case EventText:
			b.WriteString(e.Literal)
		case EventCodeBlockEnd:
			return b.String(), i
		}
	}
	return b.String(), i
}

// collectQuote gathers the text of a blockquote, keeping inline code in
// backticks.
func collectQuote(events []Event, i int) (string, int) {
	var b strings.Builder
	for i < len(events) {
		e := events[i]
		i++
		switch e.Kind {
		case EventText:
			b.WriteString(e.Literal)
		case EventCode:
			b.WriteString("`")
			b.WriteString(e.Literal)
			b.WriteString("`")
		case EventQuoteEnd:
			return b.String(), i
		}
	}
	return b.String(), i
}

// collectTable separates header cells from body rows. Cells inside the head
// section land in headers directly; body rows are kept only when they carry
// at least one cell.
func collectTable(events []Event, i int) ([]string, [][]string, int) {
	var headers []string
	var rows [][]string
	var currentRow []string
	var cell strings.Builder
	inHeader := true

	flushCell := func(dst []string) []string {
		if s := strings.TrimSpace(cell.String()); s != "" {
			dst = append(dst, s)
		}
		cell.Reset()
		return dst
	}

	for i < len(events) {
		e := events[i]
		i++
		switch e.Kind {
		case EventTableHeadStart:
			inHeader = true
		case EventTableHeadEnd:
			headers = flushCell(headers)
			headers = append(headers, currentRow...)
			currentRow = nil
			inHeader = false
		case EventTableRowStart:
			currentRow = nil
		case EventTableRowEnd:
			currentRow = flushCell(currentRow)
			if !inHeader && len(currentRow) > 0 {
				rows = append(rows, currentRow)
				currentRow = nil
			}
		case EventTableCellStart:
			cell.Reset()
		case EventTableCellEnd:
			s := strings.TrimSpace(cell.String())
			if inHeader {
				headers = append(headers, s)
			} else {
				currentRow = append(currentRow, s)
			}
			cell.Reset()
		case EventText:
			cell.WriteString(e.Literal)
		case EventTableEnd:
			return headers, rows, i
		}
	}
	return headers, rows, i
}
