package markdown

// Document is the slide-structured form of one or more markdown sources.
type Document struct {
	Metadata DocumentMetadata
	Slides   []Slide
}

// DocumentMetadata carries presentation-level properties. Empty fields mean
// the source never provided a value.
type DocumentMetadata struct {
	Title       string
	Author      string
	Description string
	Custom      map[string]string
}

// Slide is an optional title plus the ordered content blocks beneath it.
type Slide struct {
	Title   string
	Content []SlideElement
}

// SlideElement is one renderable block on a slide. The set of
// implementations is closed.
type SlideElement interface {
	element()
}

// Heading is a sub-heading inside a slide body (levels 3 through 6).
// Levels 1 and 2 never appear here, they open new slides instead.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is running text with inline markup folded back into markdown
// notation.
type Paragraph struct {
	Text string
}

// List holds flattened item text. Ordered distinguishes numbered from
// bulleted rendering.
type List struct {
	Items   []string
	Ordered bool
}

// CodeBlock keeps its body verbatim. Language is empty for indented blocks
// and for fences without an info string.
type CodeBlock struct {
	Language string
	Code     string
}

// Image is a standalone picture reference.
type Image struct {
	Alt string
	URL string
}

// Table is a header row plus zero or more data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Quote is the flattened text of a blockquote.
type Quote struct {
	Text string
}

func (Heading) element()   {}
func (Paragraph) element() {}
func (List) element()      {}
func (CodeBlock) element() {}
func (Image) element()     {}
func (Table) element()     {}
func (Quote) element()     {}
