package mcpserver

// SlideFormatContract describes the canonical markdown structure that
// LLM consumers should follow when writing markdown for conversion.
const SlideFormatContract = `# Sowilo Slide Format Contract

Markdown meant for slide conversion MUST follow this structure.

## Slide boundaries

- Every ` + "`" + `# Heading` + "`" + ` or ` + "`" + `## Heading` + "`" + ` starts a new slide; the heading text
  becomes the slide title.
- The first plain-text ` + "`" + `# Heading` + "`" + ` also becomes the presentation title in
  the deck metadata.
- ` + "`" + `###` + "`" + ` through ` + "`" + `######` + "`" + ` headings stay on the current slide as
  sub-headings, they do not split it.
- Content before the first heading lands on an untitled slide; give every
  slide a heading unless you want that.

## Supported content

1. **Paragraphs.** Inline ` + "`" + `**bold**` + "`" + `, ` + "`" + `*italic*` + "`" + ` and backtick code markers
   are flattened to plain text on the slide.
2. **Lists.** ` + "`" + `- item` + "`" + ` bullets and ` + "`" + `1. item` + "`" + ` numbered lists. Nested lists
   flatten onto one level, so keep lists shallow.
3. **Code blocks.** Fenced with triple backticks; rendered verbatim in the
   template's monospace font. The info string (language) is kept but not
   syntax-highlighted.
4. **Quotes.** ` + "`" + `> text` + "`" + ` renders as a text paragraph on the slide.
5. **Tables.** Pipe tables render as a placeholder listing the header row,
   not as a full grid. Prefer lists for data you need on the slide.
6. **Images.** ` + "`" + `![alt](url)` + "`" + ` renders as an ` + "`" + `[Image: alt]` + "`" + ` placeholder;
   image bytes are not embedded. Always write a meaningful alt text.

## Rules

1. One idea per slide. Aim for a heading plus at most one list or one code
   block.
2. Keep slide titles short; they render in the large title font.
3. Hard line breaks inside a paragraph are preserved as line breaks on the
   slide.
4. **Encoding** is UTF-8. XML-special characters are escaped automatically.

## Example

` + "```" + `markdown
# Quarterly Review

Welcome to the Q3 review.

## Highlights

- Revenue up 14%
- Churn down to 2.1%

## Customer Quote

> "Best release yet."
` + "```" + `
`
