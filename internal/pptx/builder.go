// Package pptx assembles PowerPoint (pptx) archives from slide documents.
//
// A pptx file is a zip of XML parts tied together by relationship files.
// The builder renders every part as text and streams them into the archive
// in a fixed order: content types, package relationships, document
// properties, the presentation and its relationships, master, layout, one
// part plus relationship file per slide, and the theme last.
package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/markdown"
)

const defaultSlideTitle = "Slide Title"

// Builder accumulates slides and renders them into a pptx archive styled by
// a template.
type Builder struct {
	template Template
	slides   []deckSlide
	meta     deckMetadata
}

type deckSlide struct {
	id      string
	title   string
	content []deckElement
}

type elementKind int

const (
	elemText elementKind = iota
	elemBulletList
	elemNumberedList
	elemCode
	elemImage
	elemTable
	elemQuote
)

func (k elementKind) String() string {
	switch k {
	case elemText:
		return "text"
	case elemBulletList:
		return "bullet_list"
	case elemNumberedList:
		return "numbered_list"
	case elemCode:
		return "code"
	case elemImage:
		return "image"
	case elemTable:
		return "table"
	case elemQuote:
		return "quote"
	}
	return "unknown"
}

// deckElement is one renderable block. Only the fields for its kind are set.
type deckElement struct {
	kind     elementKind
	text     string
	items    []string
	language string
	alt      string
	url      string
	headers  []string
	rows     [][]string
}

type deckMetadata struct {
	title    string
	author   string
	created  time.Time
	modified time.Time
}

// NewBuilder returns an empty builder with default metadata.
func NewBuilder(template Template) *Builder {
	now := time.Now().UTC()
	return &Builder{
		template: template,
		meta: deckMetadata{
			title:    "Converted Presentation",
			author:   "sowilo",
			created:  now,
			modified: now,
		},
	}
}

// FromDocument converts a parsed markdown document into a deck. Document
// metadata overrides the default title and author when present.
func FromDocument(doc *markdown.Document, template Template) *Builder {
	b := NewBuilder(template)
	if doc.Metadata.Title != "" {
		b.meta.title = doc.Metadata.Title
	}
	if doc.Metadata.Author != "" {
		b.meta.author = doc.Metadata.Author
	}
	for _, slide := range doc.Slides {
		b.addSlide(slide)
	}
	return b
}

func (b *Builder) addSlide(slide markdown.Slide) {
	ds := deckSlide{id: uuid.NewString(), title: slide.Title}
	for _, el := range slide.Content {
		switch el := el.(type) {
		case markdown.Heading:
			ds.content = append(ds.content, deckElement{kind: elemText, text: el.Text})
		case markdown.Paragraph:
			ds.content = append(ds.content, deckElement{kind: elemText, text: el.Text})
		case markdown.List:
			kind := elemBulletList
			if el.Ordered {
				kind = elemNumberedList
			}
			ds.content = append(ds.content, deckElement{kind: kind, items: el.Items})
		case markdown.CodeBlock:
			ds.content = append(ds.content, deckElement{kind: elemCode, language: el.Language, text: el.Code})
		case markdown.Image:
			ds.content = append(ds.content, deckElement{kind: elemImage, alt: el.Alt, url: el.URL})
		case markdown.Table:
			ds.content = append(ds.content, deckElement{kind: elemTable, headers: el.Headers, rows: el.Rows})
		case markdown.Quote:
			ds.content = append(ds.content, deckElement{kind: elemQuote, text: el.Text})
		}
	}
	b.slides = append(b.slides, ds)
}

// SlideInfo summarizes one slide of the deck that Build would produce.
type SlideInfo struct {
	ID       string   `json:"id"`
	Index    int      `json:"index"`
	Title    string   `json:"title"`
	Elements []string `json:"elements"`
}

// Outline reports the slides as they will render, including the fallback
// title for untitled slides.
func (b *Builder) Outline() []SlideInfo {
	infos := make([]SlideInfo, len(b.slides))
	for i, s := range b.slides {
		title := s.title
		if title == "" {
			title = defaultSlideTitle
		}
		elements := make([]string, len(s.content))
		for j, el := range s.content {
			elements[j] = el.kind.String()
		}
		infos[i] = SlideInfo{ID: s.id, Index: i + 1, Title: title, Elements: elements}
	}
	return infos
}

// SlideCount returns the number of slides added so far.
func (b *Builder) SlideCount() int {
	return len(b.slides)
}

type partEntry struct {
	name string
	data string
}

// Build assembles the complete archive and returns its bytes.
func (b *Builder) Build() ([]byte, error) {
	parts := []partEntry{
		{"[Content_Types].xml", b.contentTypesXML()},
		{"_rels/.rels", packageRelsXML},
		{"docProps/app.xml", b.appPropsXML()},
		{"docProps/core.xml", b.corePropsXML()},
		{"ppt/presentation.xml", b.presentationXML()},
		{"ppt/_rels/presentation.xml.rels", b.presentationRelsXML()},
		{"ppt/slideMasters/slideMaster1.xml", b.template.slideMasterXML()},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
	}
	for i, slide := range b.slides {
		parts = append(parts,
			partEntry{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), b.slideXML(slide)},
			partEntry{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), slideRelsXML},
		)
	}
	parts = append(parts, partEntry{"ppt/theme/theme1.xml", b.template.themeXML()})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("%w: create part %s: %v", apperr.ErrPackaging, p.name, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return nil, fmt.Errorf("%w: write part %s: %v", apperr.ErrPackaging, p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize archive: %v", apperr.ErrPackaging, err)
	}
	return buf.Bytes(), nil
}

func (b *Builder) contentTypesXML() string {
	var overrides strings.Builder
	for i := range b.slides {
		fmt.Fprintf(&overrides, "\n    <Override PartName=\"/ppt/slides/slide%d.xml\" ContentType=\"application/vnd.openxmlformats-officedocument.presentationml.slide+xml\"/>", i+1)
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
    <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
    <Default Extension="xml" ContentType="application/xml"/>
    <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
    <Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>
    <Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>
    <Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
    <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
    <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>%s</Types>`, overrides.String())
}

func (b *Builder) appPropsXML() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
    <Application>sowilo</Application>
    <PresentationFormat>On-screen Show (4:3)</PresentationFormat>
    <Slides>%d</Slides>
    <Notes>0</Notes>
    <HiddenSlides>0</HiddenSlides>
    <MMClips>0</MMClips>
    <ScaleCrop>false</ScaleCrop>
    <Company>sowilo</Company>
    <AppVersion>16.0000</AppVersion>
</Properties>`, len(b.slides))
}

func (b *Builder) corePropsXML() string {
	const stamp = "2006-01-02T15:04:05Z"
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
    <dc:title>%s</dc:title>
    <dc:creator>%s</dc:creator>
    <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
    <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		escapeXML(b.meta.title),
		escapeXML(b.meta.author),
		b.meta.created.Format(stamp),
		b.meta.modified.Format(stamp),
	)
}

// presentationXML lists the master and one sldId per slide. Slide ids start
// at 256, their relationship ids at rId2 because rId1 is the master.
func (b *Builder) presentationXML() string {
	var ids strings.Builder
	for i := range b.slides {
		fmt.Fprintf(&ids, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
    <p:sldMasterIdLst>
        <p:sldMasterId id="2147483648" r:id="rId1"/>
    </p:sldMasterIdLst>
    <p:sldIdLst>
        %s
    </p:sldIdLst>
    <p:sldSz cx="9144000" cy="6858000" type="screen4x3"/>
    <p:notesSz cx="6858000" cy="9144000"/>
    <p:defaultTextStyle>
        <a:defPPr>
            <a:defRPr lang="en-US"/>
        </a:defPPr>
    </p:defaultTextStyle>
</p:presentation>`, ids.String())
}

func (b *Builder) presentationRelsXML() string {
	var rels strings.Builder
	for i := range b.slides {
		fmt.Fprintf(&rels, "\n    <Relationship Id=\"rId%d\" Type=\"http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide\" Target=\"slides/slide%d.xml\"/>", i+2, i+1)
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
    <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>%s
    <Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>
</Relationships>`, rels.String(), len(b.slides)+2)
}

// slideXML renders one slide: a title placeholder positioned from the
// template layout, then the content shapes.
func (b *Builder) slideXML(slide deckSlide) string {
	layout := b.template.Layout
	title := slide.title
	if title == "" {
		title = defaultSlideTitle
	}
	width := layout.SlideWidth - layout.MarginLeft - layout.MarginRight
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
    <p:cSld>
        <p:spTree>
            <p:nvGrpSpPr>
                <p:cNvPr id="1" name=""/>
                <p:cNvGrpSpPr/>
                <p:nvPr/>
            </p:nvGrpSpPr>
            <p:grpSpPr>
                <a:xfrm>
                    <a:off x="0" y="0"/>
                    <a:ext cx="0" cy="0"/>
                    <a:chOff x="0" y="0"/>
                    <a:chExt cx="0" cy="0"/>
                </a:xfrm>
            </p:grpSpPr>
            <p:sp>
                <p:nvSpPr>
                    <p:cNvPr id="2" name="Title 1"/>
                    <p:cNvSpPr>
                        <a:spLocks noGrp="1"/>
                    </p:cNvSpPr>
                    <p:nvPr>
                        <p:ph type="title"/>
                    </p:nvPr>
                </p:nvSpPr>
                <p:spPr>
                    <a:xfrm>
                        <a:off x="%d" y="%d"/>
                        <a:ext cx="%d" cy="%d"/>
                    </a:xfrm>
                </p:spPr>
                <p:txBody>
                    <a:bodyPr/>
                    <a:lstStyle/>
                    <a:p>
                        <a:r>
                            <a:rPr lang="en-US"/>
                            <a:t>%s</a:t>
                        </a:r>
                        <a:endParaRPr lang="en-US"/>
                    </a:p>
                </p:txBody>
            </p:sp>%s
        </p:spTree>
    </p:cSld>
    <p:clrMapOvr>
        <a:masterClrMapping/>
    </p:clrMapOvr>
</p:sld>`,
		layout.MarginLeft,
		layout.MarginTop,
		width,
		layout.TitleHeight,
		escapeXML(title),
		b.contentShapesXML(slide.content),
	)
}

// contentShapesXML stacks one shape per element below the title. Shape ids
// count up from 3; each element kind advances the cursor by its own step so
// taller shapes get more room.
func (b *Builder) contentShapesXML(content []deckElement) string {
	if len(content) == 0 {
		return ""
	}
	layout := b.template.Layout
	x := layout.MarginLeft
	width := layout.SlideWidth - layout.MarginLeft - layout.MarginRight
	shapeID := 3
	y := layout.MarginTop + layout.TitleHeight + layout.ContentSpacing

	var shapes strings.Builder
	for _, el := range content {
		switch el.kind {
		case elemText, elemQuote:
			fmt.Fprintf(&shapes, textShapeXML, shapeID, shapeID, x, y, width, escapeXML(el.text))
			shapeID++
			y += 400000
		case elemBulletList, elemNumberedList:
			var paras strings.Builder
			for _, item := range el.items {
				fmt.Fprintf(&paras, listParagraphXML, escapeXML(item))
			}
			fmt.Fprintf(&shapes, listShapeXML, shapeID, shapeID, x, y, width, paras.String())
			shapeID++
			y += 500000
		case elemCode:
			fmt.Fprintf(&shapes, codeShapeXML, shapeID, shapeID, x, y, width, b.template.Fonts.CodeFont, escapeXML(el.text))
			shapeID++
			y += 600000
		default:
			var text string
			switch el.kind {
			case elemImage:
				text = fmt.Sprintf("[Image: %s]", el.alt)
			case elemTable:
				text = fmt.Sprintf("[Table: %s]", strings.Join(el.headers, ", "))
			default:
				text = "[Unsupported element]"
			}
			fmt.Fprintf(&shapes, fallbackShapeXML, shapeID, shapeID, x, y, width, escapeXML(text))
			shapeID++
			y += 400000
		}
	}
	return shapes.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
