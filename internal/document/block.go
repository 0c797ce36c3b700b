// Package document defines the renderer-agnostic block model of a generated
// document. Blocks are produced by the content assembler and consumed in order
// by the renderer; no block refers to another.
//
// All lengths are in points (1 inch = 72 pt).
package document

import "strings"

// Inch is one inch expressed in points.
const Inch = 72.0

// Block is one unit of document content.
type Block interface {
	block()
}

// Span is a run of text sharing one set of inline attributes.
// Check renders Text as a dingbat glyph (the check mark is "4").
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Check  bool
}

// RichText is an ordered list of spans.
type RichText []Span

// Plain returns the concatenated text of all spans.
func (r RichText) Plain() string {
	var b strings.Builder
	for _, s := range r {
		if s.Check {
			b.WriteString("✔")
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// Text builds a single plain span.
func Text(s string) RichText {
	return RichText{{Text: s}}
}

// Heading is a section title; Level 1 is the page heading.
type Heading struct {
	Text  string
	Level int
}

// Paragraph is a block of flowing rich text.
type Paragraph struct {
	Text  RichText
	Style StyleName
}

// Spacer is vertical whitespace.
type Spacer struct {
	Height float64
}

// PageBreak ends the current page.
type PageBreak struct{}

// Table is a simple grid. ColumnWidths must have one entry per column.
type Table struct {
	Rows         [][]RichText
	ColumnWidths []float64
	Style        TableStyle
}

// Image is an embedded raster image. Data is PNG encoded; Width and Height
// are the display size.
type Image struct {
	Name        string
	Data        []byte
	Width       float64
	Height      float64
	PixelWidth  int
	PixelHeight int
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Spacer) block()    {}
func (PageBreak) block() {}
func (Table) block()     {}
func (Image) block()     {}

// Color is an RGB color.
type Color struct {
	R, G, B int
}

// TableStyle holds the per-cell styling rules of a table.
type TableStyle struct {
	FontSize        float64
	HeaderFontSize  float64
	Padding         float64
	HeaderPadding   float64
	HeaderRow       bool
	HeaderFill      *Color
	BodyFill        *Color
	Grid            bool
	GridColor       Color
	GridWidth       float64
	BoldFirstColumn bool
}

// Page is one logical page of a document.
type Page struct {
	Name   string
	Blocks []Block
}

// Flatten returns the linear block script for pages, with a PageBreak
// between consecutive pages.
func Flatten(pages []Page) []Block {
	var out []Block
	for i, p := range pages {
		if i > 0 {
			out = append(out, PageBreak{})
		}
		out = append(out, p.Blocks...)
	}
	return out
}
