// Package render lays out document blocks with gofpdf and serializes the
// result to PDF bytes.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"onboardpdf/internal/document"
)

var (
	ErrRender        = errors.New("PDF rendering failed")
	ErrInvalidLayout = errors.New("invalid page layout")
	ErrInvalidTable  = errors.New("invalid table")
	ErrUnknownBlock  = errors.New("unknown block type")
)

// Horizontal cell padding inside tables.
const cellPadX = 6.0

// Layout configures the page geometry and document metadata.
type Layout struct {
	PageSize string  // gofpdf size name: "Letter", "A4", "Legal"
	Margin   float64 // points, all four sides
	Title    string
	Author   string
	Subject  string

	// Uncompressed leaves page streams readable, for debugging.
	Uncompressed bool
}

// DefaultLayout is US Letter with 0.75 in margins.
func DefaultLayout() Layout {
	return Layout{
		PageSize: "Letter",
		Margin:   0.75 * document.Inch,
		Title:    "Chronos Media Onboarding & Welcome Packet",
		Author:   "Chronos Media Live LLC",
	}
}

// Output is a serialized document.
type Output struct {
	Bytes []byte
	Pages int
}

// Renderer turns block scripts into PDF documents. It holds no per-document
// state and is safe for concurrent use.
type Renderer struct {
	layout Layout
}

// New returns a Renderer for layout.
func New(layout Layout) *Renderer {
	return &Renderer{layout: layout}
}

// fallbackRunes covers characters the cp1252 core fonts lack.
var fallbackRunes = strings.NewReplacer(
	"ē", "e",
	"ā", "a",
	"✔", "v",
)

// Unencodable returns the distinct runes of s, in order of appearance, that
// the cp1252 core fonts cannot show. They are drawn as ".".
func Unencodable(s string) []rune {
	var out []rune
	for _, r := range fallbackRunes.Replace(s) {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok || slices.Contains(out, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Render lays out blocks in order and returns the PDF.
func (r *Renderer) Render(blocks []document.Block) (*Output, error) {
	if r.layout.Margin <= 0 {
		return nil, fmt.Errorf("%w: %w: margin %.2f", ErrRender, ErrInvalidLayout, r.layout.Margin)
	}

	pdf := gofpdf.New("P", "pt", r.layout.PageSize, "")
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrRender, ErrInvalidLayout, err)
	}
	pageW, pageH := pdf.GetPageSize()
	if 2*r.layout.Margin >= pageW || 2*r.layout.Margin >= pageH {
		return nil, fmt.Errorf("%w: %w: margin %.2f does not fit %.0fx%.0f page", ErrRender, ErrInvalidLayout, r.layout.Margin, pageW, pageH)
	}

	pdf.SetMargins(r.layout.Margin, r.layout.Margin, r.layout.Margin)
	pdf.SetAutoPageBreak(true, r.layout.Margin)
	pdf.SetTitle(r.layout.Title, true)
	pdf.SetAuthor(r.layout.Author, true)
	pdf.SetSubject(r.layout.Subject, true)
	pdf.SetCreator("onboardpdf", true)
	pdf.SetCompression(!r.layout.Uncompressed)

	w := &writer{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
	pdf.AddPage()

	for i, b := range blocks {
		if err := w.block(b); err != nil {
			return nil, fmt.Errorf("%w: block %d: %w", ErrRender, i, err)
		}
		if pdf.Err() {
			break
		}
	}

	pages := pdf.PageNo()
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return &Output{Bytes: buf.Bytes(), Pages: pages}, nil
}

type writer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (w *writer) text(s string) string {
	return w.tr(fallbackRunes.Replace(s))
}

func (w *writer) block(b document.Block) error {
	switch v := b.(type) {
	case document.Heading:
		w.paragraph(document.Text(v.Text), document.Lookup(document.HeadingStyle(v.Level)))
	case document.Paragraph:
		w.paragraph(v.Text, document.Lookup(v.Style))
	case document.Spacer:
		if v.Height > 0 {
			w.pdf.Ln(v.Height)
		}
	case document.PageBreak:
		w.pdf.AddPage()
	case document.Table:
		return w.table(v)
	case document.Image:
		w.image(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownBlock, b)
	}
	return nil
}

func fontStyle(bold, italic bool) string {
	s := ""
	if bold {
		s += "B"
	}
	if italic {
		s += "I"
	}
	return s
}

func (w *writer) atTop() bool {
	_, top, _, _ := w.pdf.GetMargins()
	return w.pdf.GetY() <= top
}

func (w *writer) paragraph(text document.RichText, st document.Style) {
	pdf := w.pdf
	if st.SpaceBefore > 0 && !w.atTop() {
		pdf.Ln(st.SpaceBefore)
	}
	pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)

	left, _, _, _ := pdf.GetMargins()
	pdf.SetX(left)

	if len(text) == 1 && !text[0].Check || st.Align != document.AlignLeft {
		bold, italic := st.Bold, st.Italic
		if len(text) == 1 {
			bold, italic = bold || text[0].Bold, italic || text[0].Italic
		}
		pdf.SetFont(st.Font, fontStyle(bold, italic), st.Size)
		pdf.MultiCell(0, st.Leading, w.text(text.Plain()), "", string(st.Align), false)
	} else {
		for _, span := range text {
			if span.Check {
				pdf.SetFont("ZapfDingbats", "", st.Size)
				pdf.Write(st.Leading, span.Text)
				continue
			}
			pdf.SetFont(st.Font, fontStyle(st.Bold || span.Bold, st.Italic || span.Italic), st.Size)
			pdf.Write(st.Leading, w.text(span.Text))
		}
		pdf.Ln(st.Leading)
	}

	if st.SpaceAfter > 0 {
		pdf.Ln(st.SpaceAfter)
	}
	pdf.SetTextColor(0, 0, 0)
}

func (w *writer) table(t document.Table) error {
	for i, row := range t.Rows {
		if len(row) != len(t.ColumnWidths) {
			return fmt.Errorf("%w: row %d has %d cells for %d columns", ErrInvalidTable, i, len(row), len(t.ColumnWidths))
		}
	}

	pdf := w.pdf
	st := t.Style
	_, top, _, bottom := pdf.GetMargins()
	_, pageH := pdf.GetPageSize()
	usable := pageH - top - bottom

	// Rows are paginated here; gofpdf's own page break would move single
	// lines without their cell borders.
	pdf.SetAutoPageBreak(false, bottom)
	defer pdf.SetAutoPageBreak(true, bottom)

	for i, row := range t.Rows {
		header := st.HeaderRow && i == 0
		size, pad := st.FontSize, st.Padding
		if header {
			if st.HeaderFontSize > 0 {
				size = st.HeaderFontSize
			}
			if st.HeaderPadding > 0 {
				pad = st.HeaderPadding
			}
		}
		if size <= 0 {
			size = document.Styles[document.StyleBody].Size
		}
		r := tableRow{
			cells:   make([][]string, len(row)),
			header:  header,
			size:    size,
			pad:     pad,
			leading: size * 1.2,
		}
		for j, cell := range row {
			pdf.SetFont("Helvetica", cellFontStyle(st, header, j), size)
			for _, l := range pdf.SplitLines([]byte(w.text(cell.Plain())), t.ColumnWidths[j]-2*cellPadX) {
				r.cells[j] = append(r.cells[j], string(l))
			}
			r.lines = max(r.lines, len(r.cells[j]))
		}
		r.lines = max(r.lines, 1)

		// Keep a row whole when a fresh page can hold it.
		if pdf.GetY()+r.height(r.lines) > pageH-bottom && r.height(r.lines) <= usable && !w.atTop() {
			pdf.AddPage()
		}

		for from := 0; from < r.lines; {
			fit := int((pageH - bottom - pdf.GetY() - 2*r.pad) / r.leading)
			if fit < 1 {
				if !w.atTop() {
					pdf.AddPage()
					continue
				}
				fit = 1
			}
			to := min(from+fit, r.lines)
			w.rowSegment(t, r, from, to)
			from = to
			if from < r.lines {
				pdf.AddPage()
			}
		}
	}
	return nil
}

// tableRow is one laid out row: the wrapped lines of each cell.
type tableRow struct {
	cells   [][]string
	lines   int
	header  bool
	size    float64
	pad     float64
	leading float64
}

func (r tableRow) height(lines int) float64 {
	return float64(lines)*r.leading + 2*r.pad
}

// rowSegment draws lines [from, to) of every cell of r at the current
// position, with its own fill and grid, and moves below it.
func (w *writer) rowSegment(t document.Table, r tableRow, from, to int) {
	pdf := w.pdf
	st := t.Style
	left, _, _, _ := pdf.GetMargins()
	y0 := pdf.GetY()
	h := r.height(to - from)
	x := left

	for j, cell := range r.cells {
		cw := t.ColumnWidths[j]
		fill := st.BodyFill
		if r.header {
			fill = st.HeaderFill
		}
		if fill != nil {
			pdf.SetFillColor(fill.R, fill.G, fill.B)
			pdf.Rect(x, y0, cw, h, "F")
		}
		if st.Grid {
			pdf.SetDrawColor(st.GridColor.R, st.GridColor.G, st.GridColor.B)
			pdf.SetLineWidth(st.GridWidth)
			pdf.Rect(x, y0, cw, h, "D")
		}

		pdf.SetFont("Helvetica", cellFontStyle(st, r.header, j), r.size)
		pdf.SetTextColor(0, 0, 0)
		for k := from; k < to && k < len(cell); k++ {
			pdf.SetXY(x+cellPadX, y0+r.pad+float64(k-from)*r.leading)
			pdf.CellFormat(cw-2*cellPadX, r.leading, cell[k], "", 0, "L", false, 0, "")
		}
		x += cw
	}
	pdf.SetXY(left, y0+h)
}

func cellFontStyle(st document.TableStyle, header bool, col int) string {
	if header || st.BoldFirstColumn && col == 0 {
		return "B"
	}
	return ""
}

func (w *writer) image(img document.Image) {
	pdf := w.pdf
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Data))

	left, _, _, _ := pdf.GetMargins()
	pdf.ImageOptions(img.Name, left, pdf.GetY(), img.Width, img.Height, true, opts, 0, "")
	pdf.SetX(left)
}
