package render

import (
	"io"
	"strings"

	gofpdf "github.com/lvillar/gofpdf"
)

// Page geometry (US Letter, points).
const (
	pageW    = 612.0
	pageH    = 792.0
	marginL  = 70.0
	marginR  = pageW - 70.0
	contentW = marginR - marginL
)

const logoAspect = 551.0 / 1026.0

const fontFamily = "Courier"

// Canvas wraps the gofpdf document with the bottom-up coordinate system the
// layout arithmetic is written in: y values grow upward from the page bottom
// and text calls position the baseline. Fill color applies to shapes and text
// alike, matching a single-fill-state 2D backend. Not safe for concurrent use.
type Canvas struct {
	pdf *gofpdf.Fpdf
}

// NewCanvas creates an empty letter-sized document with automatic page
// breaking disabled; every page break is an explicit AddPage.
func NewCanvas() *Canvas {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	return &Canvas{pdf: pdf}
}

// SetMetadata records the document information dictionary entries.
func (c *Canvas) SetMetadata(title, author string) {
	c.pdf.SetTitle(title, true)
	c.pdf.SetAuthor(author, true)
	c.pdf.SetCreator(author, true)
}

// AddPage starts a new page.
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
}

// SetFont selects the Courier face in the given style ("" or "B") and size.
func (c *Canvas) SetFont(style string, size float64) {
	c.pdf.SetFont(fontFamily, style, size)
}

// StringWidth measures text in the given style and size, leaving that font
// selected.
func (c *Canvas) StringWidth(text, style string, size float64) float64 {
	c.SetFont(style, size)
	return c.pdf.GetStringWidth(text)
}

// SetFillColor sets the color used for filled shapes and text.
func (c *Canvas) SetFillColor(col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

// SetStrokeColor sets the color used for lines and borders.
func (c *Canvas) SetStrokeColor(col Color) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
}

// SetLineWidth sets the stroke width in points.
func (c *Canvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

// SetDash enables a dashed stroke pattern of on points drawn, off points
// skipped.
func (c *Canvas) SetDash(on, off float64) {
	c.pdf.SetDashPattern([]float64{on, off}, 0)
}

// ClearDash restores solid strokes.
func (c *Canvas) ClearDash() {
	c.pdf.SetDashPattern([]float64{}, 0)
}

func rectStyle(fill, stroke bool) string {
	switch {
	case fill && stroke:
		return "FD"
	case fill:
		return "F"
	default:
		return "D"
	}
}

// Rect draws a rectangle with bottom-left corner at (x, y).
func (c *Canvas) Rect(x, y, w, h float64, fill, stroke bool) {
	c.pdf.Rect(x, pageH-y-h, w, h, rectStyle(fill, stroke))
}

// RoundedRect draws a rounded rectangle with bottom-left corner at (x, y).
func (c *Canvas) RoundedRect(x, y, w, h, r float64, fill, stroke bool) {
	c.pdf.RoundedRect(x, pageH-y-h, w, h, r, "1234", rectStyle(fill, stroke))
}

// Line draws a straight line between two points.
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, pageH-y1, x2, pageH-y2)
}

// DrawString draws text with its baseline starting at (x, y).
func (c *Canvas) DrawString(x, y float64, text string) {
	c.pdf.Text(x, pageH-y, text)
}

// DrawRightString draws text with its baseline ending at (x, y).
func (c *Canvas) DrawRightString(x, y float64, text string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(text), pageH-y, text)
}

// DrawCentredString draws text with its baseline centered on x.
func (c *Canvas) DrawCentredString(x, y float64, text string) {
	c.pdf.Text(x-c.pdf.GetStringWidth(text)/2, pageH-y, text)
}

// Image places an image file with bottom-left corner at (x, y).
func (c *Canvas) Image(path string, x, y, w, h float64) {
	c.pdf.ImageOptions(path, x, pageH-y-h, w, h, false, gofpdf.ImageOptions{}, 0, "")
}

// WrapText splits text into lines no wider than maxWidth using greedy word
// packing measured in the given font. A word wider than maxWidth occupies its
// own line unsplit, so wrapping an already-wrapped line returns it unchanged.
func (c *Canvas) WrapText(text, style string, size, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	c.SetFont(style, size)
	lines := make([]string, 0, 4)
	cur := words[0]
	for _, w := range words[1:] {
		cand := cur + " " + w
		if c.pdf.GetStringWidth(cand) > maxWidth {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = cand
	}
	return append(lines, cur)
}

// Err reports any error the drawing backend has accumulated.
func (c *Canvas) Err() error {
	if c.pdf.Err() {
		return c.pdf.Error()
	}
	return nil
}

// Output serializes the finished document.
func (c *Canvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}
