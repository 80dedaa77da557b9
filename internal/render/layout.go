package render

const footerContact = "blokblokstudio.com | @haynes2va | @blokblokstudio"

// FillBackground paints the full page black.
func (c *Canvas) FillBackground() {
	c.SetFillColor(Black)
	c.Rect(0, 0, pageW, pageH, true, false)
}

// DrawFooter paints the bottom rule and contact line. Its position is fixed,
// independent of the cursor.
func (c *Canvas) DrawFooter() {
	c.SetStrokeColor(Green)
	c.SetLineWidth(0.5)
	c.Line(marginL, 42, marginR, 42)
	c.SetFont("", 8)
	c.SetFillColor(Gray)
	c.DrawCentredString(pageW/2, 26, footerContact)
}

// DrawBadge renders a small filled rounded label sized to its text plus 7 pt
// of padding per side and returns the consumed width.
func (c *Canvas) DrawBadge(x, y float64, text string, color Color) float64 {
	c.SetFont("B", 8)
	bw := c.StringWidth(text, "B", 8) + 14
	c.SetFillColor(color)
	c.RoundedRect(x, y-18, bw, 18, 3, true, false)
	c.SetFillColor(Black)
	c.DrawString(x+7, y-13, text)
	return bw
}

// DrawDashedCard renders a filled card with a dashed border, 4 pt on and 3 pt
// off.
func (c *Canvas) DrawDashedCard(x, y, w, h float64, border Color) {
	c.SetFillColor(CardFill)
	c.SetStrokeColor(border)
	c.SetLineWidth(1.2)
	c.SetDash(4, 3)
	c.RoundedRect(x, y, w, h, 4, true, true)
	c.ClearDash()
}

// DrawColorBar renders a card's 30x3 pt accent marker.
func (c *Canvas) DrawColorBar(x, y float64, color Color) {
	c.SetFillColor(color)
	c.Rect(x, y, 30, 3, true, false)
}
