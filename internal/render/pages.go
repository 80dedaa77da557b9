package render

import (
	"fmt"
	"strings"

	"auditpdf/internal/domain"
)

// drawHeader paints the top accent bar, logo, "NN / NN" page indicator and
// rule, and returns the cursor position content starts at.
func (g *Generator) drawHeader(cv *Canvas, pg, total int) float64 {
	cv.SetFillColor(Green)
	cv.Rect(0, pageH-5, pageW, 5, true, false)
	logoH := 80 * logoAspect
	g.logo.Draw(cv, marginL, pageH-28-logoH, 80)
	cv.SetFont("", 10)
	cv.SetFillColor(Gray)
	cv.DrawRightString(marginR, pageH-48, fmt.Sprintf("%02d / %02d", pg, total))
	lineY := pageH - 28 - logoH - 8
	cv.SetStrokeColor(Green)
	cv.SetLineWidth(1)
	cv.Line(marginL, lineY, marginR, lineY)
	return lineY - 30
}

// contentTop is where a card page's content starts, immediately below the
// header chrome.
func contentTop() float64 {
	return pageH - 28 - 80*logoAspect - 8 - 30
}

func (g *Generator) drawCover(cv *Canvas, req domain.AuditRequest) {
	cv.AddPage()
	cv.FillBackground()
	cv.SetFillColor(Green)
	cv.Rect(0, pageH-5, pageW, 5, true, false)

	badgeText := "CLIENT STRATEGY | BLOK BLOK STUDIO"
	btw := cv.StringWidth(badgeText, "B", 10)
	bx := (pageW - btw - 20) / 2
	y := pageH - 70.0
	cv.SetFillColor(GreenDark)
	cv.SetStrokeColor(Green)
	cv.SetLineWidth(1)
	cv.RoundedRect(bx, y, btw+20, 28, 4, true, true)
	cv.SetFillColor(Green)
	cv.DrawCentredString(pageW/2, y+9, badgeText)
	y -= 40

	logoH := g.logo.Draw(cv, (pageW-140)/2, y-140*logoAspect, 140)
	y -= logoH + 50
	cv.SetFont("B", 16)
	cv.SetFillColor(White)
	cv.DrawCentredString(pageW/2, y, "FREE BUSINESS AUDIT")
	y -= 45
	cv.SetFont("B", 28)
	cv.SetFillColor(Green)
	cv.DrawCentredString(pageW/2, y, strings.ToUpper(req.Name))
	y -= 35
	cv.SetFont("B", 14)
	cv.SetFillColor(White)
	cv.DrawCentredString(pageW/2, y, req.Field)
	y -= 35
	cv.SetStrokeColor(Green)
	cv.SetLineWidth(2)
	cv.Line(pageW/2-60, y, pageW/2+60, y)
	y -= 30
	cv.SetFont("", 10)
	cv.SetFillColor(Gray)
	cv.DrawCentredString(pageW/2, y, "Custom strategy & automation roadmap")
	y -= 16
	cv.DrawCentredString(pageW/2, y, fmt.Sprintf("Prepared for %s | %s", req.Name, req.Field))

	g.logo.Draw(cv, (pageW-110)/2, 80, 110)
	cv.DrawFooter()
}

// drawCardPage renders one physical card page: chrome, badge, heading,
// subheading, then the planned cards top-down.
func (g *Generator) drawCardPage(cv *Canvas, pg, total int, p plannedPage) {
	cv.AddPage()
	cv.FillBackground()
	y := g.drawHeader(cv, pg, total)
	cv.DrawFooter()

	cv.DrawBadge(marginL, y, p.tpl.badge, p.tpl.badgeColor)
	y -= 46
	cv.SetFont("B", 24)
	cv.SetFillColor(White)
	cv.DrawString(marginL, y, p.tpl.heading)
	y -= 22
	cv.SetFont("", 10)
	cv.SetFillColor(Gray)
	cv.DrawString(marginL, y, p.tpl.subheading)
	y -= 28

	for _, cd := range p.cards {
		h := cd.height(cv)
		cd.draw(cv, y)
		y -= h + cd.gap()
	}
}

func (g *Generator) drawCTA(cv *Canvas, req domain.AuditRequest, pg, total int) {
	cv.AddPage()
	cv.FillBackground()
	y := g.drawHeader(cv, pg, total)
	cv.DrawFooter()

	logoH := g.logo.Draw(cv, (pageW-160)/2, y-160*logoAspect-10, 160)
	y -= logoH + 50
	cv.SetFont("B", 20)
	cv.SetFillColor(White)
	cv.DrawCentredString(pageW/2, y, "Ready to Build")
	y -= 34
	cv.SetFont("B", 26)
	cv.SetFillColor(Green)
	cv.DrawCentredString(pageW/2, y, "Systems That Scale?")
	y -= 24
	cv.SetFont("", 10)
	cv.SetFillColor(Gray)
	cv.DrawCentredString(pageW/2, y, fmt.Sprintf("Let's talk about what's possible for your %s business.", req.Field))
	y -= 30
	cv.SetStrokeColor(Green)
	cv.SetLineWidth(2)
	cv.Line(pageW/2-50, y, pageW/2+50, y)
	y -= 35

	const btnW, btnH = 300.0, 42.0
	btnX := (pageW - btnW) / 2
	for i, btn := range ctaButtons {
		if btn.filled {
			cv.SetFillColor(Green)
			cv.RoundedRect(btnX, y-btnH, btnW, btnH, 4, true, false)
			cv.SetFont("B", 12)
			cv.SetFillColor(Black)
			cv.DrawCentredString(pageW/2, y-18, btn.label)
			cv.SetFont("", 9)
			cv.DrawCentredString(pageW/2, y-32, btn.sub)
		} else {
			cv.SetFillColor(Black)
			cv.SetStrokeColor(GrayDim)
			cv.SetLineWidth(1)
			cv.RoundedRect(btnX, y-btnH, btnW, btnH, 4, true, true)
			cv.SetFont("B", 12)
			cv.SetFillColor(White)
			cv.DrawCentredString(pageW/2, y-18, btn.label)
			cv.SetFont("", 9)
			cv.SetFillColor(Gray)
			cv.DrawCentredString(pageW/2, y-32, btn.sub)
		}
		if i == len(ctaButtons)-1 {
			y -= btnH + 24
		} else {
			y -= btnH + 14
		}
	}

	cv.SetFont("B", 10)
	cv.SetFillColor(Green)
	cv.DrawCentredString(pageW/2, y, "Let's build something that works for you.")
}
