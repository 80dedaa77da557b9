// Package render generates the six-page audit document: a cover, four
// card-styled content pages and a call-to-action page, drawn through a
// bottom-up canvas adapter over gofpdf.
package render

import (
	"bytes"
	"context"
	"fmt"

	"auditpdf/internal/domain"
)

const (
	docTitle  = "Free Business Audit"
	docAuthor = "Blok Blok Studio"
)

// truncationFloor is the minimum remaining vertical space on a card page
// below which no further cards are placed.
const truncationFloor = 60.0

// TruncationPolicy controls what happens to cards that would cross the floor
// at the bottom of a card page.
type TruncationPolicy int

const (
	// TruncateDrop stops emitting cards on the page. Excess content is
	// dropped and the document stays at exactly six pages.
	TruncateDrop TruncationPolicy = iota
	// TruncateSpill continues overflowing cards on continuation pages that
	// repeat the page chrome and heading.
	TruncateSpill
)

// ParsePolicy maps a config string to a policy. The empty string means drop.
func ParsePolicy(s string) (TruncationPolicy, error) {
	switch s {
	case "", "drop":
		return TruncateDrop, nil
	case "spill":
		return TruncateSpill, nil
	}
	return TruncateDrop, fmt.Errorf("render: unknown truncation policy %q", s)
}

// Generator renders audit documents. One Generator serves many requests; each
// Generate call builds its own canvas, so concurrent calls are independent.
type Generator struct {
	logo   LogoRenderer
	policy TruncationPolicy
}

func NewGenerator(logo LogoRenderer, policy TruncationPolicy) *Generator {
	if logo == nil {
		logo = TextLogo{}
	}
	return &Generator{logo: logo, policy: policy}
}

// plannedPage is one physical card page: the section template plus the cards
// that fit on it.
type plannedPage struct {
	tpl   cardPage
	cards []card
}

// plan sizes every card up front and assigns cards to physical pages, so the
// header's page total is known before anything is drawn. A card whose height
// would push the cursor below the floor either ends the section (drop) or
// opens a continuation page (spill). Two exceptions: the quote card is always
// placed in full, and under spill a card that cannot fit even on a fresh page
// is placed rather than flushed again.
func (g *Generator) plan(cv *Canvas, sections []cardPage) []plannedPage {
	pages := make([]plannedPage, 0, len(sections))
	for _, sec := range sections {
		cur := plannedPage{tpl: sec}
		y := contentTop() - 46 - 22 - 28
		for _, cd := range sec.cards {
			h := cd.height(cv)
			if _, isQuote := cd.(quoteCard); !isQuote && y-h < truncationFloor {
				if g.policy == TruncateDrop {
					break
				}
				if len(cur.cards) > 0 {
					pages = append(pages, cur)
					cur = plannedPage{tpl: sec}
					y = contentTop() - 46 - 22 - 28
				}
			}
			cur.cards = append(cur.cards, cd)
			y -= h + cd.gap()
		}
		pages = append(pages, cur)
	}
	return pages
}

// Generate renders the document for one request and returns the serialized
// bytes. The context is checked between pages; a deadline hit surfaces as the
// context's error.
func (g *Generator) Generate(ctx context.Context, req domain.AuditRequest) ([]byte, error) {
	cv := NewCanvas()
	cv.SetMetadata(docTitle, docAuthor)

	pages := g.plan(cv, buildCardPages(req))
	total := len(pages) + 2

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.drawCover(cv, req)

	pg := 2
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.drawCardPage(cv, pg, total, p)
		pg++
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.drawCTA(cv, req, pg, total)

	if err := cv.Err(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	var buf bytes.Buffer
	if err := cv.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: writing document: %w", err)
	}
	return buf.Bytes(), nil
}
