package render

import (
	"fmt"

	"auditpdf/internal/domain"
)

// bodyW is the wrap budget for card body text.
const bodyW = contentW - 30

// card is one visual block on a card page. Height must be a pure function of
// the wrapped body text so the planner can size pages without drawing.
type card interface {
	height(cv *Canvas) float64
	draw(cv *Canvas, y float64)
	gap() float64
}

// cardPage is the declarative template for one card-styled page. The four
// middle pages of the document differ only in this data.
type cardPage struct {
	badge      string
	badgeColor Color
	heading    string
	subheading string
	cards      []card
}

// quoteCard echoes the submitted problem statement. It is always drawn in
// full, never truncated.
type quoteCard struct {
	text string
}

func (q quoteCard) lines(cv *Canvas) []string {
	return cv.WrapText(`"`+q.text+`"`, "", 10, bodyW)
}

func (q quoteCard) height(cv *Canvas) float64 {
	return 40 + float64(len(q.lines(cv)))*14
}

func (q quoteCard) gap() float64 { return 14 }

func (q quoteCard) draw(cv *Canvas, y float64) {
	lines := q.lines(cv)
	h := q.height(cv)
	cv.DrawDashedCard(marginL, y-h, contentW, h, Red)
	cv.DrawColorBar(marginL+10, y-10, Red)
	cv.SetFont("B", 9)
	cv.SetFillColor(Red)
	cv.DrawString(marginL+14, y-24, "YOUR BIGGEST CHALLENGE")
	cv.SetFont("", 10)
	cv.SetFillColor(GrayLight)
	for i, line := range lines {
		cv.DrawString(marginL+14, y-42-float64(i)*14, line)
	}
}

// statCard shows a bold statistic with a wrapped description and a
// right-aligned source citation.
type statCard struct {
	value  string
	desc   string
	source string
	color  Color
}

func (s statCard) lines(cv *Canvas) []string {
	return cv.WrapText(s.desc, "", 9, bodyW)
}

func (s statCard) height(cv *Canvas) float64 {
	return 38 + float64(len(s.lines(cv)))*12 + 14
}

func (s statCard) gap() float64 { return 12 }

func (s statCard) draw(cv *Canvas, y float64) {
	lines := s.lines(cv)
	h := s.height(cv)
	cv.DrawDashedCard(marginL, y-h, contentW, h, s.color)
	cv.DrawColorBar(marginL+10, y-10, s.color)
	cv.SetFont("B", 16)
	cv.SetFillColor(White)
	cv.DrawString(marginL+14, y-28, s.value)
	cv.SetFont("", 9)
	cv.SetFillColor(GrayLight)
	for i, line := range lines {
		cv.DrawString(marginL+14, y-44-float64(i)*12, line)
	}
	cv.SetFont("", 7)
	cv.SetFillColor(GrayDim)
	cv.DrawRightString(marginR-14, y-h+8, "Source: "+s.source)
}

// featureGeometry fixes the chrome around a feature card's wrapped body. The
// opportunities and why-us pages use slightly different proportions.
type featureGeometry struct {
	titleSize float64
	titleDrop float64
	bodyDrop  float64
	chrome    float64
	pad       float64
}

var (
	opportunityGeometry = featureGeometry{titleSize: 10, titleDrop: 26, bodyDrop: 42, chrome: 34, pad: 10}
	reasonGeometry      = featureGeometry{titleSize: 9, titleDrop: 24, bodyDrop: 38, chrome: 30, pad: 10}
)

// featureCard is a titled card with wrapped body text and an accent bar.
type featureCard struct {
	title string
	desc  string
	color Color
	geo   featureGeometry
}

func (f featureCard) lines(cv *Canvas) []string {
	return cv.WrapText(f.desc, "", 8, bodyW)
}

func (f featureCard) height(cv *Canvas) float64 {
	return f.geo.chrome + float64(len(f.lines(cv)))*11 + f.geo.pad
}

func (f featureCard) gap() float64 { return 10 }

func (f featureCard) draw(cv *Canvas, y float64) {
	lines := f.lines(cv)
	h := f.height(cv)
	cv.DrawDashedCard(marginL, y-h, contentW, h, f.color)
	cv.DrawColorBar(marginL+10, y-10, f.color)
	cv.SetFont("B", f.geo.titleSize)
	cv.SetFillColor(White)
	cv.DrawString(marginL+14, y-f.geo.titleDrop, f.title)
	cv.SetFont("", 8)
	cv.SetFillColor(GrayLight)
	for i, line := range lines {
		cv.DrawString(marginL+14, y-f.geo.bodyDrop-float64(i)*11, line)
	}
}

// phaseCard is a roadmap entry with a small tag badge, a title and wrapped
// body text.
type phaseCard struct {
	tag   string
	title string
	desc  string
	color Color
}

func (p phaseCard) lines(cv *Canvas) []string {
	return cv.WrapText(p.desc, "", 8, bodyW)
}

func (p phaseCard) height(cv *Canvas) float64 {
	return 72 + float64(len(p.lines(cv)))*11
}

func (p phaseCard) gap() float64 { return 10 }

func (p phaseCard) draw(cv *Canvas, y float64) {
	lines := p.lines(cv)
	h := p.height(cv)
	cv.DrawDashedCard(marginL, y-h, contentW, h, p.color)
	cv.DrawBadge(marginL+12, y-4, p.tag, p.color)
	cv.SetFont("B", 11)
	cv.SetFillColor(White)
	cv.DrawString(marginL+14, y-42, p.title)
	cv.SetFont("", 8)
	cv.SetFillColor(GrayLight)
	for i, line := range lines {
		cv.DrawString(marginL+14, y-58-float64(i)*11, line)
	}
}

// buildCardPages instantiates the four card-page templates for a request,
// interpolating the client's name and business field into the fixed copy.
func buildCardPages(req domain.AuditRequest) []cardPage {
	return []cardPage{
		{
			badge:      "THE CHALLENGE",
			badgeColor: Red,
			heading:    "Where You Are Now",
			subheading: fmt.Sprintf("Based on your audit submission for %s", req.Field),
			cards: []card{
				quoteCard{text: req.Problem},
				statCard{value: "67%", desc: "of businesses using AI saw 20%+ revenue growth within 12 months", source: "McKinsey, 2025", color: Cyan},
				statCard{value: "78%", desc: "of leads go cold because businesses take 5+ hours to respond", source: "InsideSales Research", color: Orange},
				statCard{value: "10-15 hrs", desc: "per week saved on average when manual workflows are automated", source: "HubSpot State of AI", color: Yellow},
			},
		},
		{
			badge:      "OPPORTUNITIES",
			badgeColor: Green,
			heading:    "What You're Missing",
			subheading: "AI & automation opportunities tailored to your business",
			cards: []card{
				featureCard{title: "Instant Lead Response", desc: fmt.Sprintf("When someone contacts your %s business, AI responds in under 60 seconds — qualifying, answering questions, and booking calls on your calendar. No more lost leads from slow follow-up.", req.Field), color: Green, geo: opportunityGeometry},
				featureCard{title: "Automated Follow-Up Sequences", desc: "Personalized email sequences that nurture leads on autopilot. Each message adapts based on what the lead cares about. Runs 24/7 without you touching it.", color: Cyan, geo: opportunityGeometry},
				featureCard{title: "AI-Powered Content System", desc: "Turn one idea into 10 pieces of content across platforms. Blog posts, social media, email newsletters — all generated, scheduled, and posted automatically.", color: Orange, geo: opportunityGeometry},
				featureCard{title: "Smart Client Dashboard", desc: "Give your clients a real-time dashboard showing results, progress, and ROI. Builds trust, reduces check-in calls, and makes you look incredibly professional.", color: Purple, geo: opportunityGeometry},
			},
		},
		{
			badge:      "YOUR ROADMAP",
			badgeColor: Cyan,
			heading:    "The Plan",
			subheading: fmt.Sprintf("A phased approach for %s's %s business", req.Name, req.Field),
			cards: []card{
				phaseCard{tag: "WEEK 1-2", title: "Foundation", desc: "Audit your current tools, set up core integrations, build your AI response system. You'll see results from day one.", color: Green},
				phaseCard{tag: "WEEK 3-4", title: "Automation", desc: "Connect your workflows — lead capture, follow-up sequences, content pipeline. Everything runs without manual input.", color: Cyan},
				phaseCard{tag: "WEEK 5-6", title: "Optimization", desc: "Analyze what's working, refine messaging, add advanced features. Scale what converts, cut what doesn't.", color: Orange},
				phaseCard{tag: "ONGOING", title: "Growth", desc: "Monthly optimization, new automations as needs evolve, priority support. Your systems get smarter over time.", color: Yellow},
			},
		},
		{
			badge:      "WHY US",
			badgeColor: Purple,
			heading:    "Built Different",
			subheading: "What makes Blok Blok Studio different",
			cards: []card{
				featureCard{title: "We Build Systems, Not Websites", desc: "Most agencies hand you a website and disappear. We build the AI agents, automations, and workflows that actually grow your business.", color: Green, geo: reasonGeometry},
				featureCard{title: "AI-First Approach", desc: "Every solution leverages AI from the ground up. Not bolted on — built into the core of how your business operates.", color: Cyan, geo: reasonGeometry},
				featureCard{title: "Results in Weeks, Not Months", desc: "Our phased approach means measurable results within the first 2 weeks. No 6-month timelines with nothing to show.", color: Orange, geo: reasonGeometry},
				featureCard{title: "Everything Under One Roof", desc: "AI agents, workflow automation, websites, ads, content systems, dashboards — all from one team that understands how it connects.", color: Pink, geo: reasonGeometry},
				featureCard{title: "You Own Everything", desc: "No vendor lock-in. Everything we build, you own. If you ever want to bring it in-house, you can.", color: Yellow, geo: reasonGeometry},
			},
		},
	}
}

// ctaButton is one of the stacked buttons on the closing page.
type ctaButton struct {
	label  string
	sub    string
	filled bool
}

var ctaButtons = []ctaButton{
	{label: "BOOK YOUR FREE DISCOVERY CALL", sub: "cal.com/chasehaynes/discovery", filled: true},
	{label: "VISIT BLOK BLOK STUDIO", sub: "blokblokstudio.com"},
	{label: "FOLLOW ON INSTAGRAM", sub: "@haynes2va"},
}
