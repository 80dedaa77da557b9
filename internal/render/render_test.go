package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lvillar/gofpdf/reader"

	"auditpdf/internal/domain"
)

func testRequest() domain.AuditRequest {
	return domain.AuditRequest{
		Name:    "Acme Co",
		Email:   "a@x.com",
		Field:   "Plumbing",
		Website: "acme.com",
		Problem: "We lose leads because no one answers the phone after hours.",
	}
}

func generate(t *testing.T, policy TruncationPolicy, req domain.AuditRequest) []byte {
	t.Helper()
	g := NewGenerator(TextLogo{}, policy)
	buf, err := g.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return buf
}

func readDoc(t *testing.T, data []byte) *reader.Document {
	t.Helper()
	doc, err := reader.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reading generated PDF: %v", err)
	}
	return doc
}

func pageText(t *testing.T, doc *reader.Document, n int) string {
	t.Helper()
	page, err := doc.Page(n)
	if err != nil {
		t.Fatalf("page %d: %v", n, err)
	}
	text, err := page.ExtractText()
	if err != nil {
		t.Fatalf("extracting page %d text: %v", n, err)
	}
	return text
}

func TestGenerate_SixLetterPages(t *testing.T) {
	data := generate(t, TruncateDrop, testRequest())

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not start with PDF magic header")
	}

	doc := readDoc(t, data)
	if doc.NumPages() != 6 {
		t.Fatalf("expected 6 pages, got %d", doc.NumPages())
	}
	for i := 1; i <= doc.NumPages(); i++ {
		page, err := doc.Page(i)
		if err != nil {
			t.Fatalf("page %d: %v", i, err)
		}
		w, h := page.MediaBox.Width(), page.MediaBox.Height()
		if w < 611.5 || w > 612.5 || h < 791.5 || h > 792.5 {
			t.Errorf("page %d: MediaBox %.1fx%.1f, want 612x792", i, w, h)
		}
	}
}

func TestGenerate_CoverUppercasesName(t *testing.T) {
	doc := readDoc(t, generate(t, TruncateDrop, testRequest()))

	cover := pageText(t, doc, 1)
	if !strings.Contains(cover, "ACME CO") {
		t.Errorf("cover text missing uppercased name: %q", cover)
	}
	if !strings.Contains(cover, "FREE BUSINESS AUDIT") {
		t.Errorf("cover text missing title: %q", cover)
	}
	if !strings.Contains(cover, "Plumbing") {
		t.Errorf("cover text missing business field: %q", cover)
	}
}

func TestGenerate_PageIndicatorAndProblemEcho(t *testing.T) {
	doc := readDoc(t, generate(t, TruncateDrop, testRequest()))

	problem := pageText(t, doc, 2)
	if !strings.Contains(problem, "02 / 06") {
		t.Errorf("page 2 missing page indicator: %q", problem)
	}
	if !strings.Contains(problem, "YOUR BIGGEST CHALLENGE") {
		t.Errorf("page 2 missing quote card title: %q", problem)
	}
	if !strings.Contains(problem, "no one answers the phone") {
		t.Errorf("page 2 missing submitted problem text: %q", problem)
	}
}

func TestGenerate_DropTruncatesStatsBelowFloor(t *testing.T) {
	req := testRequest()

	// Short problem: all three stat cards fit below the quote card.
	short := pageText(t, readDoc(t, generate(t, TruncateDrop, req)), 2)
	if !strings.Contains(short, "67%") {
		t.Errorf("expected first stat card on page 2: %q", short)
	}

	// A problem long enough that the quote card alone reaches the floor
	// leaves no room for any stat card.
	req.Problem = strings.Repeat("nobody answers the phone after hours and leads keep going cold ", 60)
	long := pageText(t, readDoc(t, generate(t, TruncateDrop, req)), 2)
	if strings.Contains(long, "67%") {
		t.Errorf("expected zero stat cards after oversized quote card: %q", long)
	}
	if !strings.Contains(long, "YOUR BIGGEST CHALLENGE") {
		t.Errorf("quote card itself must never be truncated: %q", long)
	}
}

func TestGenerate_DropAppliesFloorToFirstFeatureCard(t *testing.T) {
	req := testRequest()
	// A field long enough that the first opportunity card, whose body
	// interpolates it, is taller than the space below the page heading.
	req.Field = strings.Repeat("emergency drain and sewer repair ", 200)

	doc := readDoc(t, generate(t, TruncateDrop, req))
	if doc.NumPages() != 6 {
		t.Fatalf("expected 6 pages, got %d", doc.NumPages())
	}

	opportunities := pageText(t, doc, 3)
	if !strings.Contains(opportunities, "OPPORTUNITIES") {
		t.Errorf("page 3 badge missing: %q", opportunities)
	}
	if strings.Contains(opportunities, "Instant Lead Response") {
		t.Errorf("oversized first card must not be drawn past the floor: %q", opportunities)
	}

	// Pages whose cards do not interpolate the field keep their full content.
	roadmap := pageText(t, doc, 4)
	if !strings.Contains(roadmap, "Foundation") {
		t.Errorf("page 4 cards should be unaffected: %q", roadmap)
	}
}

func TestGenerate_SpillAddsContinuationPages(t *testing.T) {
	req := testRequest()
	req.Problem = strings.Repeat("nobody answers the phone after hours and leads keep going cold ", 60)

	doc := readDoc(t, generate(t, TruncateSpill, req))
	if doc.NumPages() <= 6 {
		t.Fatalf("expected continuation pages under spill policy, got %d", doc.NumPages())
	}

	// The header total reflects the planned page count, and the dropped
	// stats reappear on the continuation page.
	all := ""
	for i := 2; i < doc.NumPages(); i++ {
		all += pageText(t, doc, i)
	}
	if !strings.Contains(all, "67%") {
		t.Errorf("spilled stat cards missing from document")
	}
}

func TestGenerate_Metadata(t *testing.T) {
	doc := readDoc(t, generate(t, TruncateDrop, testRequest()))

	meta := doc.Metadata()
	if meta["Title"] != "Free Business Audit" {
		t.Errorf("Title = %q", meta["Title"])
	}
	if meta["Author"] != "Blok Blok Studio" {
		t.Errorf("Author = %q", meta["Author"])
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGenerator(TextLogo{}, TruncateDrop)
	if _, err := g.Generate(ctx, testRequest()); err == nil {
		t.Fatalf("expected canceled-context error")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    TruncationPolicy
		wantErr bool
	}{
		{"", TruncateDrop, false},
		{"drop", TruncateDrop, false},
		{"spill", TruncateSpill, false},
		{"shrink", TruncateDrop, true},
	}
	for _, tc := range tests {
		got, err := ParsePolicy(tc.in)
		if got != tc.want || (err != nil) != tc.wantErr {
			t.Errorf("ParsePolicy(%q) = %v, %v", tc.in, got, err)
		}
	}
}

func TestSelectLogo_FallsBackToText(t *testing.T) {
	if _, ok := SelectLogo("").(TextLogo); !ok {
		t.Errorf("empty path should select the text fallback")
	}
	if _, ok := SelectLogo("/definitely/missing/logo.png").(TextLogo); !ok {
		t.Errorf("missing asset should select the text fallback")
	}
}
