package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	pdfread "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-renderer/resume/inspect"
	"resume-renderer/resume/model"
)

func renderPDF(t *testing.T, body string) inspect.Report {
	t.Helper()
	doc, err := Render(model.FormatPDF, mustParse(t, body))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc.Bytes, []byte("%PDF-")))

	report, err := inspect.PDF(doc.Bytes)
	require.NoError(t, err)
	return report
}

// firstPageGlyphs returns the positioned glyphs drawn on page one.
func firstPageGlyphs(t *testing.T, body string) []pdfread.Text {
	t.Helper()
	doc, err := Render(model.FormatPDF, mustParse(t, body))
	require.NoError(t, err)

	reader, err := pdfread.NewReader(bytes.NewReader(doc.Bytes), int64(len(doc.Bytes)))
	require.NoError(t, err)
	return reader.Page(1).Content().Text
}

func textInFont(glyphs []pdfread.Text, font string) string {
	var sb strings.Builder
	for _, g := range glyphs {
		if g.Font == font {
			sb.WriteString(g.S)
		}
	}
	return sb.String()
}

func TestPDFTitleOnly(t *testing.T) {
	report := renderPDF(t, `{"name":"Ada Lovelace"}`)
	assert.Equal(t, 1, report.Pages)
	assert.Equal(t, "Ada Lovelace", strings.TrimSpace(report.Text))
}

func TestPDFFullResumeText(t *testing.T) {
	report := renderPDF(t, fullResume)
	assert.Equal(t, 1, report.Pages)
	for _, want := range []string{
		"Ada Lovelace",
		"Professional Summary",
		"Work Experience",
		"Analyst",
		"Babbage & Co",
		"Translated Menabrea",
		"Education",
		"Private tutoring",
		"Skills",
		"Poetical science",
	} {
		assert.Contains(t, report.Text, want)
	}
}

func TestPDFPaginatesLongLists(t *testing.T) {
	skills := make([]string, 0, 150)
	for i := range 150 {
		skills = append(skills, fmt.Sprintf("\"Skill %03d\"", i))
	}
	report := renderPDF(t, `{"name":"Ada","skills":[`+strings.Join(skills, ",")+`]}`)
	assert.Greater(t, report.Pages, 1)
	assert.Contains(t, report.Text, "Skill 149")
}

func TestPDFEmptyInputStillRenders(t *testing.T) {
	report := renderPDF(t, `{}`)
	assert.Equal(t, 1, report.Pages)
	assert.Empty(t, strings.TrimSpace(report.Text))
}

func TestPDFDateLinesItalic(t *testing.T) {
	italic := textInFont(firstPageGlyphs(t, fullResume), "Helvetica-Oblique")
	assert.Contains(t, italic, "1842 - 1843 | London")
	assert.Contains(t, italic, "1828 -")
	assert.NotContains(t, italic, "Analyst")
}

func TestPDFEmptyTitleKeepsItsLine(t *testing.T) {
	headingY := func(glyphs []pdfread.Text) float64 {
		for _, g := range glyphs {
			if g.Font == "Helvetica-Bold" && g.S == "P" {
				return g.Y
			}
		}
		t.Fatal("heading not found")
		return 0
	}

	named := headingY(firstPageGlyphs(t, `{"name":"Ada","summary":"Hi"}`))
	unnamed := headingY(firstPageGlyphs(t, `{"summary":"Hi"}`))
	assert.InDelta(t, named, unnamed, 0.01)
}

func TestPDFAccentColorChangesOutput(t *testing.T) {
	in := mustParse(t, `{"name":"Ada","summary":"Hi"}`)
	plain, err := Render(model.FormatPDF, in)
	require.NoError(t, err)

	in.AccentColor = "#C0FFEE"
	accented, err := Render(model.FormatPDF, in)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(plain.Bytes, accented.Bytes))
}

func TestWinText(t *testing.T) {
	assert.Equal(t, "caf\xe9 \x80", winText("café €"))
	assert.Equal(t, "? ok", winText("漢 ok"))
}
