package render

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"resume-renderer/resume/layout"
)

const (
	pdfFont        = "Helvetica"
	pdfMargin      = 20.0
	pdfBulletInset = 4.0
	pdfBulletGap   = 5.0
	pdfRuleWidth   = 0.3
	pdfBulletGlyph = "\x95"
	pdfProducer    = "resume-renderer"

	// 1pt in mm.
	ptToMM      = 25.4 / 72
	lineSpacing = 1.35
)

// pdfEpoch pins the info dictionary dates so equal input gives equal bytes.
var pdfEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFWriter lays blocks out on A4 pages with the core Helvetica fonts.
// Page breaks are left to fpdf.
type PDFWriter struct{}

func (PDFWriter) Write(w io.Writer, blocks []layout.Block, opts Options) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetCatalogSort(true)
	pdf.SetCreator(pdfProducer, false)

	accent := resolveAccent(opts.AccentColor)
	titleColor := ""
	if _, custom := accentHex(opts.AccentColor); custom {
		titleColor = accent
	}

	pdf.AddPage()
	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()

	for _, b := range blocks {
		switch b.Kind {
		case layout.KindTitle:
			// An empty name still takes the title line, as in the DOCX output.
			if b.Text != "" {
				pdf.SetTitle(b.Text, true)
				pdf.SetAuthor(b.Text, true)
			}
			h := applyStyle(pdf, StyleMap[layout.KindTitle], titleColor)
			pdf.MultiCell(0, h, winText(b.Text), "", "C", false)
			pdf.Ln(1)

		case layout.KindContactLine:
			h := applyStyle(pdf, StyleMap[layout.KindContactLine], "")
			pdf.MultiCell(0, h, winText(b.Text), "", "C", false)
			pdf.Ln(2)

		case layout.KindSectionHeading:
			pdf.Ln(4)
			h := applyStyle(pdf, StyleMap[layout.KindSectionHeading], accent)
			pdf.MultiCell(0, h, winText(b.Text), "", "L", false)
			r, g, bl := hexToRGB(accent)
			pdf.SetDrawColor(r, g, bl)
			pdf.SetLineWidth(pdfRuleWidth)
			y := pdf.GetY()
			pdf.Line(left, y, pageW-right, y)
			pdf.Ln(1.5)

		case layout.KindEmphasis:
			pdf.Ln(1.5)
			style := StyleMap[layout.KindEmphasis]
			bold := style
			bold.Bold = true
			h := applyStyle(pdf, bold, "")
			pdf.Write(h, winText(b.Lead))
			applyStyle(pdf, style, "")
			pdf.Write(h, winText(b.Rest()))
			pdf.Ln(h)

		case layout.KindBody, layout.KindDateLine:
			h := applyStyle(pdf, StyleMap[b.Kind], "")
			pdf.MultiCell(0, h, winText(b.Text), "", "L", false)
			pdf.Ln(1)

		case layout.KindBulletList:
			h := applyStyle(pdf, StyleMap[layout.KindBulletList], "")
			for _, item := range b.Items {
				pdf.SetX(left + pdfBulletInset)
				pdf.CellFormat(pdfBulletGap, h, pdfBulletGlyph, "", 0, "L", false, 0, "")
				pdf.MultiCell(0, h, winText(item), "", "L", false)
			}
			pdf.Ln(1)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// applyStyle sets font and color and returns the line height in mm. color
// overrides the style color when non-empty.
func applyStyle(pdf *fpdf.Fpdf, style RunStyle, color string) float64 {
	fontStyle := ""
	if style.Bold {
		fontStyle += "B"
	}
	if style.Italic {
		fontStyle += "I"
	}
	pdf.SetFont(pdfFont, fontStyle, style.Size)

	if color == "" {
		color = style.Color
	}
	r, g, b := hexToRGB(color)
	pdf.SetTextColor(r, g, b)

	return style.Size * ptToMM * lineSpacing
}

// winText transcodes to Windows-1252, the encoding of the core fonts.
// Runes outside the code page become '?'.
func winText(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			out = append(out, b)
			continue
		}
		out = append(out, '?')
	}
	return string(out)
}
