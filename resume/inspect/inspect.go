// Package inspect reads rendered resumes back: page count and plain text.
// Libraries used: github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
package inspect

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-renderer/resume/model"
)

// Report summarizes a rendered document.
type Report struct {
	Format model.Format
	// Pages is the page count. DOCX files carry no layout, so it stays 0.
	Pages int
	Text  string
}

var pdfMagic = []byte("%PDF-")

// Detect sniffs the format from the payload header.
func Detect(data []byte) (model.Format, error) {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return model.FormatPDF, nil
	case hasPart(data, "word/document.xml"):
		return model.FormatDOCX, nil
	default:
		return "", errors.New("unrecognized document: neither pdf nor docx")
	}
}

// Bytes inspects an in-memory document.
func Bytes(ctx context.Context, data []byte) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	format, err := Detect(data)
	if err != nil {
		return Report{}, err
	}
	switch format {
	case model.FormatPDF:
		return PDF(data)
	default:
		return DOCX(data)
	}
}

// File inspects a document on disk.
func File(ctx context.Context, path string) (Report, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Report{}, err
	}
	report, err := Bytes(ctx, data)
	if err != nil {
		return Report{}, fmt.Errorf("inspect %s: %w", path, err)
	}
	return report, nil
}

func PDF(data []byte) (Report, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Report{}, err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return Report{}, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Report{}, err
	}
	return Report{Format: model.FormatPDF, Pages: reader.NumPage(), Text: buf.String()}, nil
}

func DOCX(data []byte) (Report, error) {
	if len(data) == 0 {
		return Report{}, errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Report{}, err
	}
	defer doc.Close()

	return Report{Format: model.FormatDOCX, Text: stripDocxXML(doc.Editable().GetContent())}, nil
}

// DOCXPart returns the raw bytes of one package part, e.g. "word/styles.xml".
func DOCXPart(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not found", name)
}

// DOCXParts lists the package part names in archive order.
func DOCXParts(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names, nil
}

func hasPart(data []byte, name string) bool {
	names, err := DOCXParts(data)
	if err != nil {
		return false
	}
	for _, n := range names {
		if strings.ReplaceAll(n, "\\", "/") == name {
			return true
		}
	}
	return false
}

// stripDocxXML keeps character data and ends each paragraph with a newline.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
