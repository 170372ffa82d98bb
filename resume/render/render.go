// Package render writes layout blocks as DOCX or PDF documents.
package render

import (
	"bytes"
	"fmt"
	"io"

	"resume-renderer/internal/shared/util"
	"resume-renderer/resume/layout"
	"resume-renderer/resume/model"
)

const (
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePDF  = "application/pdf"

	downloadPrefix   = "Resume - "
	fallbackBaseName = "resume"
)

// Options carries per-request presentation settings.
type Options struct {
	// AccentColor is a hex color for headings. Empty means the default navy.
	AccentColor string
}

// Document is a fully rendered resume ready to be sent to a client.
type Document struct {
	Format       model.Format
	ContentType  string
	DownloadName string
	Bytes        []byte
}

// Writer encodes a block sequence in one output format.
type Writer interface {
	Write(w io.Writer, blocks []layout.Block, opts Options) error
}

var writers = map[model.Format]Writer{
	model.FormatDOCX: DOCXWriter{},
	model.FormatPDF:  PDFWriter{},
}

var contentTypes = map[model.Format]string{
	model.FormatDOCX: MimeDOCX,
	model.FormatPDF:  MimePDF,
}

// ContentType returns the MIME type of a format.
func ContentType(format model.Format) string {
	return contentTypes[format]
}

// DownloadName builds "Resume - {name}.{ext}" with a sanitized name.
func DownloadName(name string, format model.Format) string {
	base := util.SanitizeDownloadName(name)
	if base == "" {
		base = fallbackBaseName
	}
	return downloadPrefix + base + "." + string(format)
}

// Write renders blocks to w. Panics raised by a writer are returned as
// *RenderError.
func Write(w io.Writer, format model.Format, blocks []layout.Block, opts Options) (err error) {
	writer, ok := writers[format]
	if !ok {
		return fmt.Errorf("%w %q", model.ErrUnsupportedFormat, format)
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = &RenderError{Format: format, Message: "writer panicked", Cause: fmt.Errorf("%v", rec)}
		}
	}()

	if err := writer.Write(w, blocks, opts); err != nil {
		return &RenderError{Format: format, Message: "write document", Cause: err}
	}
	return nil
}

// Render produces a complete in-memory document for a resume.
func Render(format model.Format, resume model.ResumeInput) (Document, error) {
	var buf bytes.Buffer
	opts := Options{AccentColor: resume.AccentColor}
	if err := Write(&buf, format, layout.Assemble(resume), opts); err != nil {
		return Document{}, err
	}
	return NewDocument(format, resume.Name, buf.Bytes()), nil
}

// NewDocument wraps rendered bytes with their response metadata.
func NewDocument(format model.Format, name string, data []byte) Document {
	return Document{
		Format:       format,
		ContentType:  ContentType(format),
		DownloadName: DownloadName(name, format),
		Bytes:        data,
	}
}
