package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-renderer/internal/generate"
	"resume-renderer/internal/shared/storage/staging"
	"resume-renderer/resume/inspect"
	"resume-renderer/resume/model"
)

type renderOptions struct {
	in     string
	out    string
	format string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a resume payload to a file",
		Long:  "Reads a generate request body, writes the document as \"Resume - {name}.{ext}\" in the output directory and reads it back to verify it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.in, "in", "i", "", "Path to the JSON payload, - for stdin (required)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", ".", "Output directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "docx or pdf; overrides the payload format")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	ctx := cmd.Context()

	body, err := readPayload(cmd.InOrStdin(), opts.in)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	req, err := model.ParseRequest(body)
	if err != nil {
		return err
	}
	if opts.format != "" {
		if req.Format, err = model.ParseFormat(opts.format); err != nil {
			return err
		}
	}

	doc, err := generate.NewService(staging.Memory{}).Render(ctx, req)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(opts.out, doc.DownloadName)
	if err := os.WriteFile(path, doc.Bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	report, err := inspect.Bytes(ctx, doc.Bytes)
	if err != nil {
		return fmt.Errorf("render validation failed: %w", err)
	}
	if err := verify(report, doc.Format, req.Resume.Name); err != nil {
		return fmt.Errorf("render validation failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: wrote %s (%d bytes", path, len(doc.Bytes))
	if report.Pages > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d pages", report.Pages)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ")")
	return nil
}

func readPayload(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(filepath.Clean(path))
}

// verify checks the read-back document. The title is only compared when it
// is plain ASCII since PDF core fonts cannot carry every rune.
func verify(report inspect.Report, format model.Format, name string) error {
	if report.Format != format {
		return fmt.Errorf("expected %s, read back %s", format, report.Format)
	}
	if format == model.FormatPDF && report.Pages < 1 {
		return fmt.Errorf("pdf has no pages")
	}
	if name != "" && isASCII(name) && !strings.Contains(report.Text, name) {
		return fmt.Errorf("title %q missing from document text", name)
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
