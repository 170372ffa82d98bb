// Package staging buffers a rendered document before it is sent.
package staging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

const (
	ModeMemory   = "memory"
	ModeTempFile = "tempfile"
)

// Stager collects the output of write and returns it as a byte slice.
type Stager interface {
	Stage(ctx context.Context, write func(io.Writer) error) ([]byte, error)
}

// New returns the stager for a configured mode.
func New(mode, dir string) (Stager, error) {
	switch mode {
	case "", ModeMemory:
		return Memory{}, nil
	case ModeTempFile:
		return TempFile{Dir: dir}, nil
	default:
		return nil, fmt.Errorf("unknown staging mode %q", mode)
	}
}

// Memory stages in a bytes.Buffer.
type Memory struct{}

func (Memory) Stage(ctx context.Context, write func(io.Writer) error) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TempFile stages through a scratch file that is removed before Stage
// returns, on success and on failure.
type TempFile struct {
	Dir string
}

func (s TempFile) Stage(ctx context.Context, write func(io.Writer) error) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(s.Dir, "resume-*.part")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := write(f); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind temp file: %w", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read temp file: %w", err)
	}
	return data, nil
}
