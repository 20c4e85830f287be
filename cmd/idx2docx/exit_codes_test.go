package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	idx2docx "github.com/alnah/go-idx2docx"
	"github.com/alnah/go-idx2docx/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "unknown error", err: errors.New("boom"), expected: ExitGeneral},
		{name: "permission denied", err: os.ErrPermission, expected: ExitIO},
		{name: "read failure", err: idx2docx.ErrReadInput, expected: ExitIO},
		{name: "write failure", err: idx2docx.ErrWriteOutput, expected: ExitIO},
		{name: "no input argument", err: ErrNoInput, expected: ExitUsage},
		{name: "too many arguments", err: ErrTooManyArgs, expected: ExitUsage},
		{name: "bad extension", err: ErrBadExtension, expected: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, expected: ExitUsage},
		{name: "config parse failure", err: config.ErrConfigParse, expected: ExitUsage},
		{name: "invalid config field", err: config.ErrInvalidField, expected: ExitUsage},
		{name: "input missing", err: idx2docx.ErrInputNotFound, expected: ExitUsage},
		{name: "empty input", err: idx2docx.ErrEmptyInput, expected: ExitUsage},
		{name: "output exists", err: idx2docx.ErrOutputExists, expected: ExitUsage},
		{name: "malformed row", err: idx2docx.ErrMalformedRow, expected: ExitUsage},
		{name: "invalid margin", err: idx2docx.ErrInvalidMargin, expected: ExitUsage},
		{name: "invalid color", err: idx2docx.ErrInvalidColor, expected: ExitUsage},
		{
			name:     "wrapped sentinel",
			err:      fmt.Errorf("loading config: %w", config.ErrConfigNotFound),
			expected: ExitUsage,
		},
		{
			name:     "deeply wrapped io error",
			err:      fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", idx2docx.ErrWriteOutput)),
			expected: ExitIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.expected {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
