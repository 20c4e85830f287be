package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	idx2docx "github.com/alnah/go-idx2docx"
	"github.com/alnah/go-idx2docx/internal/config"
)

const sampleCSV = "Zebra,1,5,desc1\napple,3,2,desc2\n"

func TestRunConvertsFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile("gcih.csv", []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(&cliFlags{}, []string{"gcih.csv"}, &out); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	data, err := os.ReadFile("gcih.docx")
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("output is not a zip container")
	}

	for _, want := range []string{"Processing:", "Aa", "Zz", "Document created:", "gcih.docx"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunQuietSuppressesOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile("gcih.csv", []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	flags := &cliFlags{common: commonFlags{quiet: true}}
	if err := run(flags, []string{"gcih.csv"}, &out); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("quiet run produced output: %q", out.String())
	}
}

func TestRunExplicitOutputPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "index.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "custom.docx")

	var out bytes.Buffer
	flags := &cliFlags{output: outPath, common: commonFlags{quiet: true}}
	if err := run(flags, []string{csvPath}, &out); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("explicit output path not used: %v", err)
	}
}

func TestRunArgumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no arguments", args: nil, wantErr: ErrNoInput},
		{name: "two arguments", args: []string{"a.csv", "b.csv"}, wantErr: ErrTooManyArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			err := run(&cliFlags{}, tt.args, &out)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunRefusesExistingOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "index.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "index.docx")
	if err := os.WriteFile(outPath, []byte("precious"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	flags := &cliFlags{output: outPath, common: commonFlags{quiet: true}}
	err := run(flags, []string{csvPath}, &out)
	if !errors.Is(err, idx2docx.ErrOutputExists) {
		t.Fatalf("run() error = %v, want ErrOutputExists", err)
	}
}

func TestRunMissingConfig(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	flags := &cliFlags{common: commonFlags{config: filepath.Join(t.TempDir(), "absent.yaml")}}
	err := run(flags, []string{"gcih.csv"}, &out)
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("run() error = %v, want ErrConfigNotFound", err)
	}
}

func TestRunInvalidFlagValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "index.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	flags := &cliFlags{
		output: filepath.Join(dir, "out.docx"),
		common: commonFlags{quiet: true},
		text:   textFlags{topicColor: "not-a-color"},
	}
	err := run(flags, []string{csvPath}, &out)
	if !errors.Is(err, idx2docx.ErrInvalidColor) {
		t.Errorf("run() error = %v, want ErrInvalidColor", err)
	}
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Page: config.PageConfig{Margin: 0.5, Columns: 3},
		Text: config.TextConfig{BodyFont: "Georgia", TopicColor: "00FF00"},
	}
	flags := &cliFlags{
		page: pageFlags{margin: 1.0},
		text: textFlags{topicColor: "FF0000"},
	}

	mergeFlags(flags, cfg)

	// Set flags win over the config file.
	if cfg.Page.Margin != 1.0 {
		t.Errorf("Page.Margin = %v, want flag value 1.0", cfg.Page.Margin)
	}
	if cfg.Text.TopicColor != "FF0000" {
		t.Errorf("Text.TopicColor = %q, want flag value FF0000", cfg.Text.TopicColor)
	}

	// Unset flags leave config values alone.
	if cfg.Page.Columns != 3 {
		t.Errorf("Page.Columns = %d, want config value 3", cfg.Page.Columns)
	}
	if cfg.Text.BodyFont != "Georgia" {
		t.Errorf("Text.BodyFont = %q, want config value Georgia", cfg.Text.BodyFont)
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flagOutput string
		cfg        config.Config
		expected   string
		wantErr    error
	}{
		{
			name:       "explicit flag wins",
			flagOutput: "custom.docx",
			cfg:        config.Config{Output: config.OutputConfig{Extension: "odt"}},
			expected:   "custom.docx",
		},
		{
			name:     "no extension defers to service",
			expected: "",
		},
		{
			name:     "config extension derives name",
			cfg:      config.Config{Output: config.OutputConfig{Extension: "odt"}},
			expected: "gcih.odt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveOutputPath(tt.flagOutput, "data/gcih.csv", &tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("resolveOutputPath() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.expected)
			}
		})
	}
}
