package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.csv")
	if err := os.WriteFile(file, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "regular file", path: file, expected: true},
		{name: "missing file", path: filepath.Join(dir, "absent.csv"), expected: false},
		{name: "directory", path: dir, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.expected {
				t.Errorf("FileExists(%q) = %t, want %t", tt.path, got, tt.expected)
			}
		})
	}
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		inputPath string
		extension string
		expected  string
	}{
		{
			name:      "swaps extension",
			inputPath: "gcih.csv",
			extension: "docx",
			expected:  "gcih.docx",
		},
		{
			name:      "strips directories",
			inputPath: "data/indexes/gcih.csv",
			extension: "docx",
			expected:  "gcih.docx",
		},
		{
			name:      "no input extension",
			inputPath: "gcih",
			extension: "docx",
			expected:  "gcih.docx",
		},
		{
			name:      "keeps inner dots",
			inputPath: "gcih.v2.csv",
			extension: "docx",
			expected:  "gcih.v2.docx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := OutputName(tt.inputPath, tt.extension); got != tt.expected {
				t.Errorf("OutputName(%q, %q) = %q, want %q", tt.inputPath, tt.extension, got, tt.expected)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "valid extension", extension: "docx", wantErr: nil},
		{name: "empty extension", extension: "", wantErr: ErrExtensionEmpty},
		{name: "forward slash", extension: "a/b", wantErr: ErrExtensionPathTraversal},
		{name: "backslash", extension: `a\b`, wantErr: ErrExtensionPathTraversal},
		{name: "null byte", extension: "do\x00cx", wantErr: ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestWriteNewFile(t *testing.T) {
	t.Parallel()

	t.Run("writes fresh file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.docx")
		if err := WriteNewFile(path, []byte("content")); err != nil {
			t.Fatalf("WriteNewFile() unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "content" {
			t.Errorf("file content = %q, want %q", data, "content")
		}
	})

	t.Run("refuses existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.docx")
		if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
			t.Fatal(err)
		}

		err := WriteNewFile(path, []byte("clobber"))
		if !errors.Is(err, os.ErrExist) {
			t.Fatalf("WriteNewFile() error = %v, want os.ErrExist", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "original" {
			t.Errorf("existing file was modified: %q", data)
		}
	})
}
