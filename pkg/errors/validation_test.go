package errors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateInputDir(t *testing.T) {
	full := t.TempDir()
	writeFile(t, filepath.Join(full, BoardFile))
	writeFile(t, filepath.Join(full, ComponentsFile))

	noComponents := t.TempDir()
	writeFile(t, filepath.Join(noComponents, BoardFile))

	noBoard := t.TempDir()
	writeFile(t, filepath.Join(noBoard, ComponentsFile))

	notDir := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, notDir)

	tests := []struct {
		name string
		dir  string
		code Code
	}{
		{"valid", full, ""},
		{"empty", "", ErrCodeInvalidPath},
		{"missing dir", filepath.Join(full, "nope"), ErrCodeInvalidPath},
		{"not a directory", notDir, ErrCodeInvalidPath},
		{"no components", noComponents, ErrCodeMissingInputFile},
		{"no board", noBoard, ErrCodeMissingInputFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputDir(tt.dir)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("ValidateInputDir() error = %v", err)
				}
				return
			}
			if !Is(err, tt.code) {
				t.Errorf("ValidateInputDir() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "out_bom.csv", false},
		{"no extension", "placement", false},

		{"empty", "", true},
		{"slash", "out/bom.csv", true},
		{"backslash", "out\\bom.csv", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"control char", "bom\x01.csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x,y\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}
