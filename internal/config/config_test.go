package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Spoken:      "data/spoken",
					Descriptive: "data/descriptive",
					Output:      "data/output",
				},
				Combine: CombineConfig{
					IDPrefix: "MED",
				},
			},
			wantErr: false,
		},
		{
			name: "missing spoken dir",
			config: Config{
				Paths: PathsConfig{
					Descriptive: "data/descriptive",
					Output:      "data/output",
				},
				Combine: CombineConfig{
					IDPrefix: "MED",
				},
			},
			wantErr: true,
		},
		{
			name: "missing descriptive dir",
			config: Config{
				Paths: PathsConfig{
					Spoken: "data/spoken",
					Output: "data/output",
				},
				Combine: CombineConfig{
					IDPrefix: "MED",
				},
			},
			wantErr: true,
		},
		{
			name: "missing id prefix",
			config: Config{
				Paths: PathsConfig{
					Spoken:      "data/spoken",
					Descriptive: "data/descriptive",
					Output:      "data/output",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			Spoken:      "data/spoken",
			Descriptive: "data/descriptive",
			Output:      "data/output",
		},
		Combine: CombineConfig{
			IDPrefix: "MED",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Archived != "data/archived" {
		t.Errorf("Archived = %q, want %q", cfg.Paths.Archived, "data/archived")
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.Performance.MaxConcurrent)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Gemini.Model == "" {
		t.Error("Gemini.Model not defaulted")
	}
}

func TestLoad(t *testing.T) {
	content := `
paths:
  spoken: data/spoken
  descriptive: data/descriptive
  output: data/output
combine:
  id_prefix: MED
  export_docx: true
logging:
  level: debug
performance:
  max_concurrent: 4
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Combine.IDPrefix != "MED" {
		t.Errorf("IDPrefix = %q, want %q", cfg.Combine.IDPrefix, "MED")
	}
	if !cfg.Combine.ExportDocx {
		t.Error("ExportDocx = false, want true")
	}
	if cfg.Performance.MaxConcurrent != 4 {
		t.Errorf("MaxConcurrent = %d, want 4", cfg.Performance.MaxConcurrent)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.yaml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
