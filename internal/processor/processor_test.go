package processor

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/caption-merge/internal/combiner"
	"github.com/nguyentantai21042004/caption-merge/internal/config"
	"github.com/nguyentantai21042004/caption-merge/internal/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Spoken:      filepath.Join(root, "spoken"),
			Descriptive: filepath.Join(root, "descriptive"),
			Output:      filepath.Join(root, "output"),
			Archived:    filepath.Join(root, "archived"),
		},
		Combine: config.CombineConfig{IDPrefix: "MED"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	for _, dir := range []string{cfg.Paths.Spoken, cfg.Paths.Descriptive} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return cfg
}

func newTestProcessor(cfg *config.Config) Processor {
	log := logger.NewWithWriter(io.Discard, logger.LevelError)
	return New(cfg, combiner.New(cfg.Combine.IDPrefix, log), nil, log)
}

func writeSRT(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestProcessSinglePair(t *testing.T) {
	cfg := testConfig(t)
	writeSRT(t, cfg.Paths.Spoken, "MED-001.srt",
		"1\n00:00:01,000 --> 00:00:02,000\nHi there\n\n")
	writeSRT(t, cfg.Paths.Descriptive, "MED-001_desc.srt",
		"1\n00:00:01,500 --> 00:00:02,500\nOn-screen text: WELCOME\n\n")

	if err := newTestProcessor(cfg).Process(context.Background()); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	outPath := filepath.Join(cfg.Paths.Output, "MED-001_Descriptive_Transcript.txt")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "Speaker: Hi there\n\nOn-screen text: WELCOME"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}

	// Consumed inputs moved out of the track dirs.
	if _, err := os.Stat(filepath.Join(cfg.Paths.Spoken, "MED-001.srt")); !os.IsNotExist(err) {
		t.Error("spoken input not archived")
	}
	archived := filepath.Join(cfg.Paths.Archived, "spoken", "MED-001.srt")
	if _, err := os.Stat(archived); err != nil {
		t.Errorf("archived spoken input missing: %v", err)
	}
}

func TestProcessMultiplePairsWritesArchive(t *testing.T) {
	cfg := testConfig(t)
	writeSRT(t, cfg.Paths.Spoken, "MED-001.srt",
		"1\n00:00:01,000 --> 00:00:02,000\nFirst program\n\n")
	writeSRT(t, cfg.Paths.Spoken, "MED-002.srt",
		"1\n00:00:01,000 --> 00:00:02,000\nSecond program\n\n")
	writeSRT(t, cfg.Paths.Descriptive, "MED-001_desc.srt",
		"1\n00:00:01,500 --> 00:00:02,500\nA title card\n\n")
	writeSRT(t, cfg.Paths.Descriptive, "MED-002_desc.srt",
		"1\n00:00:01,500 --> 00:00:02,500\nAnother title card\n\n")

	if err := newTestProcessor(cfg).Process(context.Background()); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	zipPath := filepath.Join(cfg.Paths.Output, "Combined_2_files.zip")
	if _, err := os.Stat(zipPath); err != nil {
		t.Errorf("archive not written: %v", err)
	}
}

func TestProcessNoPairsLeavesInputs(t *testing.T) {
	cfg := testConfig(t)
	writeSRT(t, cfg.Paths.Spoken, "MED-001.srt",
		"1\n00:00:01,000 --> 00:00:02,000\nAlone\n\n")
	writeSRT(t, cfg.Paths.Spoken, "MED-002.srt",
		"1\n00:00:01,000 --> 00:00:02,000\nAlso alone\n\n")

	if err := newTestProcessor(cfg).Process(context.Background()); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// No output, inputs stay where they were.
	entries, err := os.ReadDir(cfg.Paths.Spoken)
	if err != nil {
		t.Fatalf("read spoken dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("spoken dir has %d entries, want 2", len(entries))
	}
	if _, err := os.Stat(cfg.Paths.Output); !os.IsNotExist(err) {
		t.Error("output dir created despite no pairs")
	}
}

func TestProcessEmptyDirs(t *testing.T) {
	cfg := testConfig(t)
	if err := newTestProcessor(cfg).Process(context.Background()); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
}
