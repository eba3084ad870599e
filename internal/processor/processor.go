package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/caption-merge/internal/combiner"
	"github.com/nguyentantai21042004/caption-merge/internal/export"
)

// Process runs one full combination batch. Reads of the two track directories
// are issued concurrently (bounded by performance.max_concurrent); combination
// itself is single-threaded. A read failure aborts the batch with no partial
// output. Zero pairings is reported, not an error.
func (p *implProcessor) Process(ctx context.Context) error {
	startTime := time.Now()

	spoken, err := p.readInputs(ctx, p.cfg.Paths.Spoken)
	if err != nil {
		return fmt.Errorf("read spoken inputs: %w", err)
	}
	descriptive, err := p.readInputs(ctx, p.cfg.Paths.Descriptive)
	if err != nil {
		return fmt.Errorf("read descriptive inputs: %w", err)
	}

	if len(spoken) == 0 && len(descriptive) == 0 {
		p.logger.Debug(ctx, "No subtitle inputs found")
		return nil
	}

	p.logger.Info(ctx, "Combining %d spoken and %d descriptive input(s)", len(spoken), len(descriptive))

	res, err := p.combiner.Combine(ctx, combiner.Batch{Spoken: spoken, Descriptive: descriptive})
	if err != nil {
		return fmt.Errorf("combine batch: %w", err)
	}

	if len(res.Files) == 0 {
		p.logger.Warn(ctx, "Batch produced no output: %s", res.Status)
		return nil
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	payloadPath := filepath.Join(p.cfg.Paths.Output, res.PayloadName)
	if err := os.WriteFile(payloadPath, res.Payload, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	p.logger.Info(ctx, "Wrote %s (%d bytes)", payloadPath, len(res.Payload))

	if p.cfg.Combine.ExportDocx {
		p.exportDocx(ctx, res.Files)
	}
	if p.summarizer != nil {
		p.writeSummaries(ctx, res.Files)
	}

	p.archiveInputs(ctx, spoken, p.cfg.Paths.Spoken)
	p.archiveInputs(ctx, descriptive, p.cfg.Paths.Descriptive)

	p.logger.Info(ctx, "Batch done in %s: %s", time.Since(startTime), res.Status)
	return nil
}

// readInputs lists the .srt files in dir and reads them all concurrently
// under the semaphore. A missing directory yields an empty batch side.
func (p *implProcessor) readInputs(ctx context.Context, dir string) ([]combiner.Input, error) {
	paths, err := discoverSRTFiles(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	inputs := make([]combiner.Input, len(paths))
	errCh := make(chan error, len(paths))
	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)

	var wg sync.WaitGroup
	for i, path := range paths {
		if err := sem.acquire(ctx); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer sem.release()

			data, err := os.ReadFile(path)
			if err != nil {
				errCh <- fmt.Errorf("read %s: %w", path, err)
				return
			}
			inputs[i] = combiner.Input{Name: filepath.Base(path), Content: string(data)}
		}(i, path)
	}
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	return inputs, nil
}

func (p *implProcessor) exportDocx(ctx context.Context, files []combiner.OutputFile) {
	for _, f := range files {
		title := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
		docxPath := filepath.Join(p.cfg.Paths.Output, title+".docx")
		if err := export.TranscriptDocx(title, f.Content, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to export %s: %v", docxPath, err)
			continue
		}
		p.logger.Info(ctx, "Exported %s", docxPath)
	}
}

func (p *implProcessor) writeSummaries(ctx context.Context, files []combiner.OutputFile) {
	for _, f := range files {
		title := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
		summary, err := p.summarizer.Summarize(ctx, f.Content)
		if err != nil {
			p.logger.Error(ctx, "Failed to summarize %s: %v", title, err)
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			title,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		mdPath := filepath.Join(p.cfg.Paths.Output, title+".md")
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			p.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
			continue
		}
		p.logger.Info(ctx, "Summarized %s -> %s", title, mdPath)
	}
}

func discoverSRTFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".srt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
