package processor

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/caption-merge/internal/combiner"
)

// archiveInputs moves a batch's consumed input files out of their track
// directory so they are not combined again. Failures are logged, not fatal:
// the outputs are already written by the time this runs.
func (p *implProcessor) archiveInputs(ctx context.Context, inputs []combiner.Input, srcDir string) {
	if len(inputs) == 0 {
		return
	}

	destDir := filepath.Join(p.cfg.Paths.Archived, filepath.Base(srcDir))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		p.logger.Warn(ctx, "Failed to create archived dir %s: %v", destDir, err)
		return
	}

	for _, in := range inputs {
		src := filepath.Join(srcDir, in.Name)
		dest := filepath.Join(destDir, in.Name)
		if err := os.Rename(src, dest); err != nil {
			p.logger.Warn(ctx, "Failed to archive %s: %v", src, err)
			continue
		}
		p.logger.Debug(ctx, "Archived %s -> %s", src, dest)
	}
}
