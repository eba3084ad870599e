package processor

import (
	"github.com/nguyentantai21042004/caption-merge/internal/combiner"
	"github.com/nguyentantai21042004/caption-merge/internal/config"
	"github.com/nguyentantai21042004/caption-merge/internal/logger"
	"github.com/nguyentantai21042004/caption-merge/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	combiner   combiner.Combiner
	summarizer summarizer.Summarizer // nil when no API keys are configured
	logger     logger.Logger
}

// New creates a Processor around the given combiner. summ may be nil, in
// which case no summaries are produced.
func New(cfg *config.Config, comb combiner.Combiner, summ summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		combiner:   comb,
		summarizer: summ,
		logger:     log,
	}
}
