package summarizer

import (
	"github.com/nguyentantai21042004/caption-merge/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
// Returns nil when no keys are configured; callers treat nil as "disabled".
func New(apiKeys []string, model string, log logger.Logger) Summarizer {
	if len(apiKeys) == 0 {
		return nil
	}
	return &implSummarizer{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}
