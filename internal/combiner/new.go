package combiner

import (
	"github.com/nguyentantai21042004/caption-merge/internal/logger"
)

type implCombiner struct {
	pattern *IdentifierPattern
	logger  logger.Logger
}

// New creates a Combiner pairing inputs by identifiers built from idPrefix.
func New(idPrefix string, log logger.Logger) Combiner {
	return &implCombiner{
		pattern: NewIdentifierPattern(idPrefix),
		logger:  log,
	}
}
