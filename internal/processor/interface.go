package processor

import "context"

// Processor runs one combination batch: read both track directories, combine,
// write the deliverable, archive consumed inputs.
type Processor interface {
	Process(ctx context.Context) error
}
