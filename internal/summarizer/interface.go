package summarizer

import "context"

// Summarizer produces an LLM-generated markdown summary of a combined
// transcript. Optional: the pipeline runs without one.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
