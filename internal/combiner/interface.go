package combiner

import "context"

// Combiner pairs spoken and descriptive subtitle inputs and produces a single
// deliverable: one transcript file, or an archive when a batch yields several.
type Combiner interface {
	Combine(ctx context.Context, batch Batch) (*Result, error)
}

// Input is one subtitle track supplied by the caller: a filename and its full
// text content. The combiner never touches the filesystem itself.
type Input struct {
	Name    string
	Content string
}

// Batch holds the two input sets of one combination action.
type Batch struct {
	Spoken      []Input
	Descriptive []Input
}

// OutputFile is one combined transcript, the unit the archive writer consumes.
type OutputFile struct {
	Name    string
	Content string
}

// Result is the structured outcome of a batch. Exactly one of the failure
// modes applies: zero Files is a pairing miss (not an error, Status says so);
// a returned error from Combine is a batch failure.
type Result struct {
	Files       []OutputFile
	PayloadName string
	Payload     []byte
	Status      string

	SkippedSpoken   int // spoken inputs with no resolvable identifier
	UnmatchedSpoken int // spoken inputs whose identifier matched nothing
}
