package combiner

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/caption-merge/internal/subtitle"
	"github.com/nguyentantai21042004/caption-merge/internal/transcript"
	"github.com/nguyentantai21042004/caption-merge/pkg/storezip"
)

const (
	outputSuffix      = "_Descriptive_Transcript.txt"
	defaultOutputName = "Descriptive_Transcript.txt"
)

// Combine pairs spoken inputs with descriptive inputs by identifier, runs the
// parse/tag/merge/render pipeline per pairing, and packages the outcome:
// a single transcript directly, several as one archive. Spoken inputs without
// an identifier are counted and skipped, never fatal.
func (c *implCombiner) Combine(ctx context.Context, batch Batch) (*Result, error) {
	descByID := make(map[string][]Input)
	for _, d := range batch.Descriptive {
		if id, ok := c.pattern.Extract(d.Name, d.Content); ok {
			descByID[id] = append(descByID[id], d)
		}
	}

	res := &Result{}
	for _, s := range batch.Spoken {
		id, ok := c.pattern.Extract(s.Name, s.Content)
		if !ok {
			c.logger.Debug(ctx, "No identifier in %s, skipping", s.Name)
			res.SkippedSpoken++
			continue
		}

		matches := descByID[id]
		if len(matches) == 0 {
			c.logger.Debug(ctx, "No descriptive counterpart for %s (%s)", s.Name, id)
			res.UnmatchedSpoken++
			continue
		}

		for _, d := range matches {
			c.logger.Info(ctx, "Combining %s + %s (%s)", s.Name, d.Name, id)
			res.Files = append(res.Files, OutputFile{
				Name:    id + outputSuffix,
				Content: combinePair(s.Content, d.Content),
			})
		}
	}

	// A lone pair with no identifier anywhere still combines, under the
	// fixed default name.
	if len(res.Files) == 0 && len(batch.Spoken) == 1 && len(batch.Descriptive) == 1 && res.SkippedSpoken == 1 {
		if _, ok := c.pattern.Extract(batch.Descriptive[0].Name, batch.Descriptive[0].Content); !ok {
			c.logger.Info(ctx, "Single pair without identifiers, using default output name")
			res.SkippedSpoken = 0
			res.Files = append(res.Files, OutputFile{
				Name:    defaultOutputName,
				Content: combinePair(batch.Spoken[0].Content, batch.Descriptive[0].Content),
			})
		}
	}

	switch len(res.Files) {
	case 0:
		res.Status = "no matching pairs"
	case 1:
		res.PayloadName = res.Files[0].Name
		res.Payload = []byte(res.Files[0].Content)
		res.Status = statusLine(res)
	default:
		archive := make([]storezip.File, len(res.Files))
		for i, f := range res.Files {
			archive[i] = storezip.File{Name: f.Name, Content: f.Content}
		}
		data, err := storezip.Build(archive)
		if err != nil {
			return nil, fmt.Errorf("build archive: %w", err)
		}
		res.PayloadName = fmt.Sprintf("Combined_%d_files.zip", len(res.Files))
		res.Payload = data
		res.Status = statusLine(res)
	}

	return res, nil
}

// combinePair runs the full single-pair pipeline: parse both tracks, tag by
// origin, merge, render.
func combinePair(spoken, descriptive string) string {
	entries := transcript.TagSpoken(subtitle.Parse(spoken))
	entries = append(entries, transcript.TagDescriptive(subtitle.Parse(descriptive))...)
	return transcript.Render(transcript.Merge(entries))
}

func statusLine(res *Result) string {
	s := fmt.Sprintf("combined %d file(s)", len(res.Files))
	if res.SkippedSpoken > 0 {
		s += fmt.Sprintf(", %d spoken input(s) had no identifier", res.SkippedSpoken)
	}
	if res.UnmatchedSpoken > 0 {
		s += fmt.Sprintf(", %d spoken input(s) had no descriptive match", res.UnmatchedSpoken)
	}
	return s
}
