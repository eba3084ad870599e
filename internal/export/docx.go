// Package export writes combined transcripts as styled .docx documents.
package export

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// TranscriptDocx writes a rendered plain-text transcript to outputPath as a
// docx: a bold title paragraph, then one paragraph per transcript entry with
// the role label in bold and the entry text in regular weight.
func TranscriptDocx(title, transcript, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, block := range strings.Split(transcript, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		p := doc.AddParagraph("")
		label, text, found := strings.Cut(block, ": ")
		if !found {
			addRun(p, block, false, fontSize)
			continue
		}
		addRun(p, label+": ", true, fontSize)
		addRun(p, text, false, fontSize)
	}

	return doc.SaveTo(outputPath)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
