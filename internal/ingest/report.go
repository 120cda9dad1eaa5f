package ingest

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/blablab-app/blablab-server/internal/pipeline"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	headingSize = 15
	titleSize   = 16
)

// writeReport renders a pipeline result as a styled docx: title, detected
// language, the transcript, then the rewrite under its voice label.
func writeReport(title string, result *pipeline.Result, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	addStyledRun(doc.AddParagraph(""), "Detected language: "+result.DetectedLanguage, false, fontSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Transcript", true, headingSize)
	addStyledRun(doc.AddParagraph(""), result.Transcription, false, fontSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), result.Label, true, headingSize)
	addStyledRun(doc.AddParagraph(""), result.Rewrite, false, fontSize)

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
