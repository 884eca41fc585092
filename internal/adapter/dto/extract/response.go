package extract

import "github.com/johnquangdev/agency-cms/internal/domain/entities"

// TranscriptResponse is the split, rendered and chaptered transcript
type TranscriptResponse struct {
	Lines          []entities.TimedLine `json:"lines"`
	TranscriptHTML string               `json:"transcript_html"`
	Chapters       []entities.Chapter   `json:"chapters"`
}

// FAQResponse holds the extracted question/answer pairs
type FAQResponse struct {
	FAQs []entities.FaqPair `json:"faqs"`
}
