package extract

// TranscriptRequest carries a pasted transcript
type TranscriptRequest struct {
	Text string `json:"text" validate:"max=1000000"`
}

// FAQRequest carries a pasted FAQ blob. Max 0 uses the configured default.
type FAQRequest struct {
	Text string `json:"text" validate:"max=200000"`
	Max  int    `json:"max" validate:"min=0,max=50"`
}
