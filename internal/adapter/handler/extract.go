package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	extractDTO "github.com/johnquangdev/agency-cms/internal/adapter/dto/extract"
	"github.com/johnquangdev/agency-cms/internal/usecase/extract"
)

// Extract exposes the extraction engine to the admin editors
type Extract struct {
	extractor *extract.Extractor
	logger    *zap.Logger
}

// NewExtractHandler creates a new extract handler
func NewExtractHandler(extractor *extract.Extractor, logger *zap.Logger) *Extract {
	return &Extract{extractor: extractor, logger: logger}
}

// Transcript handles POST /admin/extract/transcript
// @Summary      Preview a transcript
// @Description  Splits a pasted transcript into lines, renders the escaped HTML and synthesizes chapters
// @Tags         Admin Extract
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      extract.TranscriptRequest  true  "Transcript"
// @Success      200      {object}  extract.TranscriptResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Router       /admin/extract/transcript [post]
func (h *Extract) Transcript(c echo.Context) error {
	var req extractDTO.TranscriptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &extractDTO.TranscriptResponse{
		Lines:          extract.Split(req.Text),
		TranscriptHTML: extract.RenderTranscript(req.Text),
		Chapters:       h.extractor.Chapters(req.Text),
	})
}

// FAQs handles POST /admin/extract/faqs
// @Summary      Preview FAQ extraction
// @Description  Extracts question/answer pairs from a pasted blob. max 0 uses the configured default.
// @Tags         Admin Extract
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      extract.FAQRequest  true  "FAQ text"
// @Success      200      {object}  extract.FAQResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Router       /admin/extract/faqs [post]
func (h *Extract) FAQs(c echo.Context) error {
	var req extractDTO.FAQRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &extractDTO.FAQResponse{
		FAQs: h.extractor.FAQs(req.Text, req.Max),
	})
}
