package controllers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/usecase"
)

type ProgramController struct {
	Logger   *slog.Logger
	Importer usecase.ProgramImporter
}

func NewProgramController(logger *slog.Logger, importer usecase.ProgramImporter) *ProgramController {
	return &ProgramController{
		Logger:   logger,
		Importer: importer,
	}
}

// ImportProgramRequest is the request body for POST /import/program.
type ImportProgramRequest struct {
	FeedURL string `json:"feed_url"`
}

// Validate implements helpers.Validator.
func (r *ImportProgramRequest) Validate() []string {
	if strings.TrimSpace(r.FeedURL) == "" {
		return []string{"feed_url is required"}
	}
	u, err := url.Parse(r.FeedURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return []string{"feed_url must be an http(s) URL"}
	}
	return nil
}

// ImportProgram godoc
// @Summary Import a program feed
// @Description Fetches the JSON program feed and creates its topics, event dates, and time slots. Imported dates start hidden.
// @Tags import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.ImportProgramRequest true "Feed URL"
// @Success 200 {object} helpers.APIResponse{data=usecase.ProgramImportResult}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: internal_error"
// @Router /import/program [post]
func (c *ProgramController) ImportProgram(w http.ResponseWriter, r *http.Request) {
	var req ImportProgramRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Importer.Import(r.Context(), req.FeedURL)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "program import failed", "feed_url", req.FeedURL, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
