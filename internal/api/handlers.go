package api

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"ai_site_builder/internal/ai"
	"ai_site_builder/internal/export"
	"ai_site_builder/internal/logger"
	"ai_site_builder/internal/types"
)

const (
	msgMissingFields      = "Missing required fields: prompt, businessType, and style are required"
	msgMissingEnhance     = "Missing required fields: content and instructions are required"
	msgProviderNotReady   = "AI provider not configured. Please set the API key for the selected LLM_PROVIDER."
	msgInvalidBody        = "Invalid request body"
	msgMissingExportHTML  = "Missing required field: html"
	msgExportRenderFailed = "Failed to build HTML document"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator *ai.Generator
	configErr error // non-nil when the LLM provider could not be built
	log       *zap.Logger
}

// NewAPIHandler initializes a new API handler. configErr is the provider
// construction error, if any; generation endpoints report it instead of
// calling the model.
func NewAPIHandler(gen *ai.Generator, configErr error, log *zap.Logger) *APIHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &APIHandler{
		generator: gen,
		configErr: configErr,
		log:       log,
	}
}

// --- Structs for API Requests/Responses ---

// Response is the envelope shared by every JSON endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type EnhanceSectionRequest struct {
	Content      string `json:"content" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
}

type EnhanceSectionResponse struct {
	Content string `json:"content"`
}

type OptionsResponse struct {
	BusinessTypes []string      `json:"businessTypes"`
	Styles        []types.Style `json:"styles"`
	Features      []string      `json:"features"`
}

// --- API Handlers ---

// POST /website/generate
func (h *APIHandler) GenerateWebsite(c *gin.Context) {
	log := logger.FromContext(c.Request.Context(), h.log)

	req, err := bindGenerationRequest(c)
	if err != nil {
		log.Info("rejected generation request", zap.Error(err))
		fail(c, http.StatusBadRequest, generationErrorMessage(err))
		return
	}

	if h.configErr != nil {
		log.Error("generation requested without a configured provider", zap.Error(h.configErr))
		fail(c, http.StatusInternalServerError, msgProviderNotReady)
		return
	}

	record := h.generator.GenerateWebsite(c.Request.Context(), req)
	c.JSON(http.StatusOK, Response{Success: true, Data: record})
}

// POST /website/enhance-section
func (h *APIHandler) EnhanceSection(c *gin.Context) {
	log := logger.FromContext(c.Request.Context(), h.log)

	var req EnhanceSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info("rejected enhancement request", zap.Error(err))
		msg := msgInvalidBody
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msg = msgMissingEnhance
		}
		fail(c, http.StatusBadRequest, msg)
		return
	}

	if h.configErr != nil {
		log.Error("enhancement requested without a configured provider", zap.Error(h.configErr))
		fail(c, http.StatusInternalServerError, msgProviderNotReady)
		return
	}

	content := h.generator.EnhanceSection(c.Request.Context(), req.Content, req.Instructions)
	c.JSON(http.StatusOK, Response{Success: true, Data: EnhanceSectionResponse{Content: content}})
}

// POST /website/export
func (h *APIHandler) ExportWebsite(c *gin.Context) {
	log := logger.FromContext(c.Request.Context(), h.log)

	var record types.WebsiteRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		fail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if strings.TrimSpace(record.HTML) == "" {
		fail(c, http.StatusBadRequest, msgMissingExportHTML)
		return
	}

	doc, err := export.BuildHTMLDocument(&record)
	if err != nil {
		log.Error("export failed", zap.Error(err))
		fail(c, http.StatusInternalServerError, msgExportRenderFailed)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename(record.Title)})
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// GET /website/options
func (h *APIHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Data: OptionsResponse{
		BusinessTypes: types.BusinessTypes,
		Styles:        types.Styles,
		Features:      types.AvailableFeatures,
	}})
}

// GET /health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"provider":   h.generator.Provider(),
		"configured": h.configErr == nil,
	})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Success: false, Error: msg})
}

// bindGenerationRequest decodes the body and classifies validation failures
// as ErrMissingField or ErrInvalidStyle.
func bindGenerationRequest(c *gin.Context) (types.GenerationRequest, error) {
	var req types.GenerationRequest
	err := c.ShouldBindJSON(&req)
	if err == nil {
		return req, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return req, err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return req, fmt.Errorf("%w: %s", types.ErrMissingField, fe.Field())
		}
	}
	for _, fe := range verrs {
		if fe.Field() == "Style" {
			return req, fmt.Errorf("%w: %v", types.ErrInvalidStyle, fe.Value())
		}
	}
	return req, err
}

func generationErrorMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrMissingField):
		return msgMissingFields
	case errors.Is(err, types.ErrInvalidStyle):
		return "Invalid style: must be one of " + joinStyles()
	default:
		return msgInvalidBody
	}
}

func joinStyles() string {
	names := make([]string, len(types.Styles))
	for i, s := range types.Styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
