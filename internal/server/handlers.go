package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/davidchen/resume-builder/internal/layout"
	"github.com/davidchen/resume-builder/internal/pipeline"
	"github.com/davidchen/resume-builder/internal/types"
)

// BuildRequest represents the request body for /resume/build
type BuildRequest struct {
	JobDescription string             `json:"jobDescription" validate:"required,min=10"`
	UserProfile    *types.UserProfile `json:"userProfile" validate:"required"`
	Template       string             `json:"template,omitempty"`
	Pages          string             `json:"pages,omitempty" validate:"omitempty,oneof=1 2 3"`
	Density        int                `json:"density,omitempty" validate:"omitempty,min=1,max=5"`
}

// GenerateRequest represents the request body for /resume/generate
type GenerateRequest struct {
	JobDescription string             `json:"jobDescription" validate:"required,min=10"`
	UserProfile    *types.UserProfile `json:"userProfile" validate:"required"`
	Pages          string             `json:"pages,omitempty" validate:"omitempty,oneof=1 2 3"`
}

// GenerateResponse represents the response for /resume/generate
type GenerateResponse struct {
	Content *types.AIContent `json:"content"`
}

// RenderRequest represents the request body for /resume/render
type RenderRequest struct {
	AIContent   *types.AIContent   `json:"aiContent" validate:"required"`
	UserProfile *types.UserProfile `json:"userProfile" validate:"required"`
	Template    string             `json:"template,omitempty"`
	Pages       string             `json:"pages,omitempty" validate:"omitempty,oneof=1 2 3"`
	Density     int                `json:"density,omitempty" validate:"omitempty,min=1,max=5"`
}

// PDFRequest represents the request body for /resume/pdf
type PDFRequest struct {
	HTML  string `json:"html" validate:"required"`
	Pages string `json:"pages,omitempty" validate:"omitempty,oneof=1 2 3"`
}

// responder tracks whether the artifact has started streaming. Once it has,
// no error body may follow; late failures are logged instead.
type responder struct {
	w         http.ResponseWriter
	requestID string
	wrote     bool
}

// Error writes an error JSON response unless the artifact already went out.
func (rsp *responder) Error(status int, message string) {
	if rsp.wrote {
		log.Printf("[SERVER] %s response already sent, dropping error: %s", rsp.requestID, message)
		return
	}
	rsp.wrote = true
	rsp.w.Header().Set("Content-Type", "application/json")
	rsp.w.WriteHeader(status)
	if err := json.NewEncoder(rsp.w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("[SERVER] %s error encoding JSON response: %v", rsp.requestID, err)
	}
}

// PDF streams the artifact with its page-fit metrics in headers.
func (rsp *responder) PDF(result *types.RenderResult) {
	if rsp.wrote {
		log.Printf("[SERVER] %s response already sent, dropping artifact", rsp.requestID)
		return
	}
	rsp.wrote = true
	rsp.w.Header().Set("Content-Type", "application/pdf")
	rsp.w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	rsp.w.Header().Set("X-Actual-Pages", strconv.Itoa(result.ActualPages))
	rsp.w.Header().Set("X-Target-Pages", result.TargetPages)
	rsp.w.Header().Set("X-Density", strconv.Itoa(result.Density))
	rsp.w.WriteHeader(http.StatusOK)
	if _, err := rsp.w.Write(result.PDF); err != nil {
		log.Printf("[SERVER] %s error streaming artifact: %v", rsp.requestID, err)
	}
}

// handleBuild generates tailored content for a job description and renders
// it to a paginated PDF.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	rsp := &responder{w: w, requestID: requestID}

	var req BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rsp.Error(http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validateRequest(req, req.UserProfile); err != nil {
		rsp.Error(HTTPStatus(err), err.Error())
		return
	}

	if s.generator == nil {
		rsp.Error(http.StatusServiceUnavailable, "content generation is not configured")
		return
	}

	pages := req.Pages
	if pages == "" {
		pages = types.DefaultTargetPages
	}

	log.Printf("[SERVER] %s building %s-page resume for %q", requestID, pages, req.UserProfile.FullName)

	ai, err := s.generator.Generate(r.Context(), req.JobDescription, req.UserProfile, pages)
	if err != nil {
		log.Printf("[SERVER] %s generation failed: %v", requestID, err)
		rsp.Error(HTTPStatus(err), err.Error())
		return
	}

	result, err := s.builder.BuildFromInputs(r.Context(), pipeline.Inputs{
		AI:          ai,
		Profile:     req.UserProfile,
		TemplateID:  req.Template,
		TargetPages: pages,
		Density:     req.Density,
	})
	if err != nil {
		log.Printf("[SERVER] %s build failed: %v", requestID, err)
		rsp.Error(HTTPStatus(err), err.Error())
		return
	}

	log.Printf("[SERVER] %s done: %d page(s), density %d, fill %.2f",
		requestID, result.ActualPages, result.Density, result.FillRatio)
	rsp.PDF(result)
}

// handleGenerate returns tailored content as JSON without rendering it,
// for callers that stage generation and rendering separately.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	rsp := &responder{w: w, requestID: requestID}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rsp.Error(http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validateRequest(req, req.UserProfile); err != nil {
		rsp.Error(HTTPStatus(err), err.Error())
		return
	}

	if s.generator == nil {
		rsp.Error(http.StatusServiceUnavailable, "content generation is not configured")
		return
	}

	pages := req.Pages
	if pages == "" {
		pages = types.DefaultTargetPages
	}

	ai, err := s.generator.Generate(r.Context(), req.JobDescription, req.UserProfile, pages)
	if err != nil {
		log.Printf("[SERVER] %s generation failed: %v", requestID, err)
		rsp.Error(HTTPStatus(err), err.Error())
		return
	}

	log.Printf("[SERVER] %s generated content for %q", requestID, req.UserProfile.FullName)
	s.jsonResponse(w, http.StatusOK, GenerateResponse{Content: ai})
}

// handleRender renders pre-supplied content to a PDF without calling the
// content source.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	rsp := &responder{w: w, requestID: requestID}

	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rsp.Error(http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validateRequest(req, req.UserProfile); err != nil {
		rsp.Error(HTTPStatus(err), err.Error())
		return
	}

	result, err := s.builder.BuildFromInputs(r.Context(), pipeline.Inputs{
		AI:          req.AIContent,
		Profile:     req.UserProfile,
		TemplateID:  req.Template,
		TargetPages: req.Pages,
		Density:     req.Density,
	})
	if err != nil {
		log.Printf("[SERVER] %s render failed: %v", requestID, err)
		rsp.Error(HTTPStatus(err), err.Error())
		return
	}

	rsp.PDF(result)
}

// handlePDF converts raw HTML to a PDF without any content processing.
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	rsp := &responder{w: w, requestID: requestID}

	var req PDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rsp.Error(http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		rsp.Error(http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	pages := req.Pages
	if pages == "" {
		pages = types.DefaultTargetPages
	}

	params := layout.Resolve(pages, types.DefaultDensity)
	result, err := s.renderer.RenderToPDF(r.Context(), req.HTML, pages, params.PageMargins)
	if err != nil {
		log.Printf("[SERVER] %s pdf conversion failed: %v", requestID, err)
		rsp.Error(HTTPStatus(err), err.Error())
		return
	}

	rsp.PDF(&types.RenderResult{
		PDF:         result.PDF,
		ActualPages: result.ActualPages,
		TargetPages: pages,
		Density:     types.DefaultDensity,
		FillRatio:   result.FillRatio,
	})
}

// validateRequest runs struct validation and the profile name check shared
// by the build and render endpoints.
func (s *Server) validateRequest(req any, profile *types.UserProfile) error {
	if err := s.validator.Struct(req); err != nil {
		return &ErrValidation{Field: "request", Message: extractValidationErrors(err)}
	}
	if strings.TrimSpace(profile.FullName) == "" {
		return &ErrValidation{Field: "userProfile.fullName", Message: "is required"}
	}
	return nil
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
