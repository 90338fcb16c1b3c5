// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"fmt"
	"net/http"

	"github.com/davidchen/resume-builder/internal/content"
	"github.com/davidchen/resume-builder/internal/pagefit"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *pagefit.EngineError:
		return http.StatusBadGateway
	case *content.GenerationError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
