// Package site serves the calorie form page.
package site

import (
	"context"
	"html/template"
	"net/http"

	"github.com/okian/caltrack/internal/domain/calorie"
	"github.com/okian/caltrack/internal/domain/types"
	"github.com/okian/caltrack/pkg/logger"
)

// Calculator runs a calculation for one form submission and counts the
// submissions rejected while parsing the form.
type Calculator interface {
	Calculate(ctx context.Context, in calorie.Input) (types.Calculation, error)
	Reject(ctx context.Context, err error)
}

// Option configures the form handler.
type Option func(*FormHandler)

// WithLogger sets the logger used for unexpected failures.
func WithLogger(l logger.Logger) Option {
	return func(h *FormHandler) {
		if l != nil {
			h.logger = l
		}
	}
}

// Register attaches the form page and its static assets to mux.
func Register(_ context.Context, mux *http.ServeMux, calc Calculator, opts ...Option) {
	if mux == nil {
		panic("mux is nil")
	}
	if calc == nil {
		panic("calculator is nil")
	}

	mux.Handle("/static/", http.FileServer(http.FS(assetsFS)))
	mux.HandleFunc("/", NewFormHandler(calc, opts...).HandleForm)
}

var pageTemplate = template.Must(template.ParseFS(assetsFS, "templates/index.html.tmpl"))
