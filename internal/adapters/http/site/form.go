package site

import (
	"bytes"
	"context"
	"net/http"

	"github.com/okian/caltrack/internal/domain/calorie"
	"github.com/okian/caltrack/pkg/logger"
)

const maxFormBody = 1 << 14

// FormHandler renders the calculator page and handles its submissions.
type FormHandler struct {
	calc   Calculator
	logger logger.Logger
}

// NewFormHandler creates a new form handler.
func NewFormHandler(calc Calculator, opts ...Option) *FormHandler {
	h := &FormHandler{calc: calc, logger: logger.Nop()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type pageData struct {
	Values map[string]string
	Errors map[string]string
	Result *resultView
}

type resultView struct {
	TotalIn     string
	TotalOut    string
	Breakdown   string
	Net         string
	Description string
	Tone        string
}

// HandleForm handles GET and POST on /.
func (h *FormHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(r.Context(), w, http.StatusOK, pageData{})
	case http.MethodPost:
		h.submit(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *FormHandler) submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	values := map[string]string{
		calorie.FieldCaloriesIn:     r.PostForm.Get(calorie.FieldCaloriesIn),
		calorie.FieldCaloriesBurned: r.PostForm.Get(calorie.FieldCaloriesBurned),
		calorie.FieldSteps:          r.PostForm.Get(calorie.FieldSteps),
	}

	in, err := calorie.ParseForm(
		values[calorie.FieldCaloriesIn],
		values[calorie.FieldCaloriesBurned],
		values[calorie.FieldSteps],
	)
	if ve, ok := calorie.AsValidation(err); ok {
		h.calc.Reject(r.Context(), err)
		h.render(r.Context(), w, http.StatusBadRequest, pageData{Values: values, Errors: ve.Fields()})
		return
	}

	calc, err := h.calc.Calculate(r.Context(), in)
	if err != nil {
		if ve, ok := calorie.AsValidation(err); ok {
			h.render(r.Context(), w, http.StatusBadRequest, pageData{Values: values, Errors: ve.Fields()})
			return
		}
		h.logger.Error(r.Context(), "form calculation failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := calc.Result
	h.render(r.Context(), w, http.StatusOK, pageData{
		Values: values,
		Result: &resultView{
			TotalIn:     calorie.FormatCalories(res.TotalIn),
			TotalOut:    calorie.FormatCalories(res.TotalOut),
			Breakdown:   res.Breakdown(),
			Net:         calorie.FormatCalories(res.NetCalories),
			Description: res.Balance.Description(),
			Tone:        string(res.Balance.Tone()),
		},
	})
}

func (h *FormHandler) render(ctx context.Context, w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.Error(ctx, "render form page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
