package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/alnah/journal-companion/internal/guidance"
	"github.com/alnah/journal-companion/internal/mode"
)

// ---------------------------------------------------------------------------
// Page
// ---------------------------------------------------------------------------

type pageData struct {
	Modes    []mode.Entry
	Selected string
	Text     string
	Warning  string
	Guidance template.HTML
}

func newPageData() pageData {
	modes := mode.List()
	return pageData{Modes: modes, Selected: modes[0].ID}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, newPageData())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, http.StatusText(status), status)
		return
	}

	data := newPageData()
	data.Text = r.PostFormValue("text")
	if id := r.PostFormValue("mode"); id != "" {
		data.Selected = resolveMode(id)
	}

	if err := guidance.CheckInput(data.Text); err != nil {
		s.observeEmptyInput()
		data.Warning = emptyInputWarning
		s.renderPage(w, r, data)
		return
	}

	result := s.guide.Get(r.Context(), data.Selected, data.Text)
	if !result.OK() {
		data.Warning = result.Failure.Message
		s.renderPage(w, r, data)
		return
	}

	html, err := renderMarkdown(s.md, result.Text)
	if err != nil {
		s.logger.Warn("render guidance markdown", "error", err)
		html = template.HTML("<p>" + template.HTMLEscapeString(result.Text) + "</p>")
	}
	data.Guidance = html
	s.renderPage(w, r, data)
}

// resolveMode maps a posted mode label to its identifier.
// Anything else is passed through for the service to reject.
func resolveMode(v string) string {
	if m, err := mode.ParseLabel(v); err == nil {
		return m.String()
	}
	return v
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.ErrorContext(r.Context(), "render page", "error", err)
	}
}

// ---------------------------------------------------------------------------
// JSON API
// ---------------------------------------------------------------------------

// Error kinds reported by the JSON API in addition to guidance outcomes.
const (
	kindBadRequest = "bad_request"
	kindEmptyInput = "empty_input"
)

type guidanceRequest struct {
	Mode string `json:"mode"`
	Text string `json:"text"`
}

type guidanceResponse struct {
	OK      bool   `json:"ok"`
	Text    string `json:"text,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleGuidance(w http.ResponseWriter, r *http.Request) {
	var req guidanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, guidanceResponse{Kind: kindBadRequest, Message: "invalid JSON body: " + err.Error()})
		return
	}

	if err := guidance.CheckInput(req.Text); err != nil {
		s.observeEmptyInput()
		writeJSON(w, http.StatusBadRequest, guidanceResponse{Kind: kindEmptyInput, Message: emptyInputWarning})
		return
	}

	result := s.guide.Get(r.Context(), resolveMode(req.Mode), req.Text)
	if result.OK() {
		writeJSON(w, http.StatusOK, guidanceResponse{OK: true, Text: result.Text})
		return
	}

	status := http.StatusBadGateway
	if result.Failure.Kind == guidance.KindUnknownMode {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, guidanceResponse{Kind: result.Outcome(), Message: result.Failure.Message})
}

func (s *Server) handleModes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, mode.List())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) observeEmptyInput() {
	if s.metrics != nil {
		s.metrics.ObserveEmptyInput()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
