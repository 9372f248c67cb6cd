// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"ivy_homes/internal/tools"
)

// Handlers maps the tool registry onto HTTP so the dialogue orchestrator can
// invoke tools with a plain POST and receive the spoken text back.
type Handlers struct{ Registry *tools.Registry }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type toolResponse struct {
	Tool string `json:"tool"`
	Text string `json:"text"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/tools", h.listTools)
	s.mux.Post("/v1/tools/{tool}", h.invokeTool)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// listTools publishes the declarative tool schemas so the orchestration
// layer can bind them onto its native tool-calling mechanism.
func (h *Handlers) listTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": h.Registry.Schemas()})
}

func (h *Handlers) invokeTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tool")
	tool, ok := h.Registry.Get(name)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Unknown Tool", "no tool named "+name)
		return
	}

	args := map[string]any{}
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Unreadable Body", err.Error())
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid JSON", "request body must be a JSON object of tool arguments")
			return
		}
	}

	text, err := tool.Execute(r.Context(), args)
	if err != nil {
		// Only malformed arguments surface here; data conditions come back
		// as spoken text.
		writeProblem(w, http.StatusBadRequest, "Invalid Arguments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toolResponse{Tool: name, Text: text})
}
