package handler

import (
	"context"
	"log"
	"net/http"

	json "github.com/goccy/go-json"

	"chat-relay/internal/metrics"
	"chat-relay/internal/model"
)

// User-visible bodies. Failures map to exactly one of the two fixed error
// strings; upstream detail stays in the server log.
const (
	msgInvalidRequest  = `Invalid request, "message" field is required.`
	msgUpstreamFailure = "An error occurred while processing the request."
	msgEmptyGeneration = "Sorry, I could not generate a response."
)

// Generator is the upstream the relay forwards prompts to. An empty text
// with a nil error means the upstream answered but produced nothing.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	generator Generator
}

// NewHandler creates a Handler backed by the given upstream generator.
func NewHandler(generator Generator) *Handler {
	return &Handler{
		generator: generator,
	}
}

// HandleChat relays one chat message to the upstream model and returns the
// generated text.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		writeJSON(w, http.StatusBadRequest, model.ChatResponse{Error: msgInvalidRequest})
		return
	}
	defer r.Body.Close()

	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, model.ChatResponse{Error: msgInvalidRequest})
		return
	}

	log.Printf("Received message: %s", req.Message)

	// The upstream call runs to completion even if the caller disconnects,
	// so it gets a fresh context rather than the request's.
	text, err := h.generator.Generate(context.Background(), req.Message)
	if err != nil {
		log.Printf("An error occurred: %v", err)
		metrics.RecordGeneration(metrics.OutcomeError)
		writeJSON(w, http.StatusInternalServerError, model.ChatResponse{Error: msgUpstreamFailure})
		return
	}

	if text == "" {
		metrics.RecordGeneration(metrics.OutcomeEmpty)
		writeJSON(w, http.StatusOK, model.ChatResponse{Response: msgEmptyGeneration})
		return
	}

	log.Printf("Sending response: %s", text)
	metrics.RecordGeneration(metrics.OutcomeText)
	writeJSON(w, http.StatusOK, model.ChatResponse{Response: text})
}

// HandleHealth returns the server health status.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// HandleRoot returns service and endpoint information.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"service": "Chat Relay Service",
		"endpoints": map[string]interface{}{
			"chat": map[string]interface{}{
				"path":        "/chat",
				"method":      "POST",
				"description": "Send a message to the model",
				"example": map[string]string{
					"message": "Hello, how can you help me?",
				},
			},
			"health": map[string]interface{}{
				"path":        "/health",
				"method":      "GET",
				"description": "Health check endpoint",
			},
			"metrics": map[string]interface{}{
				"path":        "/metrics",
				"method":      "GET",
				"description": "Prometheus metrics",
			},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
