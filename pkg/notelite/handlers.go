package notelite

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/notelite/notelite/pkg/models"
	"github.com/notelite/notelite/pkg/store"
)

// handleCreateNote creates a new note from a JSON payload.
//
// HTTP Method: POST
// Endpoint: /notes
//
// Response:
//   - 201 Created: note persisted, returned with its storage-assigned ID
//   - 400 Bad Request: malformed JSON payload
//   - 422 Unprocessable Entity: missing or empty text
//   - 500 Internal Server Error: database operation failed
func (a *App) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateNote
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	note := &models.Note{Text: payload.Text}

	ctx := r.Context()
	if err := a.store.CreateNote(ctx, note); err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, note)
}

func (a *App) handleListNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	notes, err := a.store.ListNotes(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, notes)
}

func (a *App) handleGetNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := models.ParseNoteID(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	ctx := r.Context()
	note, err := a.store.GetNote(ctx, id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	respondJSON(w, http.StatusOK, note)
}

// handleUpdateNote applies a partial update to an existing note. It serves
// both PATCH and PUT; a PUT payload simply provides every field.
func (a *App) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := models.ParseNoteID(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var payload models.UpdateNote
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx := r.Context()
	note, err := a.store.GetNote(ctx, id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	payload.Apply(note)
	if err := a.store.UpdateNote(ctx, note); err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, note)
}

func (a *App) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := models.ParseNoteID(vars["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	ctx := r.Context()
	if err := a.store.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// handleHealth reports service liveness for load balancers and monitoring.
// It never touches the database, so it stays cheap and always answers 200
// while the process is up.
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":      "healthy",
		"environment": a.config.Environment,
		"time":        time.Now().Unix(),
	}
	respondJSON(w, http.StatusOK, response)
}

// respondStoreError maps store errors to HTTP status codes: read-only
// rejections become 503 so clients can tell a maintenance window from a
// real failure, everything else is a 500.
func respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrReadOnly) {
		respondError(w, http.StatusServiceUnavailable, "Service is in read-only mode")
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

// respondJSON sends a JSON response with the given status code. A nil
// payload produces an empty body.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_, _ = w.Write(response)
	}
}

// respondError sends a standardized JSON error response:
//
//	{"error": "error message here"}
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
