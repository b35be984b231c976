package api

import (
	"net/http"
	"time"

	"github.com/hibiken/asynq"

	"github.com/filmlane/FilmLane/internal/httputil"
	"github.com/filmlane/FilmLane/internal/jobs"
)

// handleTriggerSync enqueues a catalog sync run now. The deterministic task
// ID means a trigger while a run is in flight is a no-op.
func (s *Server) handleTriggerSync(w http.ResponseWriter, r *http.Request) {
	taskID, err := s.queue.EnqueueUnique(jobs.TaskCatalogSync, jobs.SyncPayload{}, jobs.SyncTaskID,
		asynq.MaxRetry(2), asynq.Timeout(30*time.Minute))
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to enqueue sync")
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, map[string]string{"task_id": taskID})
}

// handleSetSetting persists a sync setting. Settings are read once at
// startup, so an edit takes effect on the next restart.
func (s *Server) handleSetSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	switch key {
	case "sync_language", "sync_region", "sync_enabled", "sync_interval":
	default:
		httputil.WriteError(w, http.StatusBadRequest, "unknown setting")
		return
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if key == "sync_interval" {
		if _, err := time.ParseDuration(req.Value); err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "invalid duration")
			return
		}
	}

	if err := s.settingsRepo.Set(key, req.Value); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to save setting")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{key: req.Value})
}
