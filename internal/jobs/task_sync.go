package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"github.com/filmlane/FilmLane/internal/sync"
)

// SyncPayload is the (currently empty) payload of a catalog sync task. The
// syncer computes its own window; the trigger carries no parameters.
type SyncPayload struct{}

// SyncTaskID is the deterministic task ID that keeps concurrent triggers
// collapsed into a single run.
const SyncTaskID = "catalog-sync"

type CatalogSyncHandler struct {
	syncer *sync.Syncer
}

func NewCatalogSyncHandler(syncer *sync.Syncer) *CatalogSyncHandler {
	return &CatalogSyncHandler{syncer: syncer}
}

func (h *CatalogSyncHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	result, err := h.syncer.Run(ctx)
	if err != nil {
		return fmt.Errorf("catalog sync: %w", err)
	}

	// Per-item failures do not fail the task; they are reported here for
	// operators. The run as a whole succeeded once discovery produced a
	// result set.
	for _, e := range result.Errors {
		log.Printf("Sync: item error: %s", e)
	}
	log.Printf("Sync: run complete (%s)", result)
	return nil
}

// RegisterHandlers wires every task handler onto the queue.
func RegisterHandlers(q *Queue, syncer *sync.Syncer) {
	q.RegisterHandler(TaskCatalogSync, NewCatalogSyncHandler(syncer))
}
