package models

import "fmt"

// SyncResult summarizes one sync run. It is returned to the trigger and
// never persisted.
type SyncResult struct {
	MoviesAdded   int      `json:"movies_added"`
	MoviesUpdated int      `json:"movies_updated"`
	CastSynced    int      `json:"cast_synced"`
	Errors        []string `json:"errors"`
}

func (r *SyncResult) AddError(tmdbID int, err error) {
	r.Errors = append(r.Errors, fmt.Sprintf("tmdb %d: %v", tmdbID, err))
}

func (r *SyncResult) String() string {
	return fmt.Sprintf("added=%d updated=%d cast=%d errors=%d",
		r.MoviesAdded, r.MoviesUpdated, r.CastSynced, len(r.Errors))
}
