package models

import (
	"time"

	"github.com/google/uuid"
)

// ──────────────────── Enums ────────────────────

// MovieStatus is the lifecycle state of a movie. Released/upcoming are
// derived from the release date on every sync; postponed/cancelled are set
// by an admin and survive re-syncs.
type MovieStatus string

const (
	StatusUpcoming  MovieStatus = "upcoming"
	StatusReleased  MovieStatus = "released"
	StatusPostponed MovieStatus = "postponed"
	StatusCancelled MovieStatus = "cancelled"
)

// ManualStatus reports whether a status was set out-of-band by an admin and
// must not be overwritten by date derivation.
func (s MovieStatus) Manual() bool {
	return s == StatusPostponed || s == StatusCancelled
}

type ReleaseType string

const (
	ReleaseTheatrical ReleaseType = "theatrical"
	ReleaseStreaming  ReleaseType = "streaming"
	ReleaseLimited    ReleaseType = "limited"
)

// ──────────────────── Movie ────────────────────

type Movie struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TMDBID        int       `json:"tmdb_id" db:"tmdb_id"`
	Title         string    `json:"title" db:"title"`
	OriginalTitle *string   `json:"original_title,omitempty" db:"original_title"`
	Overview      *string   `json:"overview,omitempty" db:"overview"`
	PosterPath    *string   `json:"poster_path,omitempty" db:"poster_path"`
	BackdropPath  *string   `json:"backdrop_path,omitempty" db:"backdrop_path"`
	ReleaseDate   *string   `json:"release_date,omitempty" db:"release_date"`
	RuntimeMins   *int      `json:"runtime_minutes,omitempty" db:"runtime_minutes"`
	Genres        []string  `json:"genres" db:"genres"`
	Rating        *float64  `json:"rating,omitempty" db:"rating"`
	VoteCount     *int      `json:"vote_count,omitempty" db:"vote_count"`
	Popularity    *float64  `json:"popularity,omitempty" db:"popularity"`
	TrailerKey    *string   `json:"trailer_key,omitempty" db:"trailer_key"`

	// Curated fields. Set by admins, never overwritten by sync.
	LocalTitle    *string      `json:"local_title,omitempty" db:"local_title"`
	LocalOverview *string      `json:"local_overview,omitempty" db:"local_overview"`
	Featured      bool         `json:"featured" db:"featured"`
	ReleaseType   *ReleaseType `json:"release_type,omitempty" db:"release_type"`

	Status       MovieStatus `json:"status" db:"status"`
	LastSyncedAt *time.Time  `json:"last_synced_at,omitempty" db:"last_synced_at"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}
