package sync

import (
	"time"

	"github.com/google/uuid"

	"github.com/filmlane/FilmLane/internal/models"
)

// Merge produces the write payload for one movie. Catalog-sourced fields
// always take the incoming value; curated fields (local title, local
// overview, featured, release type) are copied forward from the existing
// record. A manually set postponed/cancelled status is preserved verbatim;
// otherwise status is recomputed from the release date.
func Merge(existing *models.Movie, in MappedMovie, now time.Time) models.Movie {
	m := models.Movie{
		ID:            uuid.New(),
		TMDBID:        in.TMDBID,
		Title:         in.Title,
		OriginalTitle: in.OriginalTitle,
		Overview:      in.Overview,
		PosterPath:    in.PosterPath,
		BackdropPath:  in.BackdropPath,
		ReleaseDate:   in.ReleaseDate,
		RuntimeMins:   in.RuntimeMins,
		Genres:        in.Genres,
		Rating:        in.Rating,
		VoteCount:     in.VoteCount,
		Popularity:    in.Popularity,
		TrailerKey:    in.TrailerKey,
		Status:        in.DerivedStatus,
		LastSyncedAt:  &now,
	}

	if existing == nil {
		return m
	}

	m.ID = existing.ID
	m.LocalTitle = existing.LocalTitle
	m.LocalOverview = existing.LocalOverview
	m.Featured = existing.Featured
	m.ReleaseType = existing.ReleaseType
	if existing.Status.Manual() {
		m.Status = existing.Status
	}
	return m
}
