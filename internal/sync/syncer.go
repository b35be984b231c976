package sync

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/filmlane/FilmLane/internal/models"
	"github.com/filmlane/FilmLane/internal/tmdb"
)

// CatalogClient is the slice of the TMDB client the syncer needs.
type CatalogClient interface {
	Discover(from, to string) ([]tmdb.MovieSummary, error)
	GetMovieDetail(id int) (*tmdb.MovieDetail, error)
}

// MovieStore persists movies. Upsert must be a single atomic
// insert-or-update keyed on tmdb_id and report whether it inserted;
// GetByTMDBID returns (nil, nil) when no record matches.
type MovieStore interface {
	GetByTMDBID(tmdbID int) (*models.Movie, error)
	Upsert(m *models.Movie) (inserted bool, err error)
}

// CreditStore persists credit rows. Replace is a full
// delete-then-insert of a movie's credit set.
type CreditStore interface {
	LocalizedNames(personTMDBIDs []int) (map[int]string, error)
	Replace(movieID uuid.UUID, rows []models.Credit) error
}

// Syncer drives one catalog sync run: discover the window, then per movie
// fetch detail, map, merge, upsert, and reconcile credits. One bad item
// never aborts the run.
type Syncer struct {
	catalog CatalogClient
	movies  MovieStore
	credits CreditStore
	now     func() time.Time
}

func New(catalog CatalogClient, movies MovieStore, credits CreditStore) *Syncer {
	return &Syncer{
		catalog: catalog,
		movies:  movies,
		credits: credits,
		now:     time.Now,
	}
}

// SetClock overrides the time source. Used by tests.
func (s *Syncer) SetClock(now func() time.Time) { s.now = now }

// Run performs one sync pass. It returns an error only when discovery
// itself fails; per-item failures are collected in the result's error list.
func (s *Syncer) Run(ctx context.Context) (*models.SyncResult, error) {
	now := s.now()
	from, to := Window(now)

	summaries, err := s.catalog.Discover(from, to)
	if err != nil {
		return nil, fmt.Errorf("discover %s..%s: %w", from, to, err)
	}
	log.Printf("Sync: discovered %d movies in window %s..%s", len(summaries), from, to)

	result := &models.SyncResult{Errors: []string{}}
	for i, summary := range summaries {
		select {
		case <-ctx.Done():
			log.Printf("Sync: cancelled after %d/%d items", i, len(summaries))
			return result, ctx.Err()
		default:
		}

		s.syncOne(summary, result)
	}

	log.Printf("Sync: done (%s)", result)
	return result, nil
}

// syncOne processes a single catalog item. Any failure is appended to the
// result tagged with the item's external identifier. The summary's genre ids
// back up a detail payload with no named genre list.
func (s *Syncer) syncOne(summary tmdb.MovieSummary, result *models.SyncResult) {
	tmdbID := summary.ID
	detail, err := s.catalog.GetMovieDetail(tmdbID)
	if err != nil {
		result.AddError(tmdbID, fmt.Errorf("fetch detail: %w", err))
		return
	}

	now := s.now()
	mapped := MapDetail(detail, summary.GenreIDs, now)

	existing, err := s.movies.GetByTMDBID(tmdbID)
	if err != nil {
		result.AddError(tmdbID, fmt.Errorf("load existing: %w", err))
		return
	}

	merged := Merge(existing, mapped, now)
	inserted, err := s.movies.Upsert(&merged)
	if err != nil {
		result.AddError(tmdbID, fmt.Errorf("upsert: %w", err))
		return
	}
	if inserted {
		result.MoviesAdded++
	} else {
		result.MoviesUpdated++
	}

	// Credits are an independent write unit: a failure here leaves the
	// movie updated with a stale cast rather than losing the movie update.
	rows := BuildCredits(merged.ID, detail.Credits)
	names, err := s.credits.LocalizedNames(PersonIDs(rows))
	if err != nil {
		result.AddError(tmdbID, fmt.Errorf("load localized names: %w", err))
		return
	}
	ApplyLocalNames(rows, names)

	if err := s.credits.Replace(merged.ID, rows); err != nil {
		result.AddError(tmdbID, fmt.Errorf("replace credits: %w", err))
		return
	}
	result.CastSynced += len(rows)
}
