package sync

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/filmlane/FilmLane/internal/models"
)

func strptr(s string) *string { return &s }

func TestMergeNewRecord(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	in := MappedMovie{
		TMDBID:        100,
		Title:         "New Arrival",
		ReleaseDate:   strptr("2026-06-01"),
		DerivedStatus: models.StatusUpcoming,
	}

	m := Merge(nil, in, now)
	if m.Status != models.StatusUpcoming {
		t.Errorf("new record status should come from date derivation, got %s", m.Status)
	}
	if m.LocalTitle != nil || m.LocalOverview != nil || m.Featured || m.ReleaseType != nil {
		t.Error("new record should have no curated fields")
	}
	if m.LastSyncedAt == nil || !m.LastSyncedAt.Equal(now) {
		t.Errorf("last synced at: got %v", m.LastSyncedAt)
	}
}

func TestMergePreservesCuration(t *testing.T) {
	now := time.Now()
	rt := models.ReleaseTheatrical
	existing := &models.Movie{
		ID:            uuid.New(),
		TMDBID:        100,
		Title:         "Old Title",
		LocalTitle:    strptr("현지 제목"),
		LocalOverview: strptr("현지 줄거리"),
		Featured:      true,
		ReleaseType:   &rt,
		Status:        models.StatusUpcoming,
	}
	in := MappedMovie{
		TMDBID:        100,
		Title:         "Fresh Catalog Title",
		Overview:      strptr("fresh overview"),
		DerivedStatus: models.StatusReleased,
	}

	m := Merge(existing, in, now)

	if m.ID != existing.ID {
		t.Error("merge must keep the existing row id")
	}
	if m.Title != "Fresh Catalog Title" {
		t.Errorf("catalog fields must take the new value, got %q", m.Title)
	}
	if m.LocalTitle == nil || *m.LocalTitle != "현지 제목" {
		t.Errorf("local title must be carried forward, got %v", m.LocalTitle)
	}
	if m.LocalOverview == nil || *m.LocalOverview != "현지 줄거리" {
		t.Errorf("local overview must be carried forward, got %v", m.LocalOverview)
	}
	if !m.Featured {
		t.Error("featured flag must be carried forward")
	}
	if m.ReleaseType == nil || *m.ReleaseType != models.ReleaseTheatrical {
		t.Errorf("release type must be carried forward, got %v", m.ReleaseType)
	}
	if m.Status != models.StatusReleased {
		t.Errorf("non-manual status must be recomputed, got %s", m.Status)
	}
}

func TestMergePinsManualStatus(t *testing.T) {
	now := time.Now()
	for _, manual := range []models.MovieStatus{models.StatusPostponed, models.StatusCancelled} {
		existing := &models.Movie{ID: uuid.New(), TMDBID: 100, Status: manual}

		for _, derived := range []models.MovieStatus{models.StatusUpcoming, models.StatusReleased} {
			m := Merge(existing, MappedMovie{TMDBID: 100, DerivedStatus: derived}, now)
			if m.Status != manual {
				t.Errorf("manual status %s overwritten by derived %s", manual, derived)
			}
		}
	}
}
