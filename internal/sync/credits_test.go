package sync

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/filmlane/FilmLane/internal/models"
	"github.com/filmlane/FilmLane/internal/tmdb"
)

func TestBuildCreditsCastCap(t *testing.T) {
	var cast []tmdb.CastMember
	for i := 0; i < 25; i++ {
		cast = append(cast, tmdb.CastMember{
			ID: 1000 + i, Name: fmt.Sprintf("Actor %d", i), Order: i,
		})
	}

	rows := BuildCredits(uuid.New(), tmdb.Credits{Cast: cast})
	if len(rows) != maxCastEntries {
		t.Fatalf("cast cap: got %d rows, want %d", len(rows), maxCastEntries)
	}
	for i, row := range rows {
		if row.SortOrder != i {
			t.Errorf("billing order must be carried verbatim: row %d has sort %d", i, row.SortOrder)
		}
		if row.CreditType != models.CreditCast {
			t.Errorf("row %d type = %s", i, row.CreditType)
		}
	}
}

func TestBuildCreditsCrewDedupe(t *testing.T) {
	crew := []tmdb.CrewMember{
		{ID: 1, Name: "Alice", Job: "Director"},
		{ID: 2, Name: "Bob", Job: "Story"},
		{ID: 2, Name: "Bob", Job: "Screenplay"},
		{ID: 3, Name: "Carol", Job: "Best Boy"},
	}

	rows := BuildCredits(uuid.New(), tmdb.Credits{Crew: crew})
	if len(rows) != 2 {
		t.Fatalf("got %d crew rows, want 2 (Bob collapses, Best Boy dropped)", len(rows))
	}

	if *rows[0].Role != models.RoleDirector || rows[0].Name != "Alice" {
		t.Errorf("first crew row: %s/%s", rows[0].Name, *rows[0].Role)
	}
	if *rows[1].Role != models.RoleWriter || rows[1].Name != "Bob" {
		t.Errorf("second crew row: %s/%s", rows[1].Name, *rows[1].Role)
	}
	if rows[0].SortOrder != crewSortBase || rows[1].SortOrder != crewSortBase+1 {
		t.Errorf("crew sort orders: %d, %d", rows[0].SortOrder, rows[1].SortOrder)
	}
}

func TestBuildCreditsSamePersonDifferentRoles(t *testing.T) {
	crew := []tmdb.CrewMember{
		{ID: 5, Name: "Dana", Job: "Director"},
		{ID: 5, Name: "Dana", Job: "Producer"},
	}

	rows := BuildCredits(uuid.New(), tmdb.Credits{Crew: crew})
	if len(rows) != 2 {
		t.Fatalf("distinct roles for one person must both survive, got %d rows", len(rows))
	}
}

func TestApplyLocalNames(t *testing.T) {
	movieID := uuid.New()
	rows := BuildCredits(movieID, tmdb.Credits{
		Cast: []tmdb.CastMember{{ID: 10, Name: "Eve", Order: 0}},
		Crew: []tmdb.CrewMember{{ID: 10, Name: "Eve", Job: "Director"}},
	})

	ApplyLocalNames(rows, map[int]string{10: "이브"})
	for _, row := range rows {
		if row.LocalName == nil || *row.LocalName != "이브" {
			t.Errorf("localized name must be stamped onto every row for the person, got %v", row.LocalName)
		}
	}

	ids := PersonIDs(rows)
	if len(ids) != 1 || ids[0] != 10 {
		t.Errorf("PersonIDs should dedupe: got %v", ids)
	}
}
