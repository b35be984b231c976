package sync

import (
	"testing"
	"time"

	"github.com/filmlane/FilmLane/internal/models"
	"github.com/filmlane/FilmLane/internal/tmdb"
)

func TestWindowBounds(t *testing.T) {
	now := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	from, to := Window(now)

	if from != "2025-12-15" {
		t.Errorf("window lower bound: got %s want 2025-12-15", from)
	}
	if to != "2026-09-11" {
		t.Errorf("window upper bound: got %s want 2026-09-11", to)
	}
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name        string
		releaseDate string
		want        models.MovieStatus
	}{
		{"past date", "2026-01-01", models.StatusReleased},
		{"today", "2026-03-15", models.StatusReleased},
		{"tomorrow", "2026-03-16", models.StatusUpcoming},
		{"far future", "2027-01-01", models.StatusUpcoming},
		{"empty", "", models.StatusUpcoming},
		{"garbage", "not-a-date", models.StatusUpcoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.releaseDate, now); got != tt.want {
				t.Errorf("DeriveStatus(%q) = %s, want %s", tt.releaseDate, got, tt.want)
			}
		})
	}
}

func TestSelectTrailerTiers(t *testing.T) {
	official := tmdb.Video{Key: "official", Site: "YouTube", Type: "Trailer", Official: true}
	plain := tmdb.Video{Key: "plain", Site: "YouTube", Type: "Trailer"}
	teaser := tmdb.Video{Key: "teaser", Site: "YouTube", Type: "Teaser"}
	vimeo := tmdb.Video{Key: "vimeo", Site: "Vimeo", Type: "Trailer", Official: true}

	tests := []struct {
		name   string
		videos []tmdb.Video
		want   string
	}{
		{"official beats plain regardless of order", []tmdb.Video{plain, official}, "official"},
		{"plain trailer when no official", []tmdb.Video{teaser, plain}, "plain"},
		{"teaser as last resort", []tmdb.Video{vimeo, teaser}, "teaser"},
		{"first teaser wins within tier", []tmdb.Video{teaser, {Key: "teaser2", Site: "YouTube", Type: "Teaser"}}, "teaser"},
		{"unrecognized platform only", []tmdb.Video{vimeo}, ""},
		{"no videos", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTrailer(tt.videos)
			if tt.want == "" {
				if got != nil {
					t.Errorf("expected no trailer, got %q", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("SelectTrailer = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestMapGenres(t *testing.T) {
	named := []tmdb.Genre{{ID: 18, Name: "Drama"}, {ID: 35, Name: "Comedy"}}
	got := MapGenres(named, []int{27})
	if len(got) != 2 || got[0] != "Drama" || got[1] != "Comedy" {
		t.Errorf("named genres should win: got %v", got)
	}

	// ID fallback with an unknown id silently dropped.
	got = MapGenres(nil, []int{28, 999999, 878})
	if len(got) != 2 || got[0] != "Action" || got[1] != "Science Fiction" {
		t.Errorf("id fallback: got %v", got)
	}
}

func TestMapDetailOptionals(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	d := &tmdb.MovieDetail{
		ID:            7,
		Title:         "Bare Minimum",
		OriginalTitle: "Bare Minimum",
	}
	m := MapDetail(d, nil, now)
	if m.OriginalTitle != nil {
		t.Error("original title equal to title should map to nil")
	}
	if m.Overview != nil || m.ReleaseDate != nil || m.RuntimeMins != nil || m.TrailerKey != nil {
		t.Error("absent optional fields should map to nil")
	}
	if m.DerivedStatus != models.StatusUpcoming {
		t.Errorf("empty release date should derive upcoming, got %s", m.DerivedStatus)
	}

	d = &tmdb.MovieDetail{
		ID:            8,
		Title:         "Full House",
		OriginalTitle: "Maison Pleine",
		Overview:      "something",
		ReleaseDate:   "2026-01-01",
		Runtime:       113,
		VoteAverage:   7.2,
		VoteCount:     1500,
		Popularity:    88.1,
		Genres:        []tmdb.Genre{{ID: 18, Name: "Drama"}},
	}
	m = MapDetail(d, nil, now)
	if m.OriginalTitle == nil || *m.OriginalTitle != "Maison Pleine" {
		t.Errorf("original title: got %v", m.OriginalTitle)
	}
	if m.RuntimeMins == nil || *m.RuntimeMins != 113 {
		t.Errorf("runtime: got %v", m.RuntimeMins)
	}
	if m.DerivedStatus != models.StatusReleased {
		t.Errorf("past release date should derive released, got %s", m.DerivedStatus)
	}
	if len(m.Genres) != 1 || m.Genres[0] != "Drama" {
		t.Errorf("genres: got %v", m.Genres)
	}
}
