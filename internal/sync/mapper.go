package sync

import (
	"time"

	"github.com/filmlane/FilmLane/internal/models"
	"github.com/filmlane/FilmLane/internal/tmdb"
)

// Discovery window: 90 days back through 180 days ahead. Matches the app's
// display horizon; there is no value in re-fetching decade-old catalog on
// every run.
const (
	windowPastDays   = 90
	windowFutureDays = 180
)

const dateLayout = "2006-01-02"

// Window returns the discovery release-date bounds for a run, date-only.
func Window(now time.Time) (from, to string) {
	from = now.AddDate(0, 0, -windowPastDays).Format(dateLayout)
	to = now.AddDate(0, 0, windowFutureDays).Format(dateLayout)
	return from, to
}

// genreIDMap maps TMDB movie genre IDs to human-readable names. Used only
// when the payload carries no named genre list; unknown IDs are dropped.
var genreIDMap = map[int]string{
	28: "Action", 12: "Adventure", 16: "Animation", 35: "Comedy", 80: "Crime",
	99: "Documentary", 18: "Drama", 10751: "Family", 14: "Fantasy", 36: "History",
	27: "Horror", 10402: "Music", 9648: "Mystery", 10749: "Romance",
	878: "Science Fiction", 10770: "TV Movie", 53: "Thriller", 10752: "War", 37: "Western",
}

// MapGenres prefers the named genre list; failing that it resolves numeric
// IDs through the static table.
func MapGenres(named []tmdb.Genre, ids []int) []string {
	if len(named) > 0 {
		genres := make([]string, 0, len(named))
		for _, g := range named {
			genres = append(genres, g.Name)
		}
		return genres
	}
	var genres []string
	for _, id := range ids {
		if name, ok := genreIDMap[id]; ok {
			genres = append(genres, name)
		}
	}
	return genres
}

// SelectTrailer picks a YouTube video key in strict tier order: official
// trailer, any trailer, any teaser. Ties within a tier go to payload order.
func SelectTrailer(videos []tmdb.Video) *string {
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" && v.Official && v.Key != "" {
			key := v.Key
			return &key
		}
	}
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" && v.Key != "" {
			key := v.Key
			return &key
		}
	}
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Teaser" && v.Key != "" {
			key := v.Key
			return &key
		}
	}
	return nil
}

// DeriveStatus proposes a lifecycle status from the release date alone,
// date-only. The merge step decides whether the proposal applies.
func DeriveStatus(releaseDate string, now time.Time) models.MovieStatus {
	if releaseDate == "" {
		return models.StatusUpcoming
	}
	d, err := time.Parse(dateLayout, releaseDate)
	if err != nil {
		return models.StatusUpcoming
	}
	today, _ := time.Parse(dateLayout, now.Format(dateLayout))
	if d.After(today) {
		return models.StatusUpcoming
	}
	return models.StatusReleased
}

// MappedMovie is the catalog-sourced field set a detail payload maps to,
// before merging with any existing local record.
type MappedMovie struct {
	TMDBID        int
	Title         string
	OriginalTitle *string
	Overview      *string
	PosterPath    *string
	BackdropPath  *string
	ReleaseDate   *string
	RuntimeMins   *int
	Genres        []string
	Rating        *float64
	VoteCount     *int
	Popularity    *float64
	TrailerKey    *string
	DerivedStatus models.MovieStatus
}

// MapDetail translates a detail payload into the local field shape. Pure;
// missing optional fields become nil. genreIDs are the discovery summary's
// numeric genre ids, used as the fallback when the detail payload carries no
// named genre list.
func MapDetail(d *tmdb.MovieDetail, genreIDs []int, now time.Time) MappedMovie {
	m := MappedMovie{
		TMDBID:        d.ID,
		Title:         d.Title,
		Genres:        MapGenres(d.Genres, genreIDs),
		TrailerKey:    SelectTrailer(d.Videos.Results),
		DerivedStatus: DeriveStatus(d.ReleaseDate, now),
	}
	if d.OriginalTitle != "" && d.OriginalTitle != d.Title {
		m.OriginalTitle = &d.OriginalTitle
	}
	if d.Overview != "" {
		m.Overview = &d.Overview
	}
	if d.PosterPath != "" {
		m.PosterPath = &d.PosterPath
	}
	if d.BackdropPath != "" {
		m.BackdropPath = &d.BackdropPath
	}
	if d.ReleaseDate != "" {
		m.ReleaseDate = &d.ReleaseDate
	}
	if d.Runtime > 0 {
		runtime := d.Runtime
		m.RuntimeMins = &runtime
	}
	if d.VoteAverage > 0 {
		rating := d.VoteAverage
		m.Rating = &rating
	}
	if d.VoteCount > 0 {
		votes := d.VoteCount
		m.VoteCount = &votes
	}
	if d.Popularity > 0 {
		pop := d.Popularity
		m.Popularity = &pop
	}
	return m
}
