package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/filmlane/FilmLane/internal/models"
)

type MovieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// movieColumns is the standard SELECT list for movies
const movieColumns = `id, tmdb_id, title, original_title, overview,
	poster_path, backdrop_path, release_date, runtime_minutes, genres,
	rating, vote_count, popularity, trailer_key,
	local_title, local_overview, featured, release_type,
	status, last_synced_at, created_at, updated_at`

func scanMovie(row interface{ Scan(dest ...interface{}) error }) (*models.Movie, error) {
	m := &models.Movie{}
	err := row.Scan(
		&m.ID, &m.TMDBID, &m.Title, &m.OriginalTitle, &m.Overview,
		&m.PosterPath, &m.BackdropPath, &m.ReleaseDate, &m.RuntimeMins,
		pq.Array(&m.Genres),
		&m.Rating, &m.VoteCount, &m.Popularity, &m.TrailerKey,
		&m.LocalTitle, &m.LocalOverview, &m.Featured, &m.ReleaseType,
		&m.Status, &m.LastSyncedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *MovieRepository) GetByID(id uuid.UUID) (*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	m, err := scanMovie(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("movie not found")
	}
	return m, err
}

func (r *MovieRepository) GetByTMDBID(tmdbID int) (*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE tmdb_id = $1`
	m, err := scanMovie(r.db.QueryRow(query, tmdbID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return m, err
}

// Upsert writes a movie keyed on tmdb_id in a single atomic statement.
// Curated columns are absent from the conflict update so concurrent edits
// survive, and a manually set postponed/cancelled status is pinned at the
// database level as well. Reports whether a new row was inserted and
// rewrites m.ID with the persisted row id.
func (r *MovieRepository) Upsert(m *models.Movie) (bool, error) {
	query := `
		INSERT INTO movies (
			id, tmdb_id, title, original_title, overview,
			poster_path, backdrop_path, release_date, runtime_minutes, genres,
			rating, vote_count, popularity, trailer_key,
			local_title, local_overview, featured, release_type,
			status, last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16, $17, $18,
			$19, $20
		)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			original_title = EXCLUDED.original_title,
			overview = EXCLUDED.overview,
			poster_path = EXCLUDED.poster_path,
			backdrop_path = EXCLUDED.backdrop_path,
			release_date = EXCLUDED.release_date,
			runtime_minutes = EXCLUDED.runtime_minutes,
			genres = EXCLUDED.genres,
			rating = EXCLUDED.rating,
			vote_count = EXCLUDED.vote_count,
			popularity = EXCLUDED.popularity,
			trailer_key = EXCLUDED.trailer_key,
			status = CASE
				WHEN movies.status IN ('postponed', 'cancelled') THEN movies.status
				ELSE EXCLUDED.status
			END,
			last_synced_at = EXCLUDED.last_synced_at,
			updated_at = NOW()
		RETURNING id, (xmax = 0)`

	var inserted bool
	err := r.db.QueryRow(query,
		m.ID, m.TMDBID, m.Title, m.OriginalTitle, m.Overview,
		m.PosterPath, m.BackdropPath, m.ReleaseDate, m.RuntimeMins, pq.Array(m.Genres),
		m.Rating, m.VoteCount, m.Popularity, m.TrailerKey,
		m.LocalTitle, m.LocalOverview, m.Featured, m.ReleaseType,
		m.Status, m.LastSyncedAt,
	).Scan(&m.ID, &inserted)
	return inserted, err
}

// List returns movies ordered by release date, optionally filtered by
// status and featured flag.
func (r *MovieRepository) List(status *models.MovieStatus, featured *bool, limit, offset int) ([]*models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE 1=1`
	args := []interface{}{}

	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if featured != nil {
		args = append(args, *featured)
		query += fmt.Sprintf(" AND featured = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY release_date NULLS LAST, title LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []*models.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// CurationUpdate carries the admin-editable fields of a movie. Nil fields
// are left untouched.
type CurationUpdate struct {
	LocalTitle    *string
	LocalOverview *string
	Featured      *bool
	Status        *models.MovieStatus
	ReleaseType   *models.ReleaseType
}

func (r *MovieRepository) UpdateCuration(id uuid.UUID, upd *CurationUpdate) error {
	query := `UPDATE movies SET updated_at = NOW()`
	args := []interface{}{}

	if upd.LocalTitle != nil {
		args = append(args, *upd.LocalTitle)
		query += fmt.Sprintf(", local_title = NULLIF($%d, '')", len(args))
	}
	if upd.LocalOverview != nil {
		args = append(args, *upd.LocalOverview)
		query += fmt.Sprintf(", local_overview = NULLIF($%d, '')", len(args))
	}
	if upd.Featured != nil {
		args = append(args, *upd.Featured)
		query += fmt.Sprintf(", featured = $%d", len(args))
	}
	if upd.Status != nil {
		args = append(args, *upd.Status)
		query += fmt.Sprintf(", status = $%d", len(args))
	}
	if upd.ReleaseType != nil {
		args = append(args, *upd.ReleaseType)
		query += fmt.Sprintf(", release_type = $%d", len(args))
	}

	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	res, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("movie not found")
	}
	return nil
}
