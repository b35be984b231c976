package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/filmlane/FilmLane/internal/models"
)

type CreditRepository struct {
	db *sql.DB
}

func NewCreditRepository(db *sql.DB) *CreditRepository {
	return &CreditRepository{db: db}
}

const creditColumns = `id, movie_id, person_tmdb_id, name, local_name,
	credit_type, character_name, role, profile_path, sort_order`

func scanCredit(row interface{ Scan(dest ...interface{}) error }) (*models.Credit, error) {
	c := &models.Credit{}
	err := row.Scan(
		&c.ID, &c.MovieID, &c.PersonTMDBID, &c.Name, &c.LocalName,
		&c.CreditType, &c.Character, &c.Role, &c.ProfilePath, &c.SortOrder,
	)
	return c, err
}

func (r *CreditRepository) ListByMovie(movieID uuid.UUID) ([]*models.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM movie_credits
		WHERE movie_id = $1 ORDER BY sort_order`

	rows, err := r.db.Query(query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var credits []*models.Credit
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, err
		}
		credits = append(credits, c)
	}
	return credits, rows.Err()
}

// LocalizedNames returns the curated localized name recorded for any of the
// given people across all movies.
func (r *CreditRepository) LocalizedNames(personTMDBIDs []int) (map[int]string, error) {
	names := make(map[int]string)
	if len(personTMDBIDs) == 0 {
		return names, nil
	}

	rows, err := r.db.Query(`
		SELECT DISTINCT ON (person_tmdb_id) person_tmdb_id, local_name
		FROM movie_credits
		WHERE person_tmdb_id = ANY($1) AND local_name IS NOT NULL
		ORDER BY person_tmdb_id`,
		pq.Array(personTMDBIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var personID int
		var name string
		if err := rows.Scan(&personID, &name); err != nil {
			return nil, err
		}
		names[personID] = name
	}
	return names, rows.Err()
}

// Replace swaps a movie's full credit set in one transaction. This is a
// non-diffing delete-then-insert: credit sets are small and billing order
// shifts between syncs, so diffing buys nothing.
func (r *CreditRepository) Replace(movieID uuid.UUID, credits []models.Credit) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM movie_credits WHERE movie_id = $1`, movieID); err != nil {
		return fmt.Errorf("delete credits: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO movie_credits (
			id, movie_id, person_tmdb_id, name, local_name,
			credit_type, character_name, role, profile_path, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range credits {
		if _, err := stmt.Exec(
			c.ID, c.MovieID, c.PersonTMDBID, c.Name, c.LocalName,
			c.CreditType, c.Character, c.Role, c.ProfilePath, c.SortOrder,
		); err != nil {
			return fmt.Errorf("insert credit for person %d: %w", c.PersonTMDBID, err)
		}
	}

	return tx.Commit()
}

// SetLocalName records a curated localized name on every credit row of a
// person.
func (r *CreditRepository) SetLocalName(personTMDBID int, localName string) error {
	_, err := r.db.Exec(`
		UPDATE movie_credits SET local_name = NULLIF($2, '')
		WHERE person_tmdb_id = $1`,
		personTMDBID, localName)
	return err
}
