package models

import "github.com/google/uuid"

type CreditType string

const (
	CreditCast CreditType = "cast"
	CreditCrew CreditType = "crew"
)

// CrewRole is the canonical role category a raw TMDB job title resolves to.
type CrewRole string

const (
	RoleDirector        CrewRole = "director"
	RoleProducer        CrewRole = "producer"
	RoleWriter          CrewRole = "writer"
	RoleComposer        CrewRole = "composer"
	RoleCinematographer CrewRole = "cinematographer"
)

// Credit is one cast or crew row for a movie. The full credit set for a
// movie is replaced wholesale on every sync; only LocalName is carried
// across the replace.
type Credit struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	MovieID      uuid.UUID  `json:"movie_id" db:"movie_id"`
	PersonTMDBID int        `json:"person_tmdb_id" db:"person_tmdb_id"`
	Name         string     `json:"name" db:"name"`
	LocalName    *string    `json:"local_name,omitempty" db:"local_name"`
	CreditType   CreditType `json:"credit_type" db:"credit_type"`
	Character    *string    `json:"character,omitempty" db:"character"`
	Role         *CrewRole  `json:"role,omitempty" db:"role"`
	ProfilePath  *string    `json:"profile_path,omitempty" db:"profile_path"`
	SortOrder    int        `json:"sort_order" db:"sort_order"`
}
