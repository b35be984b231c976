package sync

import (
	"github.com/google/uuid"

	"github.com/filmlane/FilmLane/internal/models"
	"github.com/filmlane/FilmLane/internal/tmdb"
)

// maxCastEntries caps principal cast per movie, in billing order.
const maxCastEntries = 15

// crewSortBase keeps crew rows sorted after the capped cast block.
const crewSortBase = 100

// crewRoles is the crew job allow-list. Jobs not listed are ignored;
// several raw job titles collapse into one canonical role.
var crewRoles = map[string]models.CrewRole{
	"Director":                models.RoleDirector,
	"Producer":                models.RoleProducer,
	"Music":                   models.RoleComposer,
	"Original Music Composer": models.RoleComposer,
	"Director of Photography": models.RoleCinematographer,
	"Screenplay":              models.RoleWriter,
	"Writer":                  models.RoleWriter,
	"Story":                   models.RoleWriter,
}

type personRole struct {
	personID int
	role     models.CrewRole
}

// BuildCredits derives the full credit row set for a movie from a detail
// payload: the first maxCastEntries cast members with their billing order
// verbatim, then allow-listed crew deduplicated per (person, role), first
// occurrence winning.
func BuildCredits(movieID uuid.UUID, credits tmdb.Credits) []models.Credit {
	var rows []models.Credit

	castCount := len(credits.Cast)
	if castCount > maxCastEntries {
		castCount = maxCastEntries
	}
	for _, c := range credits.Cast[:castCount] {
		row := models.Credit{
			ID:           uuid.New(),
			MovieID:      movieID,
			PersonTMDBID: c.ID,
			Name:         c.Name,
			CreditType:   models.CreditCast,
			SortOrder:    c.Order,
		}
		if c.Character != "" {
			character := c.Character
			row.Character = &character
		}
		if c.ProfilePath != "" {
			profile := c.ProfilePath
			row.ProfilePath = &profile
		}
		rows = append(rows, row)
	}

	seen := make(map[personRole]bool)
	crewCount := 0
	for _, c := range credits.Crew {
		role, ok := crewRoles[c.Job]
		if !ok {
			continue
		}
		key := personRole{personID: c.ID, role: role}
		if seen[key] {
			continue
		}
		seen[key] = true

		row := models.Credit{
			ID:           uuid.New(),
			MovieID:      movieID,
			PersonTMDBID: c.ID,
			Name:         c.Name,
			CreditType:   models.CreditCrew,
			SortOrder:    crewSortBase + crewCount,
		}
		r := role
		row.Role = &r
		if c.ProfilePath != "" {
			profile := c.ProfilePath
			row.ProfilePath = &profile
		}
		rows = append(rows, row)
		crewCount++
	}

	return rows
}

// ApplyLocalNames stamps each row with a previously curated localized name
// for its person, if one exists. This is the one piece of state threaded
// across the delete/insert boundary of the credit replace.
func ApplyLocalNames(rows []models.Credit, names map[int]string) {
	for i := range rows {
		if name, ok := names[rows[i].PersonTMDBID]; ok {
			n := name
			rows[i].LocalName = &n
		}
	}
}

// PersonIDs returns the distinct person identifiers in a credit row set.
func PersonIDs(rows []models.Credit) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, row := range rows {
		if !seen[row.PersonTMDBID] {
			seen[row.PersonTMDBID] = true
			ids = append(ids, row.PersonTMDBID)
		}
	}
	return ids
}
