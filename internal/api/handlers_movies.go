package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/filmlane/FilmLane/internal/httputil"
	"github.com/filmlane/FilmLane/internal/models"
	"github.com/filmlane/FilmLane/internal/repository"
)

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}

	var status *models.MovieStatus
	if v := r.URL.Query().Get("status"); v != "" {
		st := models.MovieStatus(v)
		switch st {
		case models.StatusUpcoming, models.StatusReleased, models.StatusPostponed, models.StatusCancelled:
			status = &st
		default:
			httputil.WriteError(w, http.StatusBadRequest, "invalid status filter")
			return
		}
	}

	var featured *bool
	if v := r.URL.Query().Get("featured"); v != "" {
		f := v == "true"
		featured = &f
	}

	movies, err := s.movieRepo.List(status, featured, limit, offset)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to list movies")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, movies)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid movie id")
		return
	}
	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "movie not found")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, movie)
}

type curationRequest struct {
	LocalTitle    *string `json:"local_title"`
	LocalOverview *string `json:"local_overview"`
	Featured      *bool   `json:"featured"`
	Status        *string `json:"status"`
	ReleaseType   *string `json:"release_type"`
}

// handleUpdateCuration edits the curated fields only. Catalog-sourced
// fields are owned by the sync and cannot be set here.
func (s *Server) handleUpdateCuration(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	var req curationRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := &repository.CurationUpdate{
		LocalTitle:    req.LocalTitle,
		LocalOverview: req.LocalOverview,
		Featured:      req.Featured,
	}
	if req.Status != nil {
		st := models.MovieStatus(*req.Status)
		switch st {
		case models.StatusUpcoming, models.StatusReleased, models.StatusPostponed, models.StatusCancelled:
			upd.Status = &st
		default:
			httputil.WriteError(w, http.StatusBadRequest, "invalid status")
			return
		}
	}
	if req.ReleaseType != nil {
		rt := models.ReleaseType(*req.ReleaseType)
		switch rt {
		case models.ReleaseTheatrical, models.ReleaseStreaming, models.ReleaseLimited:
			upd.ReleaseType = &rt
		default:
			httputil.WriteError(w, http.StatusBadRequest, "invalid release type")
			return
		}
	}

	if err := s.movieRepo.UpdateCuration(id, upd); err != nil {
		httputil.WriteError(w, http.StatusNotFound, "movie not found")
		return
	}

	movie, err := s.movieRepo.GetByID(id)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to reload movie")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, movie)
}

func (s *Server) handleListCredits(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid movie id")
		return
	}
	credits, err := s.creditRepo.ListByMovie(id)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to list credits")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, credits)
}

// handleSetLocalName records a curated localized name on every credit row
// of a person; the sync carries it forward across credit replaces.
func (s *Server) handleSetLocalName(w http.ResponseWriter, r *http.Request) {
	personID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid person id")
		return
	}

	var req struct {
		LocalName string `json:"local_name"`
	}
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.creditRepo.SetLocalName(personID, req.LocalName); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to update name")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"person_tmdb_id": personID,
		"local_name":     req.LocalName,
	})
}
