package api

import (
	"net/http"

	"github.com/filmlane/FilmLane/internal/auth"
	"github.com/filmlane/FilmLane/internal/config"
	"github.com/filmlane/FilmLane/internal/db"
	"github.com/filmlane/FilmLane/internal/httputil"
	"github.com/filmlane/FilmLane/internal/jobs"
	"github.com/filmlane/FilmLane/internal/repository"
)

// Server is the admin surface of the sync service: login, manual sync
// trigger, movie curation. The end-user UI reads the datastore directly and
// is not served here.
type Server struct {
	config       *config.Config
	db           *db.DB
	movieRepo    *repository.MovieRepository
	creditRepo   *repository.CreditRepository
	settingsRepo *repository.SettingsRepository
	queue        *jobs.Queue
	router       *http.ServeMux
}

func NewServer(cfg *config.Config, database *db.DB, queue *jobs.Queue) *Server {
	s := &Server{
		config:       cfg,
		db:           database,
		movieRepo:    repository.NewMovieRepository(database.DB),
		creditRepo:   repository.NewCreditRepository(database.DB),
		settingsRepo: repository.NewSettingsRepository(database.DB),
		queue:        queue,
		router:       http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	mw := auth.NewMiddleware(s.db.DB)

	s.router.HandleFunc("GET /api/health", s.handleHealth)
	s.router.HandleFunc("POST /api/auth/login", s.handleLogin)

	s.router.Handle("POST /api/sync", mw.RequireAuth(http.HandlerFunc(s.handleTriggerSync)))
	s.router.Handle("GET /api/movies", mw.RequireAuth(http.HandlerFunc(s.handleListMovies)))
	s.router.Handle("GET /api/movies/{id}", mw.RequireAuth(http.HandlerFunc(s.handleGetMovie)))
	s.router.Handle("PATCH /api/movies/{id}", mw.RequireAuth(http.HandlerFunc(s.handleUpdateCuration)))
	s.router.Handle("GET /api/movies/{id}/credits", mw.RequireAuth(http.HandlerFunc(s.handleListCredits)))
	s.router.Handle("PUT /api/people/{id}/local-name", mw.RequireAuth(http.HandlerFunc(s.handleSetLocalName)))
	s.router.Handle("PUT /api/settings/{key}", mw.RequireAuth(http.HandlerFunc(s.handleSetSetting)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		httputil.WriteError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
