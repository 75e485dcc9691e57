// Package server exposes the board engine over HTTP: one in-memory
// session per game, JSON state views, and the terminal renderer as a
// text endpoint.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/moneytech/minesweeper/game"
)

// Default board shape for create requests that leave fields unset.
const (
	defaultRows    = 10
	defaultColumns = 10
	defaultMines   = 20
)

type Server struct {
	router *chi.Mux
	store  *Store
	log    *logrus.Logger
}

// New builds the router and its session store. A nil logger falls back to
// the logrus standard logger.
func New(log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{
		router: chi.NewRouter(),
		store:  NewStore(),
		log:    log,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(10 * time.Second))

	s.router.Get("/health", s.handleHealth)
	s.router.Post("/games", s.handleCreate)
	s.router.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", s.handleGet)
		r.Post("/dig", s.handleMove(func(b *game.Board, row, column int) game.Result {
			return b.Dig(row, column)
		}))
		r.Post("/flag", s.handleMove(func(b *game.Board, row, column int) game.Result {
			return b.Flag(row, column)
		}))
		r.Get("/render", s.handleRender)
	})

	return s
}

// Router returns the http.Handler to serve.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"elapsed":    time.Since(start),
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("request")
	})
}

type createRequest struct {
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Mines   *int   `json:"mines"`
	Seed    *int64 `json:"seed"`
}

type moveRequest struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type cellView struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

type gameView struct {
	ID      string       `json:"id"`
	Rows    int          `json:"rows"`
	Columns int          `json:"columns"`
	Mines   int          `json:"mines"`
	Flags   int          `json:"flags"`
	State   string       `json:"state"`
	Started bool         `json:"started"`
	Cells   [][]cellView `json:"cells"`
}

type moveResponse struct {
	Result string `json:"result"`
	gameView
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
	}

	rows, columns := req.Rows, req.Columns
	if rows == 0 {
		rows = defaultRows
	}
	if columns == 0 {
		columns = defaultColumns
	}
	mines := defaultMines
	if req.Mines != nil {
		mines = *req.Mines
	}

	var (
		board *game.Board
		err   error
	)
	if req.Seed != nil {
		board, err = game.NewSeeded(rows, columns, mines, *req.Seed)
	} else {
		board, err = game.New(rows, columns, mines)
	}
	if err != nil {
		var cfgErr *game.InvalidConfigError
		if errors.As(err, &cfgErr) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	session := s.store.Add(board)
	s.log.WithFields(logrus.Fields{
		"session": session.ID,
		"rows":    rows,
		"columns": columns,
		"mines":   mines,
	}).Info("game created")

	board = session.Lock()
	defer session.Unlock()
	writeJSON(w, http.StatusCreated, viewOf(session.ID, board))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	session, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "no such game")
		return
	}

	board := session.Lock()
	defer session.Unlock()
	writeJSON(w, http.StatusOK, viewOf(session.ID, board))
}

// handleMove builds the dig and flag handlers; both decode a coordinate,
// apply one engine call under the session lock, and return the result
// code with the refreshed view.
func (s *Server) handleMove(apply func(*game.Board, int, int) game.Result) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.store.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "no such game")
			return
		}

		var req moveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		board := session.Lock()
		defer session.Unlock()
		result := apply(board, req.Row, req.Column)
		writeJSON(w, http.StatusOK, moveResponse{
			Result:   result.String(),
			gameView: viewOf(session.ID, board),
		})
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	session, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "no such game")
		return
	}

	var target game.Target
	switch r.URL.Query().Get("target") {
	case "", "visible":
		target = game.Visible
	case "truth":
		target = game.Truth
	default:
		writeError(w, http.StatusBadRequest, "target must be visible or truth")
		return
	}

	board := session.Lock()
	defer session.Unlock()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(board.Render(target)))
}

// viewOf snapshots a board into its JSON shape. Mine positions stay
// hidden until the game ends, then every mine is shown. Callers hold the
// session lock.
func viewOf(id string, board *game.Board) gameView {
	over := board.State() != game.Ongoing
	cells := make([][]cellView, board.Rows())
	for row := range cells {
		cells[row] = make([]cellView, board.Columns())
		for column := range cells[row] {
			value, _ := board.Visible(row, column)
			view := cellView{State: "unknown"}
			switch {
			case value == game.Mine:
				view.State = "mine"
			case value == game.Flagged:
				view.State = "flagged"
			case value.IsCount():
				view.State = "revealed"
				view.Count = int(value)
			}
			if over && view.State != "mine" {
				if truth, _ := board.Truth(row, column); truth == game.Mine {
					view.State = "mine"
				}
			}
			cells[row][column] = view
		}
	}

	return gameView{
		ID:      id,
		Rows:    board.Rows(),
		Columns: board.Columns(),
		Mines:   board.Mines(),
		Flags:   board.Flags(),
		State:   board.State().String(),
		Started: board.Started(),
		Cells:   cells,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
