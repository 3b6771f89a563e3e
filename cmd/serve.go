package cmd

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/board"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/selection"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord finder over HTTP",
	Long:  `Serves the fretboard, the chord library and per-client boards as a JSON API.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := board.NewStore(loadLibrary(cmd.Context()))
		srv := &http.Server{
			Addr:              ":" + servePort,
			Handler:           NewRouter(store),
			ReadHeaderTimeout: 10 * time.Second,
		}
		log.Info("serving", "addr", srv.Addr)
		return errors.Wrap(srv.ListenAndServe(), "server stopped")
	},
}

// NewRouter builds the API around a board store.
func NewRouter(store *board.Store) http.Handler {
	h := &handlers{store: store}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/fretboard", h.handleFretboard).Methods("GET")
	router.HandleFunc("/chords", h.handleChords).Methods("GET")
	router.HandleFunc("/match", h.handleMatch).Methods("POST")
	router.HandleFunc("/boards", h.handleCreateBoard).Methods("POST")
	router.HandleFunc("/boards/{id}", h.handleGetBoard).Methods("GET")
	router.HandleFunc("/boards/{id}", h.handleDeleteBoard).Methods("DELETE")
	router.HandleFunc("/boards/{id}/toggle", h.handleToggle).Methods("POST")
	router.HandleFunc("/boards/{id}/reset", h.handleReset).Methods("POST")

	return cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}

type handlers struct {
	store *board.Store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("could not encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func toMatchResults(matches []model.ChordMatch) []model.MatchResult {
	res := make([]model.MatchResult, 0, len(matches))
	for _, m := range matches {
		res = append(res, model.MatchResult{
			Name:    chord.Describe(m),
			Pattern: chord.Shape(m.Chord),
			Covered: m.Covered,
		})
	}
	return res
}

func toBoardResponse(id string, b *board.Board) model.BoardResponse {
	sel := b.Selection()
	return model.BoardResponse{
		Id:        id,
		Selection: sel.Pattern(),
		Notes:     sel.NoteNames(),
		Matches:   toMatchResults(b.Matches()),
	}
}

func (h *handlers) handleFretboard(w http.ResponseWriter, r *http.Request) {
	grid := fretboard.Grid()
	res := model.FretboardResponse{
		Strings: constants.StringLabels[:],
		Notes:   make([][]string, constants.NumStrings),
	}
	for s := range grid {
		res.Notes[s] = make([]string, constants.NumFrets)
		for f, pc := range grid[s] {
			res.Notes[s][f] = fretboard.NoteName(pc)
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) handleChords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Library())
}

func (h *handlers) handleMatch(w http.ResponseWriter, r *http.Request) {
	var input model.MatchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not decode request body: "+err.Error())
		return
	}
	if len(input.Positions) != constants.NumStrings {
		writeError(w, http.StatusBadRequest, "positions needs one entry per string")
		return
	}
	for s, f := range input.Positions {
		if f != model.Muted && !fretboard.InRange(s, int(f)) {
			writeError(w, http.StatusBadRequest, "fret out of range")
			return
		}
	}

	matches := chord.Match(selection.FromPattern(input.Positions), h.store.Library())
	writeJSON(w, http.StatusOK, model.MatchResponse{Matches: toMatchResults(matches)})
}

func (h *handlers) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	id := h.store.Create()
	var res model.BoardResponse
	h.store.View(id, func(b *board.Board) { res = toBoardResponse(id, b) })
	log.Debug("created board", "id", id)
	writeJSON(w, http.StatusCreated, res)
}

// withBoard runs fn on the board named in the route and writes its state.
func (h *handlers) withBoard(w http.ResponseWriter, r *http.Request, fn func(b *board.Board)) {
	id := mux.Vars(r)["id"]
	var res model.BoardResponse
	ok := h.store.Update(id, func(b *board.Board) {
		fn(b)
		res = toBoardResponse(id, b)
	})
	if !ok {
		writeError(w, http.StatusNotFound, "no board "+id)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	h.withBoard(w, r, func(b *board.Board) {})
}

func (h *handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	var input model.ToggleRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not decode request body: "+err.Error())
		return
	}
	if !fretboard.InRange(input.String, input.Fret) {
		writeError(w, http.StatusBadRequest, "string must be 0-5 and fret 0-11")
		return
	}
	h.withBoard(w, r, func(b *board.Board) { b.Toggle(input.String, input.Fret) })
}

func (h *handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	h.withBoard(w, r, func(b *board.Board) { b.Reset() })
}

func (h *handlers) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.store.Delete(id) {
		writeError(w, http.StatusNotFound, "no board "+id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
