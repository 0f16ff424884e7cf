// internal/httpserver/routes.go
//
// Round endpoints:
//   - POST /round/new    → start a round (random or daily root), issue round token
//   - GET  /round        → current view of the caller's round
//   - POST /round/submit → evaluate a word; 422 with the rejection on failure
//   - POST /round/reset  → clear words and score, optionally keeping the root

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

// mountRounds registers all /round routes.
func (s *Server) mountRounds(r chi.Router) {
	r.Route("/round", func(r chi.Router) {
		r.Post("/new", s.handleNew)
		r.Get("/", s.handleView)
		r.Post("/submit", s.handleSubmit)
		r.Post("/reset", s.handleReset)
	})
}

// wordView is one accepted word with its length badge.
type wordView struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

// roundView is everything the player sees: title, list and score.
type roundView struct {
	Title        string     `json:"title"`
	Words        []wordView `json:"words"`
	Score        int        `json:"score"`
	DisplayScore int        `json:"displayScore"`
}

func viewOf(sess game.Session) roundView {
	words := make([]wordView, 0, len(sess.UsedWords))
	for _, w := range sess.UsedWords {
		words = append(words, wordView{Word: w, Length: len([]rune(w))})
	}
	return roundView{
		Title:        sess.RootWord,
		Words:        words,
		Score:        sess.Score,
		DisplayScore: sess.DisplayScore(),
	}
}

// errorView is the (title, message) pair shown for a rejection.
type errorView struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// -----------------------------------------------------------------------------
// /round/new

type newReq struct {
	Mode string `json:"mode"` // "random" (default) | "daily"
}

type newRes struct {
	Token string    `json:"token"`
	Date  string    `json:"date,omitempty"`
	Round roundView `json:"round"`
}

// handleNew draws a root word, stores a fresh session and issues its token.
// A previous session named by the caller's token is discarded.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newReq
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var dailyRound bool
	switch req.Mode {
	case "", "random":
	case "daily":
		dailyRound = true
	default:
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}
	sess, err := s.drawRound(dailyRound)
	if err != nil {
		log.Error().Err(err).Msg("new round")
		writeError(w, http.StatusInternalServerError, "no_start_words")
		return
	}

	if old, err := s.sessionID(r); err == nil {
		_ = s.store.Delete(r.Context(), old)
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign round token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setRoundCookie(w, tok, exp)

	log.Debug().Str("session", sess.ID).Str("root", sess.RootWord).Str("mode", req.Mode).Msg("round started")
	writeJSON(w, http.StatusOK, newRes{Token: tok, Date: sess.Date, Round: viewOf(sess)})
}

// -----------------------------------------------------------------------------
// /round

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

// -----------------------------------------------------------------------------
// /round/submit

type submitReq struct {
	Word string `json:"word"`
}

type submitRes struct {
	Status game.Status `json:"status"` // accepted | rejected | ignored
	Word   string      `json:"word,omitempty"`
	Error  *errorView  `json:"error,omitempty"`
	Round  roundView   `json:"round"`
}

// handleSubmit runs the validator and stores the session on acceptance.
// Evaluation happens inside store.Update so concurrent submissions for one
// round see each other's accepted words.
// Rejections answer 422 with the display texts; blank words are ignored.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res game.Result
	next, ok := s.updateSession(w, r, func(sess game.Session) (game.Session, error) {
		var updated game.Session
		updated, res = s.validator.Evaluate(sess, req.Word)
		return updated, nil
	})
	if !ok {
		return
	}

	switch res.Status {
	case game.StatusRejected:
		log.Debug().Str("session", next.ID).Str("word", res.Word).Str("kind", res.Err.Kind.String()).Msg("word rejected")
		writeJSON(w, http.StatusUnprocessableEntity, submitRes{
			Status: res.Status,
			Word:   res.Word,
			Error:  &errorView{Kind: res.Err.Kind.String(), Title: res.Err.Title, Message: res.Err.Message},
			Round:  viewOf(next),
		})
		return
	case game.StatusAccepted:
		log.Debug().Str("session", next.ID).Str("word", res.Word).Int("score", next.Score).Msg("word accepted")
	}
	writeJSON(w, http.StatusOK, submitRes{Status: res.Status, Word: res.Word, Round: viewOf(next)})
}

// -----------------------------------------------------------------------------
// /round/reset

type resetReq struct {
	KeepRoot bool `json:"keepRoot"`
}

// handleReset clears the caller's words and score. Unless keepRoot is set a
// new root word is drawn: today's word for daily rounds, a random one otherwise.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	sess, ok := s.updateSession(w, r, func(sess game.Session) (game.Session, error) {
		if req.KeepRoot {
			return sess.Reset(""), nil
		}
		fresh, err := s.drawRound(sess.Date != "")
		if err != nil {
			return sess, err
		}
		sess = sess.Reset(fresh.RootWord)
		sess.Date = fresh.Date
		return sess, nil
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewOf(sess))
}

// drawRound picks a root word: the day's word when daily is set, otherwise
// a random one. Daily sessions carry the date key they were drawn for.
func (s *Server) drawRound(dailyRound bool) (game.Session, error) {
	if !dailyRound {
		return game.NewRound(s.startWords)
	}
	now := s.opts.Now()
	sess, err := game.NewRoundAt(s.startWords, daily.Picker(now, s.opts.DailySalt))
	if err != nil {
		return sess, err
	}
	sess.Date = daily.DateKey(now)
	return sess, nil
}

// updateSession resolves the caller's session and applies fn to it under
// the store's update lock, writing 401/404/500 on failure.
func (s *Server) updateSession(w http.ResponseWriter, r *http.Request, fn func(game.Session) (game.Session, error)) (game.Session, bool) {
	sid, err := s.sessionID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no_round")
		return game.Session{}, false
	}
	var out game.Session
	err = s.store.Update(r.Context(), sid, func(cur game.Session) (game.Session, error) {
		next, err := fn(cur)
		out = next
		return next, err
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "round_not_found")
		return game.Session{}, false
	case errors.Is(err, game.ErrNoStartWords):
		log.Error().Err(err).Str("session", sid).Msg("draw root word")
		writeError(w, http.StatusInternalServerError, "no_start_words")
		return game.Session{}, false
	case err != nil:
		log.Error().Err(err).Str("session", sid).Msg("update session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return game.Session{}, false
	}
	return out, true
}

// loadSession resolves the caller's session, writing 401/404 on failure.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (game.Session, bool) {
	sid, err := s.sessionID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no_round")
		return game.Session{}, false
	}
	sess, err := s.store.Get(r.Context(), sid)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "round_not_found")
		return game.Session{}, false
	}
	if err != nil {
		log.Error().Err(err).Str("session", sid).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return game.Session{}, false
	}
	return sess, true
}

// decodeOptional decodes a JSON body into v; an empty body leaves v zero.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
