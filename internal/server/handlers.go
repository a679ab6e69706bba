package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/railbirdhq/railbird/internal/action"
	"github.com/railbirdhq/railbird/internal/handid"
	"github.com/railbirdhq/railbird/internal/pattern"
	"github.com/railbirdhq/railbird/internal/stats"
	"github.com/railbirdhq/railbird/internal/store"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

// storeError maps store failures onto HTTP status codes.
func (s *Server) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "not found")
		return
	}
	s.logger.Error("Store error", "error", err)
	s.respondError(w, http.StatusInternalServerError, "internal error")
}

type createSessionRequest struct {
	Name      string `json:"name"`
	Venue     string `json:"venue"`
	TableSize int    `json:"table_size"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		s.respondError(w, http.StatusBadRequest, "session name required")
		return
	}
	if req.Venue == "" {
		req.Venue = s.config.Session.Venue
	}
	if req.TableSize == 0 {
		req.TableSize = s.config.Session.TableSize
	}
	if req.TableSize < 2 || req.TableSize > 9 {
		s.respondError(w, http.StatusBadRequest, "table size must be between 2 and 9")
		return
	}

	sess, err := s.store.CreateSession(r.Context(), req.Name, req.Venue, req.TableSize)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.ListSessions(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}
	if sessions == nil {
		sessions = []store.Session{}
	}
	s.respondJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, sess)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if err := s.store.EndSession(r.Context(), id); err != nil {
		s.storeError(w, err)
		return
	}
	sess, err := s.store.GetSession(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, sess)
}

type saveHandRequest struct {
	ButtonSeat int             `json:"button_seat"`
	HeroSeat   int             `json:"hero_seat"`
	Note       string          `json:"note"`
	Sequence   action.Sequence `json:"sequence"`
}

func (s *Server) handleSaveHand(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req saveHandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ButtonSeat < 1 || req.ButtonSeat > 9 {
		s.respondError(w, http.StatusBadRequest, "button seat must be between 1 and 9")
		return
	}
	if err := req.Sequence.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The session must exist before a hand can hang off it.
	sess, err := s.store.GetSession(r.Context(), sessionID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	hand := store.Hand{
		ID:         handid.Generate(),
		SessionID:  sess.ID,
		ButtonSeat: req.ButtonSeat,
		HeroSeat:   req.HeroSeat,
		PlayedAt:   s.store.Now(),
		Note:       req.Note,
		Sequence:   req.Sequence,
	}
	if err := s.store.SaveHand(r.Context(), hand); err != nil {
		s.storeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, hand)
}

func (s *Server) handleListHands(w http.ResponseWriter, r *http.Request) {
	hands, err := s.store.ListHands(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.storeError(w, err)
		return
	}
	if hands == nil {
		hands = []store.Hand{}
	}
	s.respondJSON(w, http.StatusOK, hands)
}

func (s *Server) handleGetHand(w http.ResponseWriter, r *http.Request) {
	hand, err := s.store.GetHand(r.Context(), chi.URLParam(r, "handID"))
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, hand)
}

// seatStatsResponse is the wire form of one seat's session stats.
type seatStatsResponse struct {
	Seat             int     `json:"seat"`
	Hands            int     `json:"hands"`
	VPIP             float64 `json:"vpip"`
	PFR              float64 `json:"pfr"`
	ThreeBetPct      float64 `json:"three_bet_pct"`
	CbetPct          float64 `json:"cbet_pct"`
	FoldToCbetPct    float64 `json:"fold_to_cbet_pct"`
	AggressionFactor float64 `json:"aggression_factor"`
	WTSD             float64 `json:"wtsd"`
	WSD              float64 `json:"wsd"`
}

type sessionStatsResponse struct {
	SessionID   string              `json:"session_id"`
	HandsPlayed int                 `json:"hands_played"`
	Seats       []seatStatsResponse `json:"seats"`
}

func (s *Server) handleSessionStats(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if _, err := s.store.GetSession(r.Context(), sessionID); err != nil {
		s.storeError(w, err)
		return
	}

	hands, err := s.store.ListHands(r.Context(), sessionID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	statsHands := make([]stats.Hand, len(hands))
	for i, h := range hands {
		statsHands[i] = stats.Hand{Sequence: h.Sequence, Button: h.ButtonSeat}
	}
	ss := stats.Compute(statsHands)

	resp := sessionStatsResponse{
		SessionID:   sessionID,
		HandsPlayed: ss.HandsPlayed,
		Seats:       []seatStatsResponse{},
	}
	for _, seat := range ss.Seats() {
		st := ss.Seat(seat)
		resp.Seats = append(resp.Seats, seatStatsResponse{
			Seat:             st.Seat,
			Hands:            st.Hands,
			VPIP:             st.VPIP(),
			PFR:              st.PFR(),
			ThreeBetPct:      st.ThreeBetPct(),
			CbetPct:          st.CbetPct(),
			FoldToCbetPct:    st.FoldToCbetPct(),
			AggressionFactor: st.AggressionFactor(),
			WTSD:             st.WTSD(),
			WSD:              st.WSD(),
		})
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateData
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	result, ok := validateWithNext(s.vocab, req)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "unknown street: "+req.Street)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyData
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := req.Sequence.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := ClassifyResultData{
		Preflop:  pattern.SummarizePreflop(req.Sequence),
		Postflop: make(map[string]map[int][]string),
	}
	for street, seats := range pattern.SummarizePostflop(req.Sequence, req.ButtonSeat) {
		resp.Postflop[street.String()] = seats
	}
	if seat, ok := pattern.PreflopAggressor(req.Sequence); ok {
		resp.PFRSeat = seat
	}
	s.respondJSON(w, http.StatusOK, resp)
}
