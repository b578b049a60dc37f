package handlers

import (
	"net/http"

	"github.com/Dosada05/esports-db/repositories"
	"github.com/Dosada05/esports-db/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.MatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repositories.ListMatchesFilter
	var err error

	if filter.TournamentID, err = queryInt(r, "tournament"); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if filter.TeamID, err = queryInt(r, "team"); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter.Status = queryString(r, "status")
	if filter.DateFrom, err = queryDate(r, "date_from"); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if filter.DateTo, err = queryDate(r, "date_to"); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter.Query = queryString(r, "q")

	matches, err := h.matchService.List(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListUpcoming(r.Context(), queryLimit(r, "limit"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// FinalWinner отвечает {"winner": null}, если финал не сыгран или
// победитель не записан.
func (h *MatchHandler) FinalWinner(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := queryInt(r, "tournament_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if tournamentID == nil {
		mapServiceErrorToHTTP(w, r, services.ErrTournamentIDRequired)
		return
	}

	winner, err := h.matchService.FinalWinner(r.Context(), *tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"winner": winner.Winner}
	if winner.MatchID != nil {
		response["match_id"] = winner.MatchID
		response["score"] = winner.Score
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.MatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) SetResult(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.MatchResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.SetResult(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.matchService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
