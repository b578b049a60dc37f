package handlers

import (
	"net/http"

	"github.com/Dosada05/esports-db/services"
)

type ApplicationHandler struct {
	moderationService services.ModerationService
}

func NewApplicationHandler(moderationService services.ModerationService) *ApplicationHandler {
	return &ApplicationHandler{moderationService: moderationService}
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input services.ApplicationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	app, err := h.moderationService.Submit(r.Context(), user.ID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, app, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ApplicationHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	apps, err := h.moderationService.ListOwn(r.Context(), user.ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, apps, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ApplicationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	apps, err := h.moderationService.ListPending(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, apps, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ApplicationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.DecisionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	app, err := h.moderationService.Decide(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, app, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
