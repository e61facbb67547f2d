package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/hostkeeper/keeper/keeper/domain"
)

type TerminateRequest struct {
	Force bool `json:"force"`
}

type TerminateResponse struct {
	PID   int  `json:"pid"`
	Force bool `json:"force"`
}

// TerminateProcess accepts an empty body as a graceful terminate.
func (h *Handler) TerminateProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pid, err := strconv.Atoi(h.GetPathParam(r, "pid"))
	if err != nil || pid <= 0 {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid pid", err)
		return
	}
	var req TerminateRequest
	if err := h.JSONBind(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.Coordinator.Terminate(ctx, pid, req.Force); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&TerminateResponse{PID: pid, Force: req.Force}))
}

type CloseTabsRequest struct {
	Tabs []domain.BrowserTab `json:"tabs"`
}

type CloseTabsResponse struct {
	Requested int `json:"requested"`
	Closed    int `json:"closed"`
}

func (h *Handler) CloseTabs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CloseTabsRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.Tabs) == 0 {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "No tabs given", nil)
		return
	}
	closed, err := h.Coordinator.CloseTabs(ctx, req.Tabs)
	resp := &CloseTabsResponse{Requested: len(req.Tabs), Closed: closed}
	if err != nil {
		HandlePartial(h, ctx, w, resp, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(resp))
}

type ListCleanupCategoriesResponse struct {
	Categories []domain.CleanupCategory `json:"categories"`
}

func (h *Handler) ListCleanupCategories(w http.ResponseWriter, r *http.Request) {
	resp := &ListCleanupCategoriesResponse{Categories: h.Coordinator.CleanupCategories()}
	h.JSONResponse(r.Context(), w, http.StatusOK, NewSuccessResponse(resp))
}

func (h *Handler) EstimateCleanup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	estimate, err := h.Coordinator.EstimateCleanup(ctx, h.GetPathParam(r, "category"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(estimate))
}

func (h *Handler) RunCleanup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	outcome, err := h.Coordinator.RunCleanup(ctx, h.GetPathParam(r, "category"))
	if err != nil {
		HandlePartial(h, ctx, w, outcome, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(outcome))
}
