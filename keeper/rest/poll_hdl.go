package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hostkeeper/keeper/keeper/domain"
)

// PollResponse is one poller's state as served to clients. Items come from the last good
// snapshot even while the poller is stale.
type PollResponse[T any] struct {
	Items        []T                 `json:"items"`
	Seq          uint64              `json:"seq"`
	TakenAt      *time.Time          `json:"taken_at,omitempty"`
	Refreshing   bool                `json:"refreshing"`
	Stale        bool                `json:"stale"`
	StaleSince   *time.Time          `json:"stale_since,omitempty"`
	LastError    string              `json:"last_error,omitempty"`
	SkippedLines int                 `json:"skipped_lines"`
	ParseErrors  []domain.ParseError `json:"parse_errors,omitempty"`
	Warnings     []string            `json:"warnings,omitempty"`
}

func newPollResponse[T, V any](state domain.PollState[T], view func(T) (V, bool)) PollResponse[V] {
	resp := PollResponse[V]{Items: []V{}, Refreshing: state.Refreshing, Stale: state.Stale()}
	if state.LastError != nil {
		resp.LastError = state.LastError.Error()
	}
	if resp.Stale {
		since := state.StaleSince()
		resp.StaleSince = &since
	}
	snap := state.Snapshot
	if snap == nil {
		return resp
	}
	resp.Seq = snap.Seq
	resp.TakenAt = &snap.TakenAt
	resp.SkippedLines = snap.Skipped
	resp.ParseErrors = snap.ParseErrors
	resp.Warnings = snap.Warnings
	for _, item := range snap.Items {
		if v, ok := view(item); ok {
			resp.Items = append(resp.Items, v)
		}
	}
	return resp
}

func identity[T any](v T) (T, bool) { return v, true }

type ProcessView struct {
	domain.ProcessRecord
	Heavy bool `json:"heavy"`
}

// ListProcesses serves the process snapshot. heavy_mb overrides the configured heavy threshold;
// system processes are hidden unless include_system=true.
func (h *Handler) ListProcesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	threshold := h.Policy.Get().HeavyProcessThreshold
	if raw := r.URL.Query().Get("heavy_mb"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid heavy_mb", err)
			return
		}
		threshold = v
	}
	includeSystem, _ := strconv.ParseBool(r.URL.Query().Get("include_system"))

	state, err := h.View.Processes(ctx)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newPollResponse(state, func(p domain.ProcessRecord) (ProcessView, bool) {
		if p.System && !includeSystem {
			return ProcessView{}, false
		}
		return ProcessView{ProcessRecord: p, Heavy: p.IsHeavy(threshold)}, true
	})
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

func (h *Handler) ListTabs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state, err := h.View.Tabs(ctx)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newPollResponse(state, identity[domain.BrowserTab])
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

func (h *Handler) ListHealthChecks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state, err := h.View.Health(ctx)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := newPollResponse(state, identity[domain.HealthCheckResult])
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

type RefreshResponse struct {
	Poller string `json:"poller"`
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, err := domain.ParsePollerKind(h.GetPathParam(r, "poller"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	if err := h.Coordinator.Refresh(ctx, kind); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&RefreshResponse{Poller: string(kind)}))
}

type ActionView struct {
	ID      string    `json:"id"`
	Action  string    `json:"action"`
	Target  string    `json:"target"`
	Message string    `json:"message"`
	Error   string    `json:"error,omitempty"`
	At      time.Time `json:"at"`
}

type ListActionsResponse struct {
	Actions []ActionView `json:"actions"`
}

func (h *Handler) ListActions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := h.View.Actions(ctx)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := ListActionsResponse{Actions: make([]ActionView, 0, len(events))}
	for _, ev := range events {
		v := ActionView{ID: ev.ID, Action: string(ev.Action), Target: ev.Target, Message: ev.Message, At: ev.At}
		if ev.Err != nil {
			v.Error = ev.Err.Error()
		}
		resp.Actions = append(resp.Actions, v)
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}
