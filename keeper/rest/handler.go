package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hostkeeper/keeper/keeper/auth"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/errs"
	"github.com/hostkeeper/keeper/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const serviceName = "keeper control API"

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse represents the success response structure
type SuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      *T     `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func NewSuccessResponse[T any](data *T) SuccessResponse[T] {
	return SuccessResponse[T]{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

type Params struct {
	fx.In
	Coordinator domain.ActionCoordinator
	View        domain.StateView
	Policy      *domain.PolicyStore
	Issuer      *auth.Issuer
	Gatherer    prometheus.Gatherer `optional:"true"`
}

func NewHandler(params Params) (*Handler, error) {
	gatherer := params.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Handler{
		Coordinator: params.Coordinator,
		View:        params.View,
		Policy:      params.Policy,
		Issuer:      params.Issuer,
		gatherer:    gatherer,
	}, nil
}

type Handler struct {
	Coordinator domain.ActionCoordinator
	View        domain.StateView
	Policy      *domain.PolicyStore
	Issuer      *auth.Issuer
	gatherer    prometheus.Gatherer
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}

func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		logger.Logger(ctx).Debug().Err(err).Int("status", status).Msg(errMsg)
	}
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
	}
	h.JSONResponse(ctx, w, status, resp)
}

// StatusFor maps an action or query error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrPartialActionFailure):
		return http.StatusMultiStatus
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownCategory), errors.Is(err, domain.ErrUnknownPoller):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrEscalationInProgress), errors.Is(err, domain.ErrActionInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if actionErr, ok := errs.IsActionError(err); ok {
		msg = actionErr.Error()
	}
	if status >= http.StatusInternalServerError {
		logger.Logger(ctx).Error().Err(err).Msg("request failed")
	}
	h.ErrorResponse(ctx, w, status, msg, nil)
}

// HandlePartial writes data with 207 and the error message when err is a partial failure,
// and falls back to HandleError otherwise.
func HandlePartial[T any](h *Handler, ctx context.Context, w http.ResponseWriter, data *T, err error) {
	if !errors.Is(err, domain.ErrPartialActionFailure) {
		h.HandleError(ctx, w, err)
		return
	}
	resp := NewSuccessResponse(data)
	resp.Success = false
	resp.Error = err.Error()
	h.JSONResponse(ctx, w, http.StatusMultiStatus, resp)
}

func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message":   serviceName,
		"version":   "1.0.0",
		"endpoints": "/api/v1/processes, /api/v1/tabs, /api/v1/health-checks, /api/v1/cleanup, /api/v1/refresh/:poller, /api/v1/actions, /metrics, /health",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
