// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// HealthHandler implements the gRPC health service. A configured storage
// that does not answer makes the service NOT_SERVING.
type HealthHandler struct {
	grpc_health_v1.UnimplementedHealthServer

	storage Pinger
	logger  *zap.Logger
}

// NewHealthHandler returns a HealthHandler. storage may be nil.
func NewHealthHandler(storage Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{storage: storage, logger: logger}
}

// Check reports server health.
func (h *HealthHandler) Check(ctx context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	status := grpc_health_v1.HealthCheckResponse_SERVING
	if h.storage != nil {
		if err := h.storage.Ping(ctx); err != nil {
			h.logger.Warn("storage ping failed", zap.Error(err))
			status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
		}
	}
	return &grpc_health_v1.HealthCheckResponse{Status: status}, nil
}

// Register exposes the health check as GET /healthz on mux.
func (h *HealthHandler) Register(mux *gwruntime.ServeMux) error {
	return mux.HandlePath(http.MethodGet, "/healthz", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		resp, err := h.Check(r.Context(), &grpc_health_v1.HealthCheckRequest{})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		status := http.StatusOK
		if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, map[string]string{"status": resp.GetStatus().String()})
	})
}
