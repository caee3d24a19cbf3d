package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/config"
)

// ServiceInfoBody is the response body for the root endpoint.
type ServiceInfoBody struct {
	Service string `json:"service" doc:"Service name"`
	Version string `json:"version" doc:"Service version"`
}

// ServiceInfoOutput is the Huma output for the root endpoint.
type ServiceInfoOutput struct {
	Body ServiceInfoBody
}

// StatusOutput is the Huma output for the health endpoint.
type StatusOutput struct{}

// Handler serves the service-info and health endpoints.
type Handler struct {
	Config *config.Config
}

// NewHandler creates a new Handler.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{Config: cfg}
}

// Register registers the status endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "service-info",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service information",
		Description: "Returns the service name and version.",
		Tags:        []string{"Status"},
	}, h.serviceInfo)

	huma.Register(api, huma.Operation{
		OperationID:   "status",
		Method:        http.MethodGet,
		Path:          "/status",
		Summary:       "Health check",
		Tags:          []string{"Status"},
		DefaultStatus: http.StatusOK,
	}, h.status)
}

func (h *Handler) serviceInfo(_ context.Context, _ *struct{}) (*ServiceInfoOutput, error) {
	return &ServiceInfoOutput{
		Body: ServiceInfoBody{
			Service: h.Config.ServiceName,
			Version: h.Config.ServiceVersion,
		},
	}, nil
}

func (h *Handler) status(_ context.Context, _ *struct{}) (*StatusOutput, error) {
	return &StatusOutput{}, nil
}
