package dto

import "github.com/turbogestor/backend/internal/plan"

type UpdateWorkshopRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

type LayoutRequest struct {
	Layout string `json:"layout"`
}

// ResourceUsage pairs a counter with its plan cap for progress display.
type ResourceUsage struct {
	Resource string `json:"resource"`
	Current  int    `json:"current"`
	Limit    int    `json:"limit"`
}

// PlanStatusResponse describes the tenant's standing for the plans page.
type PlanStatusResponse struct {
	Plano         string          `json:"plano"`
	PlanoNome     string          `json:"plano_nome"`
	Status        string          `json:"status"`
	DaysRemaining int             `json:"days_remaining"`
	Usage         []ResourceUsage `json:"usage"`
}

// LimitCheckResponse mirrors plan.Result for the pre-create check endpoint.
type LimitCheckResponse struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Current int    `json:"current,omitempty"`
}

func LimitCheckFromResult(res plan.Result) LimitCheckResponse {
	return LimitCheckResponse{
		Allowed: res.Allowed,
		Message: res.Message,
		Limit:   res.Limit,
		Current: res.Current,
	}
}
