package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/models"
	"github.com/turbogestor/backend/internal/plan"
	"gorm.io/gorm"
)

// ErrTrialExpired blocks creates for workshops whose trial ended without
// an upgrade.
var ErrTrialExpired = errors.New("Seu período de teste expirou. Escolha um plano para continuar.")

// LimitError carries the full evaluator result so handlers can surface
// limit/current alongside the denial message.
type LimitError struct {
	Result plan.Result
}

func (e *LimitError) Error() string { return e.Result.Message }

// counterFor reads the denormalized usage counter backing a resource key.
func counterFor(w *models.Workshop, resource string) int {
	switch resource {
	case "clientes":
		return w.TotalClientes
	case "veiculos":
		return w.TotalVeiculos
	case "produtos":
		return w.TotalProdutos
	case "servicos":
		return w.TotalServicos
	}
	return 0
}

// counterColumn maps a resource key to its oficinas column.
func counterColumn(resource string) string {
	switch resource {
	case "clientes":
		return "total_clientes"
	case "veiculos":
		return "total_veiculos"
	case "produtos":
		return "total_produtos"
	case "servicos":
		return "total_servicos"
	}
	return ""
}

// checkResourceLimit gates a create: trial-expired basico workshops are
// blocked outright, otherwise the plan caps decide against the advisory
// counter.
func checkResourceLimit(db *gorm.DB, oficinaID uuid.UUID, resource string) error {
	var w models.Workshop
	if err := db.First(&w, "id = ?", oficinaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkshopNotFound
		}
		return err
	}

	state := plan.ResolveState(w.TrialEndsAt, w.StripeSubscriptionID, time.Now())
	if state.Kind == plan.TrialExpired && plan.Normalize(w.Plano) == "basico" {
		return ErrTrialExpired
	}

	if res := plan.CheckLimit(w.Plano, resource, counterFor(&w, resource)); !res.Allowed {
		return &LimitError{Result: res}
	}
	return nil
}

// bumpCounter adjusts a usage counter in place. Counters are advisory:
// the bump is not in the same transaction as the row mutation, so drift
// under concurrency is tolerated.
func bumpCounter(db *gorm.DB, oficinaID uuid.UUID, resource string, delta int) {
	column := counterColumn(resource)
	if column == "" {
		return
	}
	err := db.Model(&models.Workshop{}).
		Where("id = ?", oficinaID).
		UpdateColumn(column, gorm.Expr("GREATEST("+column+" + ?, 0)", delta)).Error
	if err != nil {
		slog.Error("counter update failed",
			"oficina_id", oficinaID.String(), "resource", resource, "delta", delta, "error", err)
	}
}
