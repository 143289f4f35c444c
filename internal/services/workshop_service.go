package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/models"
	"github.com/turbogestor/backend/internal/plan"
	"gorm.io/gorm"
)

var (
	ErrWorkshopNotFound = errors.New("oficina não encontrada")
	ErrLayoutNotAllowed = errors.New("Este recurso está disponível apenas no plano Business")
)

// WorkshopService owns the tenant row. It also satisfies
// billing.WorkshopStore, so the webhook reconciler and the trial sweep
// drive their mutations through it.
type WorkshopService struct {
	db *gorm.DB
}

func NewWorkshopService(db *gorm.DB) *WorkshopService {
	return &WorkshopService{db: db}
}

func (s *WorkshopService) GetWorkshop(id uuid.UUID) (*models.Workshop, error) {
	var w models.Workshop
	if err := s.db.First(&w, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("load workshop: %w", err)
	}
	w.Plano = plan.Normalize(w.Plano)
	return &w, nil
}

// UpdateWorkshopFields applies an idempotent set of column updates.
func (s *WorkshopService) UpdateWorkshopFields(id uuid.UUID, fields map[string]interface{}) error {
	result := s.db.Model(&models.Workshop{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("update workshop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWorkshopNotFound
	}
	return nil
}

// TrialsEndingBetween lists workshops without a subscription whose trial
// ends inside [from, to].
func (s *WorkshopService) TrialsEndingBetween(from, to time.Time) ([]models.Workshop, error) {
	var out []models.Workshop
	err := s.db.
		Where("stripe_subscription_id IS NULL").
		Where("trial_ends_at >= ? AND trial_ends_at <= ?", from, to).
		Find(&out).Error
	return out, err
}

// TrialsExpiredBefore lists workshops without a subscription whose trial
// already ended.
func (s *WorkshopService) TrialsExpiredBefore(t time.Time) ([]models.Workshop, error) {
	var out []models.Workshop
	err := s.db.
		Where("stripe_subscription_id IS NULL").
		Where("trial_ends_at < ?", t).
		Find(&out).Error
	return out, err
}

func (s *WorkshopService) UpdateProfile(id uuid.UUID, req *dto.UpdateWorkshopRequest) (*models.Workshop, error) {
	fields := map[string]interface{}{}
	if req.Nome != "" {
		fields["nome"] = req.Nome
	}
	if req.Telefone != "" {
		fields["telefone"] = req.Telefone
	}
	if len(fields) > 0 {
		if err := s.UpdateWorkshopFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.GetWorkshop(id)
}

// SetLayout stores the layout preference, gated by the layouts plan flag.
func (s *WorkshopService) SetLayout(id uuid.UUID, layout string) error {
	w, err := s.GetWorkshop(id)
	if err != nil {
		return err
	}
	if res := plan.CheckLimit(w.Plano, "layouts", 0); !res.Allowed {
		return ErrLayoutNotAllowed
	}
	return s.UpdateWorkshopFields(id, map[string]interface{}{"layout": layout})
}

// PlanStatus assembles the plans-page view: resolved standing plus the
// limit/current pair for each capped resource.
func (s *WorkshopService) PlanStatus(id uuid.UUID, now time.Time) (*dto.PlanStatusResponse, error) {
	w, err := s.GetWorkshop(id)
	if err != nil {
		return nil, err
	}

	state := plan.ResolveState(w.TrialEndsAt, w.StripeSubscriptionID, now)
	return &dto.PlanStatusResponse{
		Plano:         w.Plano,
		PlanoNome:     plan.Limits(w.Plano).Name,
		Status:        state.Kind.String(),
		DaysRemaining: state.DaysRemaining,
		Usage:         usageFor(w),
	}, nil
}

func usageFor(w *models.Workshop) []dto.ResourceUsage {
	caps := plan.Limits(w.Plano)
	return []dto.ResourceUsage{
		{Resource: "clientes", Current: w.TotalClientes, Limit: caps.Clientes},
		{Resource: "veiculos", Current: w.TotalVeiculos, Limit: caps.Veiculos},
		{Resource: "produtos", Current: w.TotalProdutos, Limit: caps.Produtos},
		{Resource: "servicos", Current: w.TotalServicos, Limit: caps.Servicos},
	}
}
