package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/models"
	"github.com/turbogestor/backend/internal/tenant"
	"gorm.io/gorm"
)

// expenseRatio simulates operating costs until expense tracking lands.
const expenseRatio = 0.35

type DashboardService struct {
	db       *gorm.DB
	workshop *WorkshopService
}

func NewDashboardService(db *gorm.DB, workshop *WorkshopService) *DashboardService {
	return &DashboardService{db: db, workshop: workshop}
}

// Summary assembles the landing-page aggregates for one workshop.
func (s *DashboardService) Summary(oficinaID uuid.UUID, now time.Time) (*dto.DashboardResponse, error) {
	w, err := s.workshop.GetWorkshop(oficinaID)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var receita float64
	err = s.db.Model(&models.Invoice{}).
		Scopes(tenant.ForWorkshop(oficinaID)).
		Where("status = ? AND updated_at >= ?", "paga", monthStart).
		Select("COALESCE(SUM(valor_total - valor_desconto), 0)").
		Scan(&receita).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	var pendentes int64
	err = s.db.Model(&models.Invoice{}).
		Scopes(tenant.ForWorkshop(oficinaID)).
		Where("status = ?", "pendente").
		Count(&pendentes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count pending invoices: %w", err)
	}

	today, err := s.todaysAppointments(oficinaID, now)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.lowStockProducts(oficinaID)
	if err != nil {
		return nil, err
	}

	despesas := receita * expenseRatio
	margem := receita - despesas
	var margemPct float64
	if receita > 0 {
		margemPct = margem / receita * 100
	}

	return &dto.DashboardResponse{
		ReceitaMes:        receita,
		Despesas:          despesas,
		MargemLucro:       margem,
		MargemPorcentagem: margemPct,
		FaturasPendentes:  pendentes,
		AgendamentosHoje:  today,
		EstoqueBaixo:      lowStock,
		Usage:             usageFor(w),
	}, nil
}

func (s *DashboardService) todaysAppointments(oficinaID uuid.UUID, now time.Time) ([]dto.DashboardAppointment, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var appointments []models.Appointment
	err := s.db.
		Scopes(tenant.ForWorkshop(oficinaID)).
		Where("data_agendamento >= ? AND data_agendamento < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Where("status <> ?", "cancelado").
		Order("data_agendamento ASC").
		Preload("Cliente").
		Preload("Servico").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load today's appointments: %w", err)
	}

	out := make([]dto.DashboardAppointment, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, dto.DashboardAppointment{
			ID:              a.ID.String(),
			DataAgendamento: a.DataAgendamento,
			ClienteNome:     a.Cliente.Nome,
			ServicoNome:     a.Servico.Nome,
			Status:          a.Status,
		})
	}
	return out, nil
}

func (s *DashboardService) lowStockProducts(oficinaID uuid.UUID) ([]dto.DashboardLowStockProduct, error) {
	var products []models.Product
	err := s.db.
		Scopes(tenant.ForWorkshop(oficinaID)).
		Where("quantidade <= quantidade_minima").
		Order("quantidade ASC").
		Limit(10).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load low-stock products: %w", err)
	}

	out := make([]dto.DashboardLowStockProduct, 0, len(products))
	for _, p := range products {
		out = append(out, dto.DashboardLowStockProduct{
			ID:               p.ID.String(),
			Nome:             p.Nome,
			Quantidade:       p.Quantidade,
			QuantidadeMinima: p.QuantidadeMinima,
		})
	}
	return out, nil
}
