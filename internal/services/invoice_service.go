package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/models"
	"github.com/turbogestor/backend/internal/tenant"
	"gorm.io/gorm"
)

type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

func (s *InvoiceService) List(oficinaID uuid.UUID, page, limit int, status string) (*dto.ListResponse[models.Invoice], error) {
	page, limit = normalizePagination(page, limit)

	query := s.db.Model(&models.Invoice{}).Scopes(tenant.ForWorkshop(oficinaID))
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	var invoices []models.Invoice
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return &dto.ListResponse[models.Invoice]{Items: invoices, Total: total, Page: page, Limit: limit}, nil
}

func (s *InvoiceService) Get(oficinaID, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.db.Scopes(tenant.ForWorkshop(oficinaID)).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *InvoiceService) Create(oficinaID uuid.UUID, req *dto.InvoiceRequest) (*models.Invoice, error) {
	if req.ValorTotal < 0 {
		return nil, invalidf("valor_total cannot be negative")
	}

	status := req.Status
	if status == "" {
		status = "pendente"
	}
	if !validInvoiceStatus(status) {
		return nil, ErrInvalidStatus
	}

	var owner models.Client
	err := s.db.Scopes(tenant.ForWorkshop(oficinaID)).First(&owner, "id = ?", req.ClienteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	numero := req.Numero
	if numero == "" {
		numero, err = s.nextNumero(oficinaID)
		if err != nil {
			return nil, err
		}
	}

	invoice := models.Invoice{
		OficinaID:      oficinaID,
		Numero:         numero,
		ClienteID:      req.ClienteID,
		VeiculoID:      req.VeiculoID,
		ValorTotal:     req.ValorTotal,
		ValorDesconto:  req.ValorDesconto,
		Status:         status,
		DataVencimento: req.DataVencimento,
		FormaPagamento: req.FormaPagamento,
		Observacoes:    req.Observacoes,
		Itens:          req.Itens,
	}
	if err := s.db.Create(&invoice).Error; err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

func (s *InvoiceService) Update(oficinaID, id uuid.UUID, req *dto.InvoiceRequest) (*models.Invoice, error) {
	invoice, err := s.Get(oficinaID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		if !validInvoiceStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		invoice.Status = req.Status
	}
	if req.ValorTotal >= 0 {
		invoice.ValorTotal = req.ValorTotal
	}
	invoice.ValorDesconto = req.ValorDesconto
	invoice.DataVencimento = req.DataVencimento
	invoice.FormaPagamento = req.FormaPagamento
	invoice.Observacoes = req.Observacoes
	if len(req.Itens) > 0 {
		invoice.Itens = req.Itens
	}

	if err := s.db.Save(invoice).Error; err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return invoice, nil
}

func (s *InvoiceService) Delete(oficinaID, id uuid.UUID) error {
	result := s.db.Scopes(tenant.ForWorkshop(oficinaID)).Delete(&models.Invoice{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// nextNumero issues FAT-YYYY-NNNN sequentially per workshop per year.
func (s *InvoiceService) nextNumero(oficinaID uuid.UUID) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("FAT-%d-", year)

	var count int64
	err := s.db.Model(&models.Invoice{}).Unscoped().
		Scopes(tenant.ForWorkshop(oficinaID)).
		Where("numero LIKE ?", prefix+"%").
		Count(&count).Error
	if err != nil {
		return "", fmt.Errorf("failed to generate invoice number: %w", err)
	}

	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

func validInvoiceStatus(status string) bool {
	for _, s := range models.InvoiceStatuses {
		if s == status {
			return true
		}
	}
	return false
}
