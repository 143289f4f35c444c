package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/models"
	"github.com/turbogestor/backend/internal/tenant"
	"gorm.io/gorm"
)

type ServiceItemService struct {
	db *gorm.DB
}

func NewServiceItemService(db *gorm.DB) *ServiceItemService {
	return &ServiceItemService{db: db}
}

func (s *ServiceItemService) List(oficinaID uuid.UUID, page, limit int, search string) (*dto.ListResponse[models.ServiceItem], error) {
	page, limit = normalizePagination(page, limit)

	query := s.db.Model(&models.ServiceItem{}).Scopes(tenant.ForWorkshop(oficinaID))
	if search != "" {
		query = query.Where("nome ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count services: %w", err)
	}

	var items []models.ServiceItem
	if err := query.Order("nome ASC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return &dto.ListResponse[models.ServiceItem]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *ServiceItemService) Get(oficinaID, id uuid.UUID) (*models.ServiceItem, error) {
	var item models.ServiceItem
	err := s.db.Scopes(tenant.ForWorkshop(oficinaID)).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ServiceItemService) Create(oficinaID uuid.UUID, req *dto.ServiceItemRequest) (*models.ServiceItem, error) {
	if req.Nome == "" {
		return nil, invalidf("nome is required")
	}

	if err := checkResourceLimit(s.db, oficinaID, "servicos"); err != nil {
		return nil, err
	}

	item := models.ServiceItem{
		OficinaID:       oficinaID,
		Nome:            req.Nome,
		Descricao:       req.Descricao,
		Preco:           req.Preco,
		DuracaoEstimada: req.DuracaoEstimada,
	}
	if item.DuracaoEstimada <= 0 {
		item.DuracaoEstimada = 60
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	bumpCounter(s.db, oficinaID, "servicos", 1)
	return &item, nil
}

func (s *ServiceItemService) Update(oficinaID, id uuid.UUID, req *dto.ServiceItemRequest) (*models.ServiceItem, error) {
	item, err := s.Get(oficinaID, id)
	if err != nil {
		return nil, err
	}

	item.Nome = req.Nome
	item.Descricao = req.Descricao
	item.Preco = req.Preco
	if req.DuracaoEstimada > 0 {
		item.DuracaoEstimada = req.DuracaoEstimada
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return item, nil
}

func (s *ServiceItemService) Delete(oficinaID, id uuid.UUID) error {
	result := s.db.Scopes(tenant.ForWorkshop(oficinaID)).Delete(&models.ServiceItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	bumpCounter(s.db, oficinaID, "servicos", -1)
	return nil
}
