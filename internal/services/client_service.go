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

// ErrRecordNotFound is returned when a tenant-scoped row does not exist
// or belongs to another workshop.
var ErrRecordNotFound = errors.New("record not found")

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) List(oficinaID uuid.UUID, page, limit int, search string) (*dto.ListResponse[models.Client], error) {
	page, limit = normalizePagination(page, limit)

	query := s.db.Model(&models.Client{}).Scopes(tenant.ForWorkshop(oficinaID))
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("nome ILIKE ? OR email ILIKE ? OR cpf ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	var clients []models.Client
	if err := query.Order("nome ASC").Offset((page - 1) * limit).Limit(limit).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return &dto.ListResponse[models.Client]{Items: clients, Total: total, Page: page, Limit: limit}, nil
}

func (s *ClientService) Get(oficinaID, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := s.db.Scopes(tenant.ForWorkshop(oficinaID)).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Create(oficinaID uuid.UUID, req *dto.ClientRequest) (*models.Client, error) {
	if req.Nome == "" {
		return nil, invalidf("nome is required")
	}

	if err := checkResourceLimit(s.db, oficinaID, "clientes"); err != nil {
		return nil, err
	}

	client := models.Client{
		OficinaID:   oficinaID,
		Nome:        req.Nome,
		Email:       req.Email,
		Telefone:    req.Telefone,
		CPF:         req.CPF,
		Endereco:    req.Endereco,
		Observacoes: req.Observacoes,
	}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	bumpCounter(s.db, oficinaID, "clientes", 1)
	return &client, nil
}

func (s *ClientService) Update(oficinaID, id uuid.UUID, req *dto.ClientRequest) (*models.Client, error) {
	client, err := s.Get(oficinaID, id)
	if err != nil {
		return nil, err
	}

	client.Nome = req.Nome
	client.Email = req.Email
	client.Telefone = req.Telefone
	client.CPF = req.CPF
	client.Endereco = req.Endereco
	client.Observacoes = req.Observacoes

	if err := s.db.Save(client).Error; err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (s *ClientService) Delete(oficinaID, id uuid.UUID) error {
	result := s.db.Scopes(tenant.ForWorkshop(oficinaID)).Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	bumpCounter(s.db, oficinaID, "clientes", -1)
	return nil
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
