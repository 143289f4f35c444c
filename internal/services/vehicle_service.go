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

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

func (s *VehicleService) List(oficinaID uuid.UUID, page, limit int, clienteID *uuid.UUID) (*dto.ListResponse[models.Vehicle], error) {
	page, limit = normalizePagination(page, limit)

	query := s.db.Model(&models.Vehicle{}).Scopes(tenant.ForWorkshop(oficinaID))
	if clienteID != nil {
		query = query.Where("cliente_id = ?", *clienteID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}

	var vehicles []models.Vehicle
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return &dto.ListResponse[models.Vehicle]{Items: vehicles, Total: total, Page: page, Limit: limit}, nil
}

func (s *VehicleService) Get(oficinaID, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.db.Scopes(tenant.ForWorkshop(oficinaID)).First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleService) Create(oficinaID uuid.UUID, req *dto.VehicleRequest) (*models.Vehicle, error) {
	if req.Placa == "" {
		return nil, invalidf("placa is required")
	}

	// The owning client must exist in the same workshop.
	var owner models.Client
	err := s.db.Scopes(tenant.ForWorkshop(oficinaID)).First(&owner, "id = ?", req.ClienteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := checkResourceLimit(s.db, oficinaID, "veiculos"); err != nil {
		return nil, err
	}

	vehicle := models.Vehicle{
		OficinaID: oficinaID,
		ClienteID: req.ClienteID,
		Placa:     req.Placa,
		Marca:     req.Marca,
		Modelo:    req.Modelo,
		Ano:       req.Ano,
		Cor:       req.Cor,
		KM:        req.KM,
	}
	if err := s.db.Create(&vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	bumpCounter(s.db, oficinaID, "veiculos", 1)
	return &vehicle, nil
}

func (s *VehicleService) Update(oficinaID, id uuid.UUID, req *dto.VehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.Get(oficinaID, id)
	if err != nil {
		return nil, err
	}

	vehicle.Placa = req.Placa
	vehicle.Marca = req.Marca
	vehicle.Modelo = req.Modelo
	vehicle.Ano = req.Ano
	vehicle.Cor = req.Cor
	vehicle.KM = req.KM
	if req.ClienteID != uuid.Nil {
		vehicle.ClienteID = req.ClienteID
	}

	if err := s.db.Save(vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *VehicleService) Delete(oficinaID, id uuid.UUID) error {
	result := s.db.Scopes(tenant.ForWorkshop(oficinaID)).Delete(&models.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	bumpCounter(s.db, oficinaID, "veiculos", -1)
	return nil
}
