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

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) List(oficinaID uuid.UUID, page, limit int, search string, lowStock bool) (*dto.ListResponse[models.Product], error) {
	page, limit = normalizePagination(page, limit)

	query := s.db.Model(&models.Product{}).Scopes(tenant.ForWorkshop(oficinaID))
	if search != "" {
		query = query.Where("nome ILIKE ?", "%"+search+"%")
	}
	if lowStock {
		query = query.Where("quantidade <= quantidade_minima")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	if err := query.Order("nome ASC").Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &dto.ListResponse[models.Product]{Items: products, Total: total, Page: page, Limit: limit}, nil
}

func (s *ProductService) Get(oficinaID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.Scopes(tenant.ForWorkshop(oficinaID)).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(oficinaID uuid.UUID, req *dto.ProductRequest) (*models.Product, error) {
	if req.Nome == "" {
		return nil, invalidf("nome is required")
	}

	if err := checkResourceLimit(s.db, oficinaID, "produtos"); err != nil {
		return nil, err
	}

	product := models.Product{
		OficinaID:        oficinaID,
		Nome:             req.Nome,
		Descricao:        req.Descricao,
		Quantidade:       req.Quantidade,
		QuantidadeMinima: req.QuantidadeMinima,
		PrecoCusto:       req.PrecoCusto,
		PrecoVenda:       req.PrecoVenda,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	bumpCounter(s.db, oficinaID, "produtos", 1)
	return &product, nil
}

func (s *ProductService) Update(oficinaID, id uuid.UUID, req *dto.ProductRequest) (*models.Product, error) {
	product, err := s.Get(oficinaID, id)
	if err != nil {
		return nil, err
	}

	product.Nome = req.Nome
	product.Descricao = req.Descricao
	product.Quantidade = req.Quantidade
	product.QuantidadeMinima = req.QuantidadeMinima
	product.PrecoCusto = req.PrecoCusto
	product.PrecoVenda = req.PrecoVenda

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// AdjustStock applies a quantity delta without letting stock go negative.
func (s *ProductService) AdjustStock(oficinaID, id uuid.UUID, delta int) (*models.Product, error) {
	product, err := s.Get(oficinaID, id)
	if err != nil {
		return nil, err
	}

	next := product.Quantidade + delta
	if next < 0 {
		return nil, invalidf("stock cannot go below zero (current %d, delta %d)", product.Quantidade, delta)
	}
	product.Quantidade = next

	if err := s.db.Model(product).Update("quantidade", next).Error; err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(oficinaID, id uuid.UUID) error {
	result := s.db.Scopes(tenant.ForWorkshop(oficinaID)).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	bumpCounter(s.db, oficinaID, "produtos", -1)
	return nil
}
