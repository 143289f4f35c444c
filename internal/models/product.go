package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OficinaID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"oficina_id"`
	Nome             string         `gorm:"size:255;not null" json:"nome"`
	Descricao        string         `gorm:"type:text" json:"descricao"`
	Quantidade       int            `gorm:"default:0" json:"quantidade"`
	QuantidadeMinima int            `gorm:"default:0" json:"quantidade_minima"`
	PrecoCusto       float64        `gorm:"default:0" json:"preco_custo"`
	PrecoVenda       float64        `gorm:"default:0" json:"preco_venda"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "produtos" }
