package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceItem is a catalog entry for a service the workshop offers
// (oil change, alignment, ...), referenced by appointments.
type ServiceItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OficinaID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"oficina_id"`
	Nome            string         `gorm:"size:255;not null" json:"nome"`
	Descricao       string         `gorm:"type:text" json:"descricao"`
	Preco           float64        `gorm:"not null;default:0" json:"preco"`
	DuracaoEstimada int            `gorm:"default:60" json:"duracao_estimada"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ServiceItem) TableName() string { return "servicos" }
