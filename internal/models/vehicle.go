package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OficinaID uuid.UUID      `gorm:"type:uuid;not null;index" json:"oficina_id"`
	ClienteID uuid.UUID      `gorm:"type:uuid;not null;index" json:"cliente_id"`
	Placa     string         `gorm:"size:10;not null;index" json:"placa"`
	Marca     string         `gorm:"size:100" json:"marca"`
	Modelo    string         `gorm:"size:100" json:"modelo"`
	Ano       int            `json:"ano"`
	Cor       string         `gorm:"size:50" json:"cor"`
	KM        int            `json:"km"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Cliente   Client         `gorm:"foreignKey:ClienteID" json:"-"`
}

func (Vehicle) TableName() string { return "veiculos" }
