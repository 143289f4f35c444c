package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var InvoiceStatuses = []string{"pendente", "paga", "cancelada"}

type Invoice struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OficinaID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"oficina_id"`
	Numero         string         `gorm:"size:50;not null;index" json:"numero"`
	ClienteID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"cliente_id"`
	VeiculoID      *uuid.UUID     `gorm:"type:uuid" json:"veiculo_id"`
	ValorTotal     float64        `gorm:"not null;default:0" json:"valor_total"`
	ValorDesconto  float64        `gorm:"default:0" json:"valor_desconto"`
	Status         string         `gorm:"size:20;not null;default:'pendente';index" json:"status"`
	DataVencimento *time.Time     `json:"data_vencimento"`
	FormaPagamento string         `gorm:"size:50" json:"forma_pagamento"`
	Observacoes    string         `gorm:"type:text" json:"observacoes"`
	Itens          datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"itens"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Cliente        Client         `gorm:"foreignKey:ClienteID" json:"-"`
}

func (Invoice) TableName() string { return "faturas" }
