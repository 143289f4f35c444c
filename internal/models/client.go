package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OficinaID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"oficina_id"`
	Nome        string         `gorm:"size:255;not null" json:"nome"`
	Email       string         `gorm:"size:255" json:"email"`
	Telefone    string         `gorm:"size:30" json:"telefone"`
	CPF         string         `gorm:"size:14" json:"cpf"`
	Endereco    string         `gorm:"type:text" json:"endereco"`
	Observacoes string         `gorm:"type:text" json:"observacoes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string { return "clientes" }
