package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var AppointmentStatuses = []string{"agendado", "em_andamento", "concluido", "cancelado"}

type Appointment struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OficinaID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"oficina_id"`
	ClienteID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"cliente_id"`
	VeiculoID       uuid.UUID      `gorm:"type:uuid;not null" json:"veiculo_id"`
	ServicoID       uuid.UUID      `gorm:"type:uuid;not null" json:"servico_id"`
	DataAgendamento time.Time      `gorm:"not null;index" json:"data_agendamento"`
	Status          string         `gorm:"size:20;not null;default:'agendado'" json:"status"`
	Observacoes     string         `gorm:"type:text" json:"observacoes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Cliente         Client         `gorm:"foreignKey:ClienteID" json:"-"`
	Veiculo         Vehicle        `gorm:"foreignKey:VeiculoID" json:"-"`
	Servico         ServiceItem    `gorm:"foreignKey:ServicoID" json:"-"`
}

func (Appointment) TableName() string { return "agendamentos" }
