package models

import (
	"time"

	"github.com/google/uuid"
)

// Workshop is the tenant record (one row per oficina). Its ID matches the
// owning user's ID, so the JWT subject doubles as the tenant key.
//
// TrialEndsAt and StripeSubscriptionID together encode the account
// standing: a non-null subscription means paid regardless of the trial
// timestamp, and both null means an open-ended trial. The timestamp is not
// cleared when a mid-trial upgrade happens.
type Workshop struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome     string    `gorm:"size:255;not null" json:"nome"`
	Email    string    `gorm:"size:255;not null;index" json:"email"`
	Telefone string    `gorm:"size:30" json:"telefone"`

	Plano                string     `gorm:"size:20;not null;default:'basico'" json:"plano"`
	TrialEndsAt          *time.Time `json:"trial_ends_at"`
	StripeCustomerID     *string    `gorm:"size:255;index" json:"-"`
	StripeSubscriptionID *string    `gorm:"size:255;index" json:"-"`

	// Cosmetic, gated by the layouts plan flag.
	Layout string `gorm:"size:30;default:'padrao'" json:"layout"`

	// Denormalized usage counters. Advisory only: nothing ties them
	// transactionally to the child tables, so they may drift under
	// concurrent writes.
	TotalClientes int `gorm:"default:0" json:"total_clientes"`
	TotalVeiculos int `gorm:"default:0" json:"total_veiculos"`
	TotalProdutos int `gorm:"default:0" json:"total_produtos"`
	TotalServicos int `gorm:"default:0" json:"total_servicos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Workshop) TableName() string { return "oficinas" }
