package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ClientRequest struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	CPF         string `json:"cpf"`
	Endereco    string `json:"endereco"`
	Observacoes string `json:"observacoes"`
}

type VehicleRequest struct {
	ClienteID uuid.UUID `json:"cliente_id"`
	Placa     string    `json:"placa"`
	Marca     string    `json:"marca"`
	Modelo    string    `json:"modelo"`
	Ano       int       `json:"ano"`
	Cor       string    `json:"cor"`
	KM        int       `json:"km"`
}

type ServiceItemRequest struct {
	Nome            string  `json:"nome"`
	Descricao       string  `json:"descricao"`
	Preco           float64 `json:"preco"`
	DuracaoEstimada int     `json:"duracao_estimada"`
}

type ProductRequest struct {
	Nome             string  `json:"nome"`
	Descricao        string  `json:"descricao"`
	Quantidade       int     `json:"quantidade"`
	QuantidadeMinima int     `json:"quantidade_minima"`
	PrecoCusto       float64 `json:"preco_custo"`
	PrecoVenda       float64 `json:"preco_venda"`
}

type AppointmentRequest struct {
	ClienteID       uuid.UUID `json:"cliente_id"`
	VeiculoID       uuid.UUID `json:"veiculo_id"`
	ServicoID       uuid.UUID `json:"servico_id"`
	DataAgendamento time.Time `json:"data_agendamento"`
	Status          string    `json:"status"`
	Observacoes     string    `json:"observacoes"`
}

type InvoiceRequest struct {
	Numero         string         `json:"numero"`
	ClienteID      uuid.UUID      `json:"cliente_id"`
	VeiculoID      *uuid.UUID     `json:"veiculo_id"`
	ValorTotal     float64        `json:"valor_total"`
	ValorDesconto  float64        `json:"valor_desconto"`
	Status         string         `json:"status"`
	DataVencimento *time.Time     `json:"data_vencimento"`
	FormaPagamento string         `json:"forma_pagamento"`
	Observacoes    string         `json:"observacoes"`
	Itens          datatypes.JSON `json:"itens"`
}

// ListResponse is the shared paginated envelope for resource listings.
type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
