package dto

import "time"

type DashboardAppointment struct {
	ID              string    `json:"id"`
	DataAgendamento time.Time `json:"data_agendamento"`
	ClienteNome     string    `json:"cliente_nome"`
	ServicoNome     string    `json:"servico_nome"`
	Status          string    `json:"status"`
}

type DashboardLowStockProduct struct {
	ID               string `json:"id"`
	Nome             string `json:"nome"`
	Quantidade       int    `json:"quantidade"`
	QuantidadeMinima int    `json:"quantidade_minima"`
}

type DashboardResponse struct {
	ReceitaMes        float64                    `json:"receita_mes"`
	Despesas          float64                    `json:"despesas"`
	MargemLucro       float64                    `json:"margem_lucro"`
	MargemPorcentagem float64                    `json:"margem_porcentagem"`
	FaturasPendentes  int64                      `json:"faturas_pendentes"`
	AgendamentosHoje  []DashboardAppointment     `json:"agendamentos_hoje"`
	EstoqueBaixo      []DashboardLowStockProduct `json:"estoque_baixo"`
	Usage             []ResourceUsage            `json:"usage"`
}
