package dto

type CheckoutRequest struct {
	Plano string `json:"plano"`
}

type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type WelcomeEmailRequest struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
}

type TrialExpiringEmailRequest struct {
	Email         string `json:"email"`
	Nome          string `json:"nome"`
	DiasRestantes int    `json:"diasRestantes"`
}

type TrialExpiredEmailRequest struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
}

type PaymentConfirmationEmailRequest struct {
	Email           string `json:"email"`
	Nome            string `json:"nome"`
	Plano           string `json:"plano"`
	Valor           string `json:"valor"`
	DataPagamento   string `json:"dataPagamento"`
	ProximaCobranca string `json:"proximaCobranca"`
}
