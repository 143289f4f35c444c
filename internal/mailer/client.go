// Package mailer sends transactional email through the Resend HTTP API.
// Every send is at-most-once: failures are returned to the caller, which
// logs and moves on. There is no retry queue.
package mailer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

var ErrNotConfigured = errors.New("mailer: RESEND_API_KEY not configured")

type Client struct {
	apiKey     string
	from       string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, from string) *Client {
	return &Client{
		apiKey:     apiKey,
		from:       from,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake API.
func NewClientWithBaseURL(apiKey, from, baseURL string) *Client {
	c := NewClient(apiKey, from)
	c.baseURL = baseURL
	return c
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

func (c *Client) send(to, subject, html string) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/emails", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend status %d: %s", resp.StatusCode, respBody)
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode resend response: %w", err)
	}
	return nil
}

// SendWelcome greets a newly registered workshop.
func (c *Client) SendWelcome(email, nome string) error {
	html, err := renderWelcome(nome)
	if err != nil {
		return err
	}
	return c.send(email, "Bem-vindo ao Turbo Gestor! 🚗", html)
}

// SendTrialExpiring warns that the trial ends in diasRestantes days.
func (c *Client) SendTrialExpiring(email, nome string, diasRestantes int) error {
	html, err := renderTrialExpiring(nome, diasRestantes)
	if err != nil {
		return err
	}
	dias := "dias"
	if diasRestantes == 1 {
		dias = "dia"
	}
	subject := fmt.Sprintf("⏰ Seu teste expira em %d %s!", diasRestantes, dias)
	return c.send(email, subject, html)
}

// SendTrialExpired nudges an expired-trial workshop toward a paid plan.
func (c *Client) SendTrialExpired(email, nome string) error {
	html, err := renderTrialExpired(nome)
	if err != nil {
		return err
	}
	return c.send(email, "🚀 Continue sua jornada com Turbo Gestor!", html)
}

// SendPaymentConfirmation confirms a successful subscription payment.
func (c *Client) SendPaymentConfirmation(email, nome, plano, valor, dataPagamento, proximaCobranca string) error {
	html, err := renderPaymentConfirmation(nome, plano, valor, dataPagamento, proximaCobranca)
	if err != nil {
		return err
	}
	return c.send(email, "✅ Pagamento Confirmado - Turbo Gestor", html)
}
