package mailer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeResend(t *testing.T, status int) (*httptest.Server, *[]sendRequest) {
	t.Helper()
	var got []sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))

		var req sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		got = append(got, req)

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(sendResponse{ID: "email_123"})
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestSendWelcome(t *testing.T) {
	srv, got := newFakeResend(t, http.StatusOK)
	c := NewClientWithBaseURL("re_test_key", "Turbo Gestor <noreply@turbogestor.com>", srv.URL)

	require.NoError(t, c.SendWelcome("dono@oficina.com", "Carlos"))

	require.Len(t, *got, 1)
	req := (*got)[0]
	assert.Equal(t, []string{"dono@oficina.com"}, req.To)
	assert.Contains(t, req.Subject, "Bem-vindo")
	assert.Contains(t, req.HTML, "Carlos")
}

func TestSendTrialExpiringSingularPlural(t *testing.T) {
	srv, got := newFakeResend(t, http.StatusOK)
	c := NewClientWithBaseURL("re_test_key", "Turbo Gestor <noreply@turbogestor.com>", srv.URL)

	require.NoError(t, c.SendTrialExpiring("dono@oficina.com", "Carlos", 3))
	require.NoError(t, c.SendTrialExpiring("dono@oficina.com", "Carlos", 1))

	require.Len(t, *got, 2)
	assert.Contains(t, (*got)[0].Subject, "3 dias")
	assert.Contains(t, (*got)[1].Subject, "1 dia")
	assert.NotContains(t, (*got)[1].Subject, "1 dias")
}

func TestSendPaymentConfirmationBody(t *testing.T) {
	srv, got := newFakeResend(t, http.StatusOK)
	c := NewClientWithBaseURL("re_test_key", "Turbo Gestor <pagamentos@turbogestor.com>", srv.URL)

	require.NoError(t, c.SendPaymentConfirmation(
		"dono@oficina.com", "Carlos", "Profissional", "R$ 197,00", "30/08/2026", "29/09/2026"))

	require.Len(t, *got, 1)
	html := (*got)[0].HTML
	assert.Contains(t, html, "Profissional")
	assert.Contains(t, html, "R$ 197,00")
	assert.Contains(t, html, "29/09/2026")
}

func TestSendErrorStatus(t *testing.T) {
	srv, _ := newFakeResend(t, http.StatusUnprocessableEntity)
	c := NewClientWithBaseURL("re_test_key", "Turbo Gestor <noreply@turbogestor.com>", srv.URL)

	err := c.SendTrialExpired("dono@oficina.com", "Carlos")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSendWithoutAPIKey(t *testing.T) {
	c := NewClient("", "Turbo Gestor <noreply@turbogestor.com>")
	err := c.SendWelcome("dono@oficina.com", "Carlos")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
