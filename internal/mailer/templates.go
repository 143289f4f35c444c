package mailer

import (
	"bytes"
	"html/template"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h1 style="color:#f97316">Bem-vindo ao Turbo Gestor, {{.Nome}}!</h1>
  <p>Sua conta foi criada e seu período de teste grátis de 7 dias já começou.</p>
  <p>Com o Turbo Gestor você gerencia clientes, veículos, agendamentos,
  estoque e faturas da sua oficina em um só lugar.</p>
  <p>Bom trabalho!</p>
</div>`))

var trialExpiringTmpl = template.Must(template.New("trial_expiring").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h1 style="color:#f97316">Olá, {{.Nome}}!</h1>
  <p>Seu período de teste do Turbo Gestor expira em
  <strong>{{.DiasRestantes}} {{if eq .DiasRestantes 1}}dia{{else}}dias{{end}}</strong>.</p>
  <p>Assine um plano para continuar gerenciando sua oficina sem interrupções.
  Todos os seus dados estão salvos e continuarão disponíveis.</p>
</div>`))

var trialExpiredTmpl = template.Must(template.New("trial_expired").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h1 style="color:#f97316">Olá, {{.Nome}}!</h1>
  <p>Seu período de teste do Turbo Gestor terminou.</p>
  <p>Seus clientes, veículos e serviços cadastrados estão seguros. Assine um
  plano e tenha acesso imediato a tudo novamente.</p>
</div>`))

var paymentConfirmationTmpl = template.Must(template.New("payment_confirmation").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
  <h1 style="color:#16a34a">Pagamento confirmado!</h1>
  <p>Olá, {{.Nome}}. Recebemos o pagamento da sua assinatura.</p>
  <table style="width:100%;border-collapse:collapse">
    <tr><td style="padding:4px 0">Plano</td><td><strong>{{.Plano}}</strong></td></tr>
    <tr><td style="padding:4px 0">Valor</td><td>{{.Valor}}</td></tr>
    <tr><td style="padding:4px 0">Data do pagamento</td><td>{{.DataPagamento}}</td></tr>
    <tr><td style="padding:4px 0">Próxima cobrança</td><td>{{.ProximaCobranca}}</td></tr>
  </table>
</div>`))

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderWelcome(nome string) (string, error) {
	return render(welcomeTmpl, struct{ Nome string }{nome})
}

func renderTrialExpiring(nome string, diasRestantes int) (string, error) {
	return render(trialExpiringTmpl, struct {
		Nome          string
		DiasRestantes int
	}{nome, diasRestantes})
}

func renderTrialExpired(nome string) (string, error) {
	return render(trialExpiredTmpl, struct{ Nome string }{nome})
}

func renderPaymentConfirmation(nome, plano, valor, dataPagamento, proximaCobranca string) (string, error) {
	return render(paymentConfirmationTmpl, struct {
		Nome, Plano, Valor, DataPagamento, ProximaCobranca string
	}{nome, plano, valor, dataPagamento, proximaCobranca})
}
