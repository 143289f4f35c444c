// Package plan holds the static plan catalog, the limit evaluator and the
// trial state resolver. Everything here is pure: no database, no clock
// reads, no I/O.
package plan

import "strings"

// Caps is one immutable catalog entry: numeric resource caps plus feature
// flags for a plan tier.
type Caps struct {
	Name        string
	Clientes    int
	Veiculos    int
	Usuarios    int
	Produtos    int
	Servicos    int
	Layouts     bool
	MultiFilial bool
	API         bool
}

// unlimited is the sentinel cap for resources without a real ceiling.
const unlimited = 999999

// catalog is fixed at compile time; caps only change with a deploy.
var catalog = map[string]Caps{
	"trial": {
		Name:     "Teste Grátis",
		Clientes: unlimited,
		Veiculos: unlimited,
		Usuarios: 3,
		Produtos: unlimited,
		Servicos: unlimited,
	},
	"basico": {
		Name:     "Básico",
		Clientes: 50,
		Veiculos: 100,
		Usuarios: 1,
		Produtos: 100,
		Servicos: 50,
	},
	"profissional": {
		Name:     "Profissional",
		Clientes: unlimited,
		Veiculos: unlimited,
		Usuarios: 3,
		Produtos: unlimited,
		Servicos: unlimited,
	},
	"business": {
		Name:        "Business",
		Clientes:    unlimited,
		Veiculos:    unlimited,
		Usuarios:    unlimited,
		Produtos:    unlimited,
		Servicos:    unlimited,
		Layouts:     true,
		MultiFilial: true,
		API:         true,
	},
}

// Normalize lowercases a stored plan key and maps the legacy "free" value
// to basico. Consumers must normalize before comparing plan strings.
func Normalize(plano string) string {
	p := strings.ToLower(strings.TrimSpace(plano))
	if p == "free" {
		return "basico"
	}
	return p
}

// Limits returns the caps for a plan, falling back to basico for unknown
// keys. The fallback is the safest default for display purposes; the limit
// evaluator itself fails closed instead.
func Limits(plano string) Caps {
	if caps, ok := catalog[Normalize(plano)]; ok {
		return caps
	}
	return catalog["basico"]
}

// Known reports whether the plan key exists in the catalog after
// normalization.
func Known(plano string) bool {
	_, ok := catalog[Normalize(plano)]
	return ok
}
