package plan

import "fmt"

// Result is the outcome of a limit check. Limit and Current are also
// populated on allowed numeric checks so callers can render usage bars.
type Result struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Current int    `json:"current,omitempty"`
}

var resourceNames = map[string]string{
	"clientes": "clientes",
	"veiculos": "veículos",
	"produtos": "produtos",
	"servicos": "serviços",
	"usuarios": "usuários",
}

// CheckLimit decides whether a workshop on the given plan may add one more
// of the given resource. Unknown plans are denied outright. Boolean
// resources (layouts, multiFilial, api) ignore currentCount and mirror the
// plan flag.
func CheckLimit(plano, resource string, currentCount int) Result {
	key := Normalize(plano)
	caps, ok := catalog[key]
	if !ok {
		return Result{Allowed: false, Message: "Plano inválido"}
	}

	switch resource {
	case "layouts", "multiFilial", "api":
		allowed := boolCap(caps, resource)
		res := Result{Allowed: allowed}
		if !allowed {
			res.Message = "Este recurso está disponível apenas no plano Business"
		}
		return res
	}

	limit, ok := numericCap(caps, resource)
	if !ok {
		// Resource without a cap entry is not limited.
		return Result{Allowed: true}
	}

	if currentCount >= limit {
		return Result{
			Allowed: false,
			Message: fmt.Sprintf("Você atingiu o limite de %d %s do plano %s", limit, resourceName(resource), caps.Name),
			Limit:   limit,
			Current: currentCount,
		}
	}

	return Result{Allowed: true, Limit: limit, Current: currentCount}
}

func numericCap(caps Caps, resource string) (int, bool) {
	switch resource {
	case "clientes":
		return caps.Clientes, true
	case "veiculos":
		return caps.Veiculos, true
	case "produtos":
		return caps.Produtos, true
	case "servicos":
		return caps.Servicos, true
	case "usuarios":
		return caps.Usuarios, true
	}
	return 0, false
}

func boolCap(caps Caps, resource string) bool {
	switch resource {
	case "layouts":
		return caps.Layouts
	case "multiFilial":
		return caps.MultiFilial
	case "api":
		return caps.API
	}
	return false
}

func resourceName(resource string) string {
	if name, ok := resourceNames[resource]; ok {
		return name
	}
	return resource
}
