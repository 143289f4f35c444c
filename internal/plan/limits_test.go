package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLimitNumericResources(t *testing.T) {
	planos := []string{"trial", "basico", "profissional", "business"}
	resources := []string{"clientes", "veiculos", "produtos", "servicos", "usuarios"}

	for _, plano := range planos {
		caps := Limits(plano)
		for _, resource := range resources {
			limit, ok := numericCap(caps, resource)
			require.True(t, ok)

			for _, n := range []int{0, limit - 1, limit, limit + 1} {
				if n < 0 {
					continue
				}
				res := CheckLimit(plano, resource, n)
				assert.Equal(t, n < limit, res.Allowed,
					"plano=%s resource=%s count=%d limit=%d", plano, resource, n, limit)
			}
		}
	}
}

func TestCheckLimitBooleanResources(t *testing.T) {
	for _, tc := range []struct {
		plano    string
		resource string
		want     bool
	}{
		{"basico", "layouts", false},
		{"profissional", "layouts", false},
		{"business", "layouts", true},
		{"basico", "multiFilial", false},
		{"business", "multiFilial", true},
		{"basico", "api", false},
		{"business", "api", true},
	} {
		res := CheckLimit(tc.plano, tc.resource, 0)
		assert.Equal(t, tc.want, res.Allowed, "%s/%s", tc.plano, tc.resource)
		if !tc.want {
			assert.Contains(t, res.Message, "Business")
		}
	}
}

func TestCheckLimitUnknownPlanFailsClosed(t *testing.T) {
	for _, plano := range []string{"", "premium", "enterprise", "basicoo"} {
		res := CheckLimit(plano, "clientes", 0)
		assert.False(t, res.Allowed, "plano=%q", plano)
		assert.Equal(t, "Plano inválido", res.Message)
	}
}

func TestCheckLimitAllowedCarriesUsage(t *testing.T) {
	res := CheckLimit("basico", "clientes", 40)
	require.True(t, res.Allowed)
	assert.Equal(t, 50, res.Limit)
	assert.Equal(t, 40, res.Current)
}

func TestCheckLimitDeniedMessage(t *testing.T) {
	res := CheckLimit("basico", "clientes", 50)
	require.False(t, res.Allowed)
	assert.Equal(t, 50, res.Limit)
	assert.Equal(t, 50, res.Current)
	assert.Contains(t, res.Message, "50")
	assert.Contains(t, res.Message, "clientes")
	assert.Contains(t, res.Message, "Básico")
}

func TestCheckLimitAccentedResourceNames(t *testing.T) {
	res := CheckLimit("basico", "veiculos", 100)
	require.False(t, res.Allowed)
	assert.Contains(t, res.Message, "veículos")
}

func TestNormalizeLegacyFree(t *testing.T) {
	for _, raw := range []string{"free", "Free", "FREE", " free "} {
		assert.Equal(t, "basico", Normalize(raw), "raw=%q", raw)
	}

	// A legacy free plan behaves exactly like basico for every consumer.
	for _, resource := range []string{"clientes", "veiculos", "produtos", "servicos"} {
		for _, n := range []int{0, 49, 50, 99, 100} {
			got := CheckLimit("Free", resource, n)
			want := CheckLimit("basico", resource, n)
			assert.Equal(t, want, got, fmt.Sprintf("resource=%s n=%d", resource, n))
		}
	}
}

func TestLimitsFallsBackToBasico(t *testing.T) {
	caps := Limits("does-not-exist")
	assert.Equal(t, "Básico", caps.Name)
	assert.Equal(t, 50, caps.Clientes)

	assert.False(t, Known("does-not-exist"))
	assert.True(t, Known("Free"))
	assert.True(t, Known("profissional"))
}
