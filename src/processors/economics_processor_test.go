package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHeuristicsWhenNoEconomicsColumns(t *testing.T) {
	resolver := NewEconomicsResolver()

	tests := []struct {
		name       string
		pkg        string
		sale       float64
		wantCost   float64
		wantProfit float64
	}{
		{"credit 500 flat margin", "Crédito 500", 500, 410, 90},
		{"1024mb flat margin", "Pacote 1024MB", 50, 44, 6},
		{"5gb flat margin", "Plano 5GB Mensal", 100, 80, 20},
		{"fallback 15 percent", "Geral", 100, 85, 15},
		{"credit 500 beats 5gb in priority order", "Crédito 500 + 5GB", 500, 410, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, profit := resolver.Resolve(tt.pkg, tt.sale, 0, 0, false)
			assert.InDelta(t, tt.wantCost, cost, 1e-9)
			assert.InDelta(t, tt.wantProfit, profit, 1e-9)
		})
	}
}

func TestResolveAlgebraicWhenEconomicsColumnsExist(t *testing.T) {
	resolver := NewEconomicsResolver()

	t.Run("profit present, cost blank", func(t *testing.T) {
		cost, profit := resolver.Resolve("Geral", 100, 0, 30, true)
		assert.InDelta(t, 70, cost, 1e-9)
		assert.InDelta(t, 30, profit, 1e-9)
	})

	t.Run("cost present, profit blank", func(t *testing.T) {
		cost, profit := resolver.Resolve("Geral", 100, 60, 0, true)
		assert.InDelta(t, 60, cost, 1e-9)
		assert.InDelta(t, 40, profit, 1e-9)
	})

	t.Run("both present are trusted even when inconsistent", func(t *testing.T) {
		cost, profit := resolver.Resolve("Geral", 100, 50, 80, true)
		assert.InDelta(t, 50, cost, 1e-9)
		assert.InDelta(t, 80, profit, 1e-9)
	})

	t.Run("both blank stay zero", func(t *testing.T) {
		cost, profit := resolver.Resolve("5GB", 100, 0, 0, true)
		assert.Zero(t, cost)
		assert.Zero(t, profit)
	})

	t.Run("cost may exceed sale leaving negative profit", func(t *testing.T) {
		cost, profit := resolver.Resolve("Geral", 100, 120, 0, true)
		assert.InDelta(t, 120, cost, 1e-9)
		assert.InDelta(t, -20, profit, 1e-9)
	})

	t.Run("heuristics never apply when the schema has the columns", func(t *testing.T) {
		cost, profit := resolver.Resolve("Crédito 500", 500, 400, 100, true)
		assert.InDelta(t, 400, cost, 1e-9)
		assert.InDelta(t, 100, profit, 1e-9)
	})
}

func TestResolveRoundsToTwoDecimals(t *testing.T) {
	resolver := NewEconomicsResolver()
	cost, profit := resolver.Resolve("Geral", 99.99, 0, 0, false)
	assert.InDelta(t, 15.0, profit, 1e-9)  // 99.99 * 0.15 = 14.9985
	assert.InDelta(t, 84.99, cost, 1e-9)   // 99.99 - 14.9985 = 84.9915
}
