package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestContaRestante(t *testing.T) {
	restante := dec("300")

	tests := []struct {
		name     string
		conta    Conta
		expected string
	}{
		{"uses valorRestante when present", Conta{Valor: dec("500"), ValorRestante: &restante, Status: StatusParcial}, "300"},
		{"falls back to full value", Conta{Valor: dec("500"), Status: StatusPendente}, "500"},
		{"zero when paid", Conta{Valor: dec("500"), Status: StatusPago}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.conta.Restante().Equal(dec(tt.expected)),
				"got %s", tt.conta.Restante())
		})
	}
}

func TestContaValorExibicao(t *testing.T) {
	restante := dec("120")

	paga := Conta{Valor: dec("500"), ValorRestante: &restante, Status: StatusPago}
	assert.True(t, paga.ValorExibicao().Equal(dec("500")), "paid conta shows total")

	parcial := Conta{Valor: dec("500"), ValorRestante: &restante, Status: StatusParcial}
	assert.True(t, parcial.ValorExibicao().Equal(dec("120")))
}

func TestContaVencida(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		due     time.Time
		status  string
		vencida bool
	}{
		{"past due", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), StatusPendente, true},
		{"due today", time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC), StatusPendente, false},
		{"future", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), StatusPendente, false},
		{"paid is never overdue", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), StatusPago, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Conta{Valor: dec("100"), DataVencimento: tt.due, Status: tt.status}
			assert.Equal(t, tt.vencida, c.Vencida(now))
		})
	}
}

func TestCaixaIsPrincipal(t *testing.T) {
	assert.True(t, Caixa{Nome: "Principal"}.IsPrincipal())
	assert.True(t, Caixa{Nome: "  PRINCIPAL "}.IsPrincipal())
	assert.False(t, Caixa{Nome: "Reserva"}.IsPrincipal())
}
