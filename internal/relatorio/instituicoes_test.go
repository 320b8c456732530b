package relatorio

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmelo/caixas-go/internal/clients/backend"
	"github.com/dmelo/caixas-go/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPorInstituicao(t *testing.T) {
	restante := dec("100")
	contas := []domain.Conta{
		{Instituicao: "Banco A", Valor: dec("500"), ValorRestante: &restante, Status: domain.StatusParcial},
		{Instituicao: "Banco A", Valor: dec("200"), Status: domain.StatusPago},
		{Instituicao: "Banco B", Valor: dec("300"), Status: domain.StatusPendente},
		{Valor: dec("50"), Status: domain.StatusPendente}, // no institution
	}

	resumos := PorInstituicao(contas)
	require.Len(t, resumos, 3)

	porNome := map[string]InstituicaoResumo{}
	for _, r := range resumos {
		porNome[r.Nome] = r
	}

	a := porNome["Banco A"]
	assert.True(t, a.TotalHistorico.Equal(dec("700")), "history includes paid contas")
	assert.True(t, a.TotalAPagar.Equal(dec("100")), "paid contas owe nothing, partial owes valorRestante")

	b := porNome["Banco B"]
	assert.True(t, b.TotalAPagar.Equal(dec("300")), "no valorRestante means full value outstanding")

	outros := porNome["Outros"]
	assert.True(t, outros.TotalAPagar.Equal(dec("50")))

	// Sorted by outstanding descending
	assert.Equal(t, "Banco B", resumos[0].Nome)
}

func TestPercentual(t *testing.T) {
	bucket := backend.CategoriaBucket{Categoria: "Fixo", Total: dec("250")}

	assert.True(t, Percentual(bucket, dec("1000")).Equal(dec("25")))
	assert.True(t, Percentual(bucket, decimal.Zero).IsZero(), "zero total never divides")
}

func TestTotalBuckets(t *testing.T) {
	total := TotalBuckets([]backend.CategoriaBucket{
		{Categoria: "Fixo", Total: dec("250")},
		{Categoria: "Lazer", Total: dec("120.50")},
	})
	assert.True(t, total.Equal(dec("370.50")))
}
