// Package relatorio holds the read-only report views: payables grouped
// by institution (computed client-side) and the server-computed
// category report, whose buckets are opaque labels.
package relatorio

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dmelo/caixas-go/internal/clients/backend"
	"github.com/dmelo/caixas-go/internal/domain"
)

// InstituicaoResumo aggregates one institution's payables.
type InstituicaoResumo struct {
	Nome           string
	TotalHistorico decimal.Decimal // sum of full values, paid or not
	TotalAPagar    decimal.Decimal // sum of outstanding balances
}

// PorInstituicao groups payables by institution, sorted by outstanding
// total descending. Payables without an institution fall under
// "Outros".
func PorInstituicao(contas []domain.Conta) []InstituicaoResumo {
	grupos := make(map[string]*InstituicaoResumo)

	for _, conta := range contas {
		nome := conta.Instituicao
		if nome == "" {
			nome = "Outros"
		}

		grupo, ok := grupos[nome]
		if !ok {
			grupo = &InstituicaoResumo{Nome: nome}
			grupos[nome] = grupo
		}

		grupo.TotalHistorico = grupo.TotalHistorico.Add(conta.Valor)
		grupo.TotalAPagar = grupo.TotalAPagar.Add(conta.Restante())
	}

	resumos := make([]InstituicaoResumo, 0, len(grupos))
	for _, g := range grupos {
		resumos = append(resumos, *g)
	}
	sort.SliceStable(resumos, func(i, j int) bool {
		return resumos[i].TotalAPagar.GreaterThan(resumos[j].TotalAPagar)
	})
	return resumos
}

// Percentual returns the bucket's share of the given total, as a
// percentage rounded to two decimals. Zero when the total is zero.
func Percentual(bucket backend.CategoriaBucket, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return bucket.Total.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
}

// TotalBuckets sums a bucket list.
func TotalBuckets(buckets []backend.CategoriaBucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Total)
	}
	return total
}
