// Package pagamento implements the multi-box payment allocator: the
// user spreads a payable's outstanding balance over a subset of cash
// boxes and the whole allocation is committed as one transaction. The
// backend applies every line or none; the client never attempts
// per-box rollback.
package pagamento

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dmelo/caixas-go/internal/clients/backend"
	"github.com/dmelo/caixas-go/internal/domain"
	"github.com/dmelo/caixas-go/pkg/money"
)

// Tolerancia absorbs rounding drift when comparing the allocated sum
// against the outstanding balance.
var Tolerancia = decimal.RequireFromString("0.05")

// Pagador submits the single payment transaction.
type Pagador interface {
	PagarConta(ctx context.Context, contaID string, req backend.PagamentoRequest) error
}

// Linha is one validated allocation line.
type Linha struct {
	CaixaID string
	Valor   decimal.Decimal
}

// Allocator stages a payment for one payable. A box is "selected" when
// its id is present in valores; the value is the raw text the user
// typed, parsed only on recompute and submit.
type Allocator struct {
	conta   domain.Conta
	caixas  []domain.Caixa
	valores map[string]string
	log     zerolog.Logger
}

// NewAllocator stages a payment against conta, offering caixas as the
// candidate sources.
func NewAllocator(conta domain.Conta, caixas []domain.Caixa, log zerolog.Logger) *Allocator {
	return &Allocator{
		conta:   conta,
		caixas:  caixas,
		valores: make(map[string]string),
		log:     log.With().Str("component", "pagamento").Str("conta", conta.ID).Logger(),
	}
}

// Conta returns the payable being paid.
func (a *Allocator) Conta() domain.Conta {
	return a.conta
}

// Caixas returns the candidate boxes.
func (a *Allocator) Caixas() []domain.Caixa {
	return a.caixas
}

// Restante is the payable's outstanding balance (full value when the
// backend never sent valorRestante).
func (a *Allocator) Restante() decimal.Decimal {
	if a.conta.ValorRestante != nil {
		return *a.conta.ValorRestante
	}
	return a.conta.Valor
}

// ToggleCaixa selects an unselected box (with an empty amount) or
// deselects a selected one, discarding whatever amount was typed.
func (a *Allocator) ToggleCaixa(caixaID string) {
	if _, selected := a.valores[caixaID]; selected {
		delete(a.valores, caixaID)
		return
	}
	a.valores[caixaID] = ""
}

// Selecionado reports whether the box is part of this allocation.
func (a *Allocator) Selecionado(caixaID string) bool {
	_, ok := a.valores[caixaID]
	return ok
}

// Valor returns the raw amount text entered for a box.
func (a *Allocator) Valor(caixaID string) string {
	return a.valores[caixaID]
}

// SetValor stores sanitized amount text for an already-selected box.
// Unselected boxes are ignored; selection and amount entry share the
// toggle.
func (a *Allocator) SetValor(caixaID, text string) {
	if _, selected := a.valores[caixaID]; !selected {
		return
	}
	a.valores[caixaID] = money.Sanitize(text)
}

// TotalAlocado recomputes the sum of every entered amount. Unparseable
// and empty entries count as zero. Pure; derived from the mapping on
// every call.
func (a *Allocator) TotalAlocado() decimal.Decimal {
	total := decimal.Zero
	for _, raw := range a.valores {
		total = total.Add(money.ParseOrZero(raw))
	}
	return total
}

// Linhas builds the candidate line items: entries whose amount parses
// to a value strictly greater than zero.
func (a *Allocator) Linhas() []Linha {
	var linhas []Linha
	for caixaID, raw := range a.valores {
		valor, ok := money.ParseLocale(raw)
		if !ok || !valor.IsPositive() {
			continue
		}
		linhas = append(linhas, Linha{CaixaID: caixaID, Valor: valor})
	}
	return linhas
}

// Submit validates the staged allocation and commits it as exactly one
// request. Validation failures never reach the network; backend errors
// leave the staged state untouched so the user can correct and retry.
func (a *Allocator) Submit(ctx context.Context, pagador Pagador, now time.Time) error {
	restante := a.Restante()
	if a.conta.Paga() || !restante.IsPositive() {
		return &ValidationError{Reason: ReasonAlreadyPaid}
	}

	linhas := a.Linhas()
	if len(linhas) == 0 {
		return &ValidationError{Reason: ReasonEmpty}
	}

	soma := decimal.Zero
	for _, l := range linhas {
		soma = soma.Add(l.Valor)
	}
	if soma.GreaterThan(restante.Add(Tolerancia)) {
		return &ValidationError{Reason: ReasonOverAllocated, Soma: soma, Restante: restante}
	}

	req := backend.PagamentoRequest{
		Pagamentos:    make([]backend.PagamentoLinha, 0, len(linhas)),
		DataPagamento: now,
	}
	for _, l := range linhas {
		req.Pagamentos = append(req.Pagamentos, backend.PagamentoLinha{
			CaixaID: l.CaixaID,
			Valor:   l.Valor.InexactFloat64(),
		})
	}

	if err := pagador.PagarConta(ctx, a.conta.ID, req); err != nil {
		a.log.Warn().Err(err).Msg("Pagamento recusado pelo servidor")
		return err
	}

	a.log.Info().
		Int("caixas", len(linhas)).
		Str("soma", soma.String()).
		Msg("Pagamento registrado")
	return nil
}
