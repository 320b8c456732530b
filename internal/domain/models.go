package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NomePrincipal is the reserved name of the primary cash box. Exactly
// one box carries it; creation with this name (any casing) is rejected
// client-side.
const NomePrincipal = "Principal"

// Conta status labels as the backend stores them.
const (
	StatusPendente = "pendente"
	StatusParcial  = "parcial"
	StatusPago     = "pago"
)

// Movement kinds. Saida amounts are stored as negative magnitudes.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// CategoriaPadrao is the default category for new movements.
const CategoriaPadrao = "Geral"

// Categorias is the fixed category list offered when recording a
// movement. The labels are opaque to this client; reports render them
// as the server groups them.
var Categorias = []string{
	"Outros",
	"Fixo",
	"Luxo",
	"Dízimo",
	"Lazer",
	"Educação",
	"Investimento",
	"Reserva",
	"Metas",
	"Entrada",
	"Empréstimos",
	"Inicio",
}

// Caixa is a cash box with its own balance. The balance is
// authoritative only on the backend; this client never mutates it,
// only re-fetches it after operations that should affect it.
type Caixa struct {
	ID    string          `json:"_id"`
	Nome  string          `json:"nome"`
	Saldo decimal.Decimal `json:"saldo"`
}

// IsPrincipal reports whether this is the reserved primary box.
func (c Caixa) IsPrincipal() bool {
	return strings.EqualFold(strings.TrimSpace(c.Nome), NomePrincipal)
}

// Conta is a scheduled payable with a due date and outstanding balance.
type Conta struct {
	ID             string           `json:"_id"`
	Instituicao    string           `json:"instituicao"`
	Descricao      string           `json:"descricao"`
	Observacao     string           `json:"observacao,omitempty"`
	Valor          decimal.Decimal  `json:"valor"`
	ValorRestante  *decimal.Decimal `json:"valorRestante,omitempty"`
	DataVencimento time.Time        `json:"dataVencimento"`
	Status         string           `json:"status"`
}

// Paga reports whether the payable is terminal. No further allocation
// is permitted once paid.
func (c Conta) Paga() bool {
	return c.Status == StatusPago
}

// Restante returns the outstanding balance: valorRestante when the
// backend sent it, the full value otherwise, zero when already paid.
func (c Conta) Restante() decimal.Decimal {
	if c.Paga() {
		return decimal.Zero
	}
	if c.ValorRestante != nil {
		return *c.ValorRestante
	}
	return c.Valor
}

// Vencida derives the overdue display state by comparing the due date
// against now. Overdue is never a stored status; a paid conta is never
// overdue.
func (c Conta) Vencida(now time.Time) bool {
	if c.Paga() {
		return false
	}
	due := c.DataVencimento.UTC()
	due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	today := now.UTC()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}

// ValorExibicao is the amount shown for this conta: the full value once
// paid, the outstanding balance otherwise.
func (c Conta) ValorExibicao() decimal.Decimal {
	if c.Paga() {
		return c.Valor
	}
	if c.ValorRestante != nil {
		return *c.ValorRestante
	}
	return c.Valor
}

// Movimentacao is a single ledger entry (inflow or outflow) against a
// caixa, as the backend returns it in statements.
type Movimentacao struct {
	ID        string          `json:"_id"`
	CaixaID   string          `json:"caixaId"`
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
	Tipo      string          `json:"tipo"`
	Categoria string          `json:"categoria,omitempty"`
	Data      time.Time       `json:"data"`
}

// Adicional is a free-form extra annotation with an optional amount.
type Adicional struct {
	ID        string           `json:"_id"`
	Descricao string           `json:"descricao"`
	Valor     *decimal.Decimal `json:"valor,omitempty"`
}
