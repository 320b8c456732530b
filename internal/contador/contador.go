// Package contador is the physical cash-count reconciliation tool:
// note quantities plus a coin total plus an online amount, compared
// against the system balance. Plain summation; the draft persists
// locally between sessions.
package contador

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmelo/caixas-go/internal/storage"
	"github.com/dmelo/caixas-go/pkg/money"
)

// Cedulas are the note denominations counted, largest first.
var Cedulas = []int{200, 100, 50, 20, 10, 5, 2}

// Contagem is a cash-count draft. Quantities and totals are kept as
// the raw text the user typed, like the rest of the app's forms.
type Contagem struct {
	Quantidades map[string]string `json:"quantidades"`
	TotalMoedas string            `json:"totalMoedas"`
	ValorOnline string            `json:"valorOnline"`
}

// NewContagem creates an empty draft.
func NewContagem() *Contagem {
	q := make(map[string]string, len(Cedulas))
	for _, c := range Cedulas {
		q[strconv.Itoa(c)] = ""
	}
	return &Contagem{Quantidades: q}
}

// SetQuantidade stores a digit-only note count for a denomination.
func (c *Contagem) SetQuantidade(cedula int, text string) {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	c.Quantidades[strconv.Itoa(cedula)] = b.String()
}

// SetTotalMoedas stores the coin total text.
func (c *Contagem) SetTotalMoedas(text string) {
	c.TotalMoedas = money.Sanitize(text)
}

// SetValorOnline stores the online-account amount text.
func (c *Contagem) SetValorOnline(text string) {
	c.ValorOnline = money.Sanitize(text)
}

// TotalFisico sums notes and coins. Missing or unparseable inputs
// count as zero.
func (c *Contagem) TotalFisico() decimal.Decimal {
	total := decimal.Zero
	for _, cedula := range Cedulas {
		qtd, err := strconv.Atoi(c.Quantidades[strconv.Itoa(cedula)])
		if err != nil {
			continue
		}
		total = total.Add(decimal.NewFromInt(int64(qtd * cedula)))
	}
	return total.Add(money.ParseOrZero(c.TotalMoedas))
}

// TotalOnline is the online-account amount.
func (c *Contagem) TotalOnline() decimal.Decimal {
	return money.ParseOrZero(c.ValorOnline)
}

// TotalApurado is everything counted: physical plus online.
func (c *Contagem) TotalApurado() decimal.Decimal {
	return c.TotalFisico().Add(c.TotalOnline())
}

// Diferenca is counted minus the system balance: negative means money
// is missing, positive means surplus.
func (c *Contagem) Diferenca(saldoSistema decimal.Decimal) decimal.Decimal {
	return c.TotalApurado().Sub(saldoSistema)
}

// Save persists the draft.
func Save(s storage.Store, c *Contagem) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal contagem: %w", err)
	}
	return s.Set(storage.KeyContadorDraft, data)
}

// Load returns the persisted draft, or a fresh one when none exists.
func Load(s storage.Store) (*Contagem, error) {
	data, found, err := s.Get(storage.KeyContadorDraft)
	if err != nil {
		return nil, err
	}
	if !found {
		return NewContagem(), nil
	}

	c := NewContagem()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse contagem: %w", err)
	}
	if c.Quantidades == nil {
		c.Quantidades = NewContagem().Quantidades
	}
	return c, nil
}
