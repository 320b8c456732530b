package pagamento

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmelo/caixas-go/pkg/money"
)

// Validation reasons. These block submission locally; no request is
// made.
const (
	ReasonEmpty         = "empty"
	ReasonOverAllocated = "overAllocated"
	ReasonAlreadyPaid   = "alreadyPaid"
)

// ValidationError is a local allocation failure.
type ValidationError struct {
	Reason   string
	Soma     decimal.Decimal
	Restante decimal.Decimal
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "selecione pelo menos um caixa e informe um valor"
	case ReasonOverAllocated:
		return fmt.Sprintf("a soma (%s) ultrapassa o valor restante da conta (%s)",
			money.Format(e.Soma), money.Format(e.Restante))
	case ReasonAlreadyPaid:
		return "esta conta já está totalmente paga"
	}
	return "alocação inválida"
}

// IsValidation reports whether err is a ValidationError with the given
// reason.
func IsValidation(err error, reason string) bool {
	v, ok := err.(*ValidationError)
	return ok && v.Reason == reason
}
