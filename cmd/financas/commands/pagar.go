package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/internal/pagamento"
	"github.com/dmelo/caixas-go/pkg/money"
)

var pagarCmd = &cobra.Command{
	Use:   "pagar <contaId>",
	Short: "Paga uma conta a partir de um ou mais caixas",
	Long: `Registra um pagamento parcial ou total de uma conta, dividindo o
valor entre os caixas informados. Tudo segue em uma única transação:
o servidor aplica todas as linhas ou nenhuma.

Exemplo:
  financas pagar 66f1a2 --caixa A=150,00 --caixa B=150,00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		linhas, _ := cmd.Flags().GetStringArray("caixa")
		if len(linhas) == 0 {
			return fmt.Errorf("informe ao menos um --caixa id=valor")
		}

		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		contas, err := a.client.ListContas(ctx)
		if err != nil {
			return err
		}

		contaID := args[0]
		idx := -1
		for i, c := range contas {
			if c.ID == contaID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("conta %q não encontrada", contaID)
		}
		conta := contas[idx]
		if conta.Paga() {
			return fmt.Errorf("esta conta já está totalmente paga")
		}

		caixas, err := a.client.ListCaixas(ctx)
		if err != nil {
			return err
		}

		alloc := pagamento.NewAllocator(conta, caixas, a.log)
		for _, linha := range linhas {
			id, valor, ok := strings.Cut(linha, "=")
			if !ok {
				return fmt.Errorf("formato inválido %q, use id=valor", linha)
			}
			alloc.ToggleCaixa(id)
			alloc.SetValor(id, valor)
		}

		fmt.Printf("Restante: %s  Selecionado: %s\n",
			money.Format(alloc.Restante()), money.Format(alloc.TotalAlocado()))

		if err := alloc.Submit(ctx, a.client, time.Now()); err != nil {
			return err
		}
		fmt.Println("Pagamentos registrados!")
		return nil
	},
}

func init() {
	pagarCmd.Flags().StringArray("caixa", nil, "Linha de pagamento no formato caixaId=valor (repetível)")
	rootCmd.AddCommand(pagarCmd)
}
