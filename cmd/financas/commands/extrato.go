package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/pkg/money"
)

var extratoCmd = &cobra.Command{
	Use:   "extrato [caixaId]",
	Short: "Mostra o extrato geral, do Principal ou de um caixa",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		principal, _ := cmd.Flags().GetBool("principal")

		caixaID := ""
		if len(args) == 1 {
			caixaID = args[0]
		}

		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		movs, err := a.client.Extrato(cmd.Context(), caixaID, principal)
		if err != nil {
			return err
		}

		saldoListado := decimal.Zero
		for _, m := range movs {
			saldoListado = saldoListado.Add(m.Valor)
			fmt.Printf("%s  %-25s %-14s %s\n",
				m.Data.Format("02/01/2006"), m.Descricao, m.Categoria, money.Format(m.Valor))
		}
		fmt.Printf("\nSaldo listado: %s\n", money.Format(saldoListado))
		return nil
	},
}

var resumoCmd = &cobra.Command{
	Use:   "resumo",
	Short: "Totais de entradas e saídas calculados pelo servidor",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		resumo, err := a.client.GetResumo(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Entradas: %s\n", money.Format(resumo.TotalEntradas))
		fmt.Printf("Saídas:   %s\n", money.Format(resumo.TotalSaidas))
		return nil
	},
}

func init() {
	extratoCmd.Flags().Bool("principal", false, "Extrato apenas do caixa Principal")
	rootCmd.AddCommand(extratoCmd)
	rootCmd.AddCommand(resumoCmd)
}
