package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/pkg/money"
)

var caixasCmd = &cobra.Command{
	Use:   "caixas",
	Short: "Lista os caixas e seus saldos",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		caixas, err := a.client.ListCaixas(cmd.Context())
		if err != nil {
			return err
		}

		for _, c := range caixas {
			marker := "  "
			if c.IsPrincipal() {
				marker = "* "
			}
			fmt.Printf("%s%-20s %s\n", marker, c.Nome, money.Format(c.Saldo))
		}
		return nil
	},
}

var caixasCriarCmd = &cobra.Command{
	Use:   "criar <nome>",
	Short: "Cria um novo caixa",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.client.CreateCaixa(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Caixa %q criado.\n", args[0])
		return nil
	},
}

func init() {
	caixasCmd.AddCommand(caixasCriarCmd)
	rootCmd.AddCommand(caixasCmd)
}
