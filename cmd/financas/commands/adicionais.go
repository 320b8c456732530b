package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/pkg/money"
)

var adicionaisCmd = &cobra.Command{
	Use:   "adicionais",
	Short: "Lista as anotações adicionais",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		adicionais, err := a.client.ListAdicionais(cmd.Context())
		if err != nil {
			return err
		}

		for _, item := range adicionais {
			if item.Valor != nil {
				fmt.Printf("%-30s %s\n", item.Descricao, money.Format(*item.Valor))
				continue
			}
			fmt.Println(item.Descricao)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adicionaisCmd)
}
