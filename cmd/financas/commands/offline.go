package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/internal/domain"
	"github.com/dmelo/caixas-go/internal/offline"
	"github.com/dmelo/caixas-go/pkg/money"
)

var offlineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Gerencia as movimentações pendentes de envio",
}

var offlineListarCmd = &cobra.Command{
	Use:   "listar",
	Short: "Lista as movimentações guardadas no aparelho",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		queue := offline.NewQueue(a.store, a.log)
		entries, err := queue.ListPending()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Nenhuma pendência.")
			return nil
		}

		for _, e := range entries {
			sinal := "+"
			if e.Tipo == domain.TipoSaida {
				sinal = "-"
			}
			fmt.Printf("%s  %s%-12s %-25s %-15s [%s]\n",
				e.Data.Format("02/01 15:04"), sinal,
				money.FormatPlain(e.Valor.Abs()), e.Descricao, e.CaixaNome, e.LocalID)
		}
		return nil
	},
}

var offlineEnviarCmd = &cobra.Command{
	Use:   "enviar <localId>",
	Short: "Reenvia uma pendência ao servidor com a data original",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		queue := offline.NewQueue(a.store, a.log)
		entries, err := queue.ListPending()
		if err != nil {
			return err
		}

		for _, e := range entries {
			if e.LocalID != args[0] {
				continue
			}
			if err := queue.ReplayOne(cmd.Context(), a.client, e); err != nil {
				return err
			}
			fmt.Println("Movimentação lançada com a data original!")
			return nil
		}
		return fmt.Errorf("pendência %q não encontrada", args[0])
	},
}

var offlineExcluirCmd = &cobra.Command{
	Use:   "excluir <localId>",
	Short: "Descarta uma pendência sem enviar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		queue := offline.NewQueue(a.store, a.log)
		if err := queue.Discard(args[0]); err != nil {
			return err
		}
		fmt.Println("Pendência removida.")
		return nil
	},
}

func init() {
	offlineCmd.AddCommand(offlineListarCmd)
	offlineCmd.AddCommand(offlineEnviarCmd)
	offlineCmd.AddCommand(offlineExcluirCmd)
	rootCmd.AddCommand(offlineCmd)
}
