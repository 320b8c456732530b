package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/internal/clients/backend"
	"github.com/dmelo/caixas-go/internal/domain"
	"github.com/dmelo/caixas-go/internal/offline"
	"github.com/dmelo/caixas-go/internal/storage"
	"github.com/dmelo/caixas-go/pkg/money"
)

var movimentacaoCmd = &cobra.Command{
	Use:   "movimentacao",
	Short: "Registra uma entrada ou saída em um caixa",
	Long: `Registra uma movimentação no servidor. Com --offline (ou quando o
servidor está inacessível e --offline é informado) a movimentação fica
guardada no aparelho e pode ser reenviada depois com "financas offline
enviar", mantendo a data original.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		descricao, _ := cmd.Flags().GetString("descricao")
		valorText, _ := cmd.Flags().GetString("valor")
		tipo, _ := cmd.Flags().GetString("tipo")
		categoria, _ := cmd.Flags().GetString("categoria")
		caixaID, _ := cmd.Flags().GetString("caixa")
		editarID, _ := cmd.Flags().GetString("editar")
		offlineMode, _ := cmd.Flags().GetBool("offline")

		if editarID != "" && offlineMode {
			return fmt.Errorf("edição só funciona com o servidor acessível")
		}

		if descricao == "" || valorText == "" {
			return fmt.Errorf("preencha o valor e a descrição")
		}
		if tipo != domain.TipoEntrada && tipo != domain.TipoSaida {
			return fmt.Errorf("tipo deve ser %q ou %q", domain.TipoEntrada, domain.TipoSaida)
		}
		valor, ok := money.ParseLocale(valorText)
		if !ok {
			return fmt.Errorf("valor inválido: %q", valorText)
		}

		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		if offlineMode {
			// Box selection comes from the local snapshot; the live
			// list is unreachable by definition here.
			caixas, err := storage.LoadCaixasSnapshot(a.store)
			if err != nil {
				return err
			}
			if len(caixas) == 0 {
				return fmt.Errorf("nenhuma lista de caixas encontrada offline")
			}

			caixa := caixas[0]
			if caixaID != "" {
				found := false
				for _, c := range caixas {
					if c.ID == caixaID {
						caixa = c
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("caixa %q não está na lista salva no aparelho", caixaID)
				}
			} else {
				for _, c := range caixas {
					if c.IsPrincipal() {
						caixa = c
						break
					}
				}
			}

			queue := offline.NewQueue(a.store, a.log)
			entry := offline.NewEntry(descricao, valor, tipo, caixa)
			if err := queue.Enqueue(entry); err != nil {
				return err
			}
			fmt.Printf("Salvo no aparelho: movimentação registrada na caixa %q.\n", caixa.Nome)
			return nil
		}

		if caixaID == "" {
			caixaID, err = storage.PrincipalID(a.store)
			if err != nil {
				return err
			}
			if caixaID == "" {
				return fmt.Errorf("informe --caixa ou liste os caixas primeiro")
			}
		}

		signed := valor.Abs()
		if tipo == domain.TipoSaida {
			signed = signed.Neg()
		}
		if categoria == "" {
			categoria = domain.CategoriaPadrao
		}

		req := backend.MovimentacaoRequest{
			CaixaID:   caixaID,
			Descricao: descricao,
			Valor:     signed.InexactFloat64(),
			Tipo:      tipo,
			Categoria: categoria,
		}
		if editarID != "" {
			if err := a.client.UpdateMovimentacao(ctx, editarID, req); err != nil {
				return err
			}
			fmt.Println("Movimentação atualizada.")
			return nil
		}
		if err := a.client.CreateMovimentacao(ctx, req); err != nil {
			return err
		}
		fmt.Println("Movimentação registrada.")
		return nil
	},
}

var movimentacaoExcluirCmd = &cobra.Command{
	Use:   "excluir <movimentacaoId>",
	Short: "Remove uma movimentação do extrato",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.client.DeleteMovimentacao(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Movimentação removida.")
		return nil
	},
}

func init() {
	movimentacaoCmd.Flags().String("descricao", "", "Descrição da movimentação")
	movimentacaoCmd.Flags().String("valor", "", "Valor (ex: 35,90)")
	movimentacaoCmd.Flags().String("tipo", domain.TipoEntrada, "entrada ou saida")
	movimentacaoCmd.Flags().String("categoria", "", "Categoria (padrão: Geral)")
	movimentacaoCmd.Flags().String("caixa", "", "Id do caixa (padrão: Principal)")
	movimentacaoCmd.Flags().String("editar", "", "Id de uma movimentação existente para editar")
	movimentacaoCmd.Flags().Bool("offline", false, "Guarda no aparelho em vez de enviar ao servidor")
	movimentacaoCmd.AddCommand(movimentacaoExcluirCmd)
	rootCmd.AddCommand(movimentacaoCmd)
}
