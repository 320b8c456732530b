package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/internal/clients/backend"
	"github.com/dmelo/caixas-go/internal/domain"
	"github.com/dmelo/caixas-go/internal/relatorio"
	"github.com/dmelo/caixas-go/pkg/money"
)

var contasCmd = &cobra.Command{
	Use:   "contas",
	Short: "Lista as contas a pagar por vencimento",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		contas, err := a.client.ListContas(cmd.Context())
		if err != nil {
			return err
		}

		now := time.Now()
		for _, c := range contas {
			status := strings.ToUpper(c.Status)
			if c.Vencida(now) {
				status = "VENCIDA"
			}
			label := "falta pagar"
			if c.Paga() {
				label = "valor total"
			}
			fmt.Printf("%s  %-10s %-25s %s (%s)  [%s]\n",
				c.DataVencimento.Format("02/01/2006"), status, c.Descricao,
				money.Format(c.ValorExibicao()), label, c.ID)
		}
		return nil
	},
}

var contasCriarCmd = &cobra.Command{
	Use:   "criar",
	Short: "Agenda uma nova conta a pagar",
	RunE: func(cmd *cobra.Command, args []string) error {
		instituicao, _ := cmd.Flags().GetString("instituicao")
		descricao, _ := cmd.Flags().GetString("descricao")
		observacao, _ := cmd.Flags().GetString("observacao")
		valorText, _ := cmd.Flags().GetString("valor")
		vencimento, _ := cmd.Flags().GetString("vencimento")

		if instituicao == "" || descricao == "" || valorText == "" || vencimento == "" {
			return fmt.Errorf("preencha instituição, descrição, valor e vencimento")
		}

		valor, ok := money.ParseLocale(valorText)
		if !ok {
			return fmt.Errorf("valor inválido: %q", valorText)
		}
		due, err := time.Parse("2006-01-02", vencimento)
		if err != nil {
			return fmt.Errorf("vencimento inválido, use AAAA-MM-DD: %w", err)
		}

		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		err = a.client.CreateConta(cmd.Context(), backend.ContaRequest{
			Instituicao:    instituicao,
			Descricao:      descricao,
			Observacao:     observacao,
			Valor:          valor.InexactFloat64(),
			DataVencimento: due.UTC().Format(time.RFC3339),
			Status:         domain.StatusPendente,
		})
		if err != nil {
			return err
		}
		fmt.Println("Conta agendada com sucesso.")
		return nil
	},
}

var contasEditarCmd = &cobra.Command{
	Use:   "editar <contaId>",
	Short: "Altera uma conta a pagar existente",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		instituicao, _ := cmd.Flags().GetString("instituicao")
		descricao, _ := cmd.Flags().GetString("descricao")
		observacao, _ := cmd.Flags().GetString("observacao")
		valorText, _ := cmd.Flags().GetString("valor")
		vencimento, _ := cmd.Flags().GetString("vencimento")

		if instituicao == "" || descricao == "" || valorText == "" || vencimento == "" {
			return fmt.Errorf("preencha instituição, descrição, valor e vencimento")
		}

		valor, ok := money.ParseLocale(valorText)
		if !ok {
			return fmt.Errorf("valor inválido: %q", valorText)
		}
		due, err := time.Parse("2006-01-02", vencimento)
		if err != nil {
			return fmt.Errorf("vencimento inválido, use AAAA-MM-DD: %w", err)
		}

		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		err = a.client.UpdateConta(cmd.Context(), args[0], backend.ContaRequest{
			Instituicao:    instituicao,
			Descricao:      descricao,
			Observacao:     observacao,
			Valor:          valor.InexactFloat64(),
			DataVencimento: due.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
		fmt.Println("Conta atualizada.")
		return nil
	},
}

var contasExcluirCmd = &cobra.Command{
	Use:   "excluir <contaId>",
	Short: "Remove uma conta a pagar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.client.DeleteConta(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Conta removida.")
		return nil
	},
}

var contasInstituicoesCmd = &cobra.Command{
	Use:   "instituicoes",
	Short: "Resumo das contas agrupado por instituição",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		contas, err := a.client.ListContas(cmd.Context())
		if err != nil {
			return err
		}

		for _, r := range relatorio.PorInstituicao(contas) {
			fmt.Printf("%-25s a pagar %-14s histórico %s\n",
				r.Nome, money.Format(r.TotalAPagar), money.Format(r.TotalHistorico))
		}
		return nil
	},
}

func init() {
	contasCriarCmd.Flags().String("instituicao", "", "Instituição da conta")
	contasCriarCmd.Flags().String("descricao", "", "Descrição da conta")
	contasCriarCmd.Flags().String("observacao", "", "Observação opcional")
	contasCriarCmd.Flags().String("valor", "", "Valor total (ex: 150,00)")
	contasCriarCmd.Flags().String("vencimento", "", "Data de vencimento (AAAA-MM-DD)")

	contasEditarCmd.Flags().String("instituicao", "", "Instituição da conta")
	contasEditarCmd.Flags().String("descricao", "", "Descrição da conta")
	contasEditarCmd.Flags().String("observacao", "", "Observação opcional")
	contasEditarCmd.Flags().String("valor", "", "Valor total (ex: 150,00)")
	contasEditarCmd.Flags().String("vencimento", "", "Data de vencimento (AAAA-MM-DD)")

	contasCmd.AddCommand(contasCriarCmd)
	contasCmd.AddCommand(contasEditarCmd)
	contasCmd.AddCommand(contasExcluirCmd)
	contasCmd.AddCommand(contasInstituicoesCmd)
	rootCmd.AddCommand(contasCmd)
}
