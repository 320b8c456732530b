package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/internal/relatorio"
	"github.com/dmelo/caixas-go/pkg/money"
)

var categoriasCmd = &cobra.Command{
	Use:   "categorias",
	Short: "Relatório de gastos e entradas por categoria",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		rel, err := a.client.GetCategorias(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("GASTOS")
		totalGastos := relatorio.TotalBuckets(rel.Gastos)
		for _, b := range rel.Gastos {
			fmt.Printf("  %-20s %-14s %s%%\n", b.Categoria, money.Format(b.Total),
				relatorio.Percentual(b, totalGastos).StringFixed(2))
		}

		fmt.Println("ENTRADAS")
		totalEntradas := relatorio.TotalBuckets(rel.Entradas)
		for _, b := range rel.Entradas {
			fmt.Printf("  %-20s %-14s %s%%\n", b.Categoria, money.Format(b.Total),
				relatorio.Percentual(b, totalEntradas).StringFixed(2))
		}
		return nil
	},
}

var relatorioPdfCmd = &cobra.Command{
	Use:   "relatorio-pdf <arquivo>",
	Short: "Baixa o relatório por categoria em PDF gerado pelo servidor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		pdf, err := a.client.RelatorioPDF(cmd.Context())
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], pdf, 0644); err != nil {
			return fmt.Errorf("falha ao gravar o PDF: %w", err)
		}
		fmt.Printf("Relatório salvo em %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriasCmd)
	rootCmd.AddCommand(relatorioPdfCmd)
}
