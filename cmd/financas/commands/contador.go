package commands

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/internal/contador"
	"github.com/dmelo/caixas-go/pkg/money"
)

var contadorCmd = &cobra.Command{
	Use:   "contador",
	Short: "Conferência do dinheiro físico contra o saldo do sistema",
	Long: `Atualiza e mostra a contagem de cédulas, moedas e saldo online. A
contagem fica guardada no aparelho entre execuções. Informe o saldo do
sistema com --saldo para ver a diferença.

Exemplo:
  financas contador --nota 100=9 --nota 50=2 --moedas 12,50 --saldo 1000,00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notas, _ := cmd.Flags().GetStringArray("nota")
		moedas, _ := cmd.Flags().GetString("moedas")
		online, _ := cmd.Flags().GetString("online")
		saldoText, _ := cmd.Flags().GetString("saldo")
		limpar, _ := cmd.Flags().GetBool("limpar")

		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		c, err := contador.Load(a.store)
		if err != nil {
			return err
		}
		if limpar {
			c = contador.NewContagem()
		}

		for _, nota := range notas {
			var cedula int
			var qtd string
			if _, err := fmt.Sscanf(nota, "%d=%s", &cedula, &qtd); err != nil {
				return fmt.Errorf("formato inválido %q, use cedula=quantidade", nota)
			}
			c.SetQuantidade(cedula, qtd)
		}
		if moedas != "" {
			c.SetTotalMoedas(moedas)
		}
		if online != "" {
			c.SetValorOnline(online)
		}

		if err := contador.Save(a.store, c); err != nil {
			return err
		}

		for _, cedula := range contador.Cedulas {
			qtd := c.Quantidades[strconv.Itoa(cedula)]
			if qtd == "" {
				qtd = "0"
			}
			fmt.Printf("  R$ %-4d x %s\n", cedula, qtd)
		}
		fmt.Printf("Total físico:  %s\n", money.Format(c.TotalFisico()))
		fmt.Printf("Total online:  %s\n", money.Format(c.TotalOnline()))
		fmt.Printf("Total apurado: %s\n", money.Format(c.TotalApurado()))

		if saldoText != "" {
			saldo, ok := money.ParseLocale(saldoText)
			if !ok {
				return fmt.Errorf("saldo inválido: %q", saldoText)
			}
			diff := c.Diferenca(saldo)
			fmt.Printf("Diferença:     %s", money.Format(diff))
			switch {
			case diff.LessThan(decimal.Zero):
				fmt.Println(" (faltando)")
			case diff.GreaterThan(decimal.Zero):
				fmt.Println(" (sobrando)")
			default:
				fmt.Println(" (confere)")
			}
		}
		return nil
	},
}

func init() {
	contadorCmd.Flags().StringArray("nota", nil, "Quantidade de uma cédula no formato cedula=quantidade (repetível)")
	contadorCmd.Flags().String("moedas", "", "Total em moedas (ex: 12,50)")
	contadorCmd.Flags().String("online", "", "Saldo em conta online")
	contadorCmd.Flags().String("saldo", "", "Saldo do sistema para comparação")
	contadorCmd.Flags().Bool("limpar", false, "Descarta a contagem salva e começa do zero")
	rootCmd.AddCommand(contadorCmd)
}
