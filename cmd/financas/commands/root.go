package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dmelo/caixas-go/internal/clients/backend"
	"github.com/dmelo/caixas-go/internal/config"
	"github.com/dmelo/caixas-go/internal/storage"
	"github.com/dmelo/caixas-go/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "financas",
	Short: "Controle de caixas, contas a pagar e movimentações",
	Long: `financas é o cliente de linha de comando do controle financeiro:
caixas com saldo próprio, contas a pagar com pagamento parcial a partir
de vários caixas, extratos e uma fila offline de movimentações que pode
ser reenviada ao servidor preservando a data original.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles everything a command needs.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *storage.SQLite
	client *backend.Client
}

// setup wires logger, config, local storage and the backend client,
// in that order. Callers must Close the returned app.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar configuração: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	logger.SetGlobalLogger(log)

	store, err := storage.NewSQLite(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir armazenamento local: %w", err)
	}

	return &app{
		cfg:    cfg,
		log:    log,
		store:  store,
		client: backend.NewClient(cfg.APIURL, store, log),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn().Err(err).Msg("Falha ao fechar armazenamento local")
	}
}
