package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/portal-comercial-api/pkg/log"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "importer",
		Short:        "Importação do extrato de vendas do BI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return log.Setup(logLevel, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Nível de log (debug, info, warn, error)")
	cmd.AddCommand(newRunCmd(), newMigrateCmd())
	return cmd
}
