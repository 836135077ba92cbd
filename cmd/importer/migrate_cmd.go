package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/portal-comercial-api/infrastructure/database/postgres"
	"github.com/vfg2006/portal-comercial-api/infrastructure/migration"
	"github.com/vfg2006/portal-comercial-api/internal/config"
)

func newMigrateCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o schema do banco",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				for _, stmt := range migration.Statements() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s;\n\n", stmt)
				}
				return nil
			}

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
			}
			defer conn.Close()

			return migration.Apply(cmd.Context(), conn)
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "Apenas imprime o SQL, sem conectar ao banco")
	return cmd
}
