package main

import (
	"database/sql"
	"fmt"

	"github.com/agrotech/agropop/internal/config"
	"github.com/agrotech/agropop/internal/factory"
	"github.com/agrotech/agropop/internal/seeder"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data and 100 synthetic machines",
		Long: `Seed runs the sub-seeders in order (admin user when configured, then
machine types) and bulk-creates 100 synthetic machines.

Seeding is not idempotent: every invocation adds another 100 machines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			f := factory.New(db, cfg.Seed)
			runner := seeder.NewRunner(f, plan(db, cfg)...)
			if err := runner.Run(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d machines (seed=%d)\n", runner.Created(), f.Seed())
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for generated machines (overrides AGROPOP_SEED; 0 = clock)")
	return cmd
}

// plan returns the sub-seeders to run before machines are generated.
func plan(db *sql.DB, cfg config.Config) []seeder.Seeder {
	var seeders []seeder.Seeder
	if cfg.AdminUser != "" {
		seeders = append(seeders, &seeder.AdminSeeder{
			DB:       db,
			Username: cfg.AdminUser,
			Password: cfg.AdminPass,
			Email:    cfg.AdminEmail,
		})
	}
	seeders = append(seeders, &seeder.MachineTypesSeeder{DB: db})
	return seeders
}
