package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/agrotech/agropop/internal/config"
	"github.com/agrotech/agropop/internal/models"
	"github.com/spf13/cobra"
)

func machinesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "machines",
		Short: "Show the machine count and the most recent machines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			total, err := models.CountMachines(ctx, db)
			if err != nil {
				return err
			}
			machines, err := models.ListMachines(ctx, db, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d machines\n", total)
			if len(machines) == 0 {
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSERIAL\tTYPE\tNAME\tYEAR\tHOURS\tSTATUS")
			for _, m := range machines {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
					m.ID, m.SerialNumber, m.TypeName, m.Name, m.Year, m.EngineHours, m.Status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of recent machines to list")
	return cmd
}
