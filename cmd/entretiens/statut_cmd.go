package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/presentation/mappers"
)

func newStatutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statut <entretien-id> <statut>",
		Short: "Simule une transition de statut côté manager",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := interview.Status(args[1])
			if !status.IsValid() {
				return fmt.Errorf("statut inconnu %q", args[1])
			}

			app, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}

			list, err := app.interview.SimulateStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			for _, record := range list {
				if record.ID() != args[0] {
					continue
				}
				row := mappers.InterviewToRow(record)
				fmt.Fprintf(cmd.OutOrStdout(), "%s : %s", row.ID, row.StatusLabel)
				if row.ActualDate != "" {
					fmt.Fprintf(cmd.OutOrStdout(), " (réalisé le %s)", row.ActualDate)
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entretien %s introuvable, aucune modification\n", args[0])
			return nil
		},
	}
	return cmd
}
