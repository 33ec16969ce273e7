package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/presentation/mappers"
)

func newListCmd() *cobra.Command {
	var (
		statut    string
		typ       string
		recherche string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Liste les entretiens, avec filtres statut / type / recherche",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}

			records, err := app.interview.Find(cmd.Context(), &interview.FindParams{
				Status: interview.Status(statut),
				Type:   interview.Type(typ),
				Q:      recherche,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCOLLABORATEUR\tMANAGER\tTYPE\tSTATUT\tDATE PRÉVUE\tMISE À JOUR")
			for _, row := range mappers.InterviewsToRows(records) {
				fmt.Fprintf(w, "%s\t%s (%s)\t%s\t%s\t%s\t%s\t%s\n",
					row.ID,
					row.CollaboratorName, row.CollaboratorInitials,
					row.ManagerName,
					row.TypeLabel,
					row.StatusLabel,
					row.PlannedDate,
					row.UpdatedAt,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&statut, "statut", "", "filtre par statut (en_attente, planifie, realise, reporte, annule)")
	cmd.Flags().StringVar(&typ, "type", "", "filtre par type (integration, suivi, bilan, autre)")
	cmd.Flags().StringVar(&recherche, "recherche", "", "recherche sur le nom, l'email ou le manager")
	return cmd
}
