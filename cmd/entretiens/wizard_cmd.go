package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/wizard"
	"github.com/applipro/entretiens/modules/interviews/presentation/mappers"
	"github.com/applipro/entretiens/modules/interviews/services"
)

func newWizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard <entretien-id>",
		Short: "Affiche le parcours de l'entretien et son document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}

			machine, err := services.NewWizardMachine(cmd.Context(), app.wizard, args[0])
			if err != nil {
				return err
			}
			doc := machine.Document()

			out := cmd.OutOrStdout()
			for i, descriptor := range mappers.StepDescriptors() {
				marker := "  "
				if descriptor.Key == machine.Step().Key() {
					marker = "> "
				}
				fmt.Fprintf(out, "%s%d. %s\n", marker, i+1, descriptor.Label)
				fmt.Fprintf(out, "     %s\n", descriptor.Description)
			}

			fmt.Fprintf(out, "\nSentiment global : %d/5\n", doc.CollaboratorPrep.GlobalSentiment)
			fmt.Fprintf(out, "Synthèse manager : %s\n", doc.ManagerPrep.Synthesis)

			remarks := mappers.FieldRemarksToViews(doc)
			fmt.Fprintf(out, "Remarques en séance : %d\n", doc.RemarkCount())
			for _, remark := range remarks {
				fmt.Fprintf(out, "  [%s] %s : %s\n", remark.Source, remark.Label, remark.Remark)
			}

			switch {
			case doc.Validation.ManagerValidation == wizard.SignatureValidated && doc.Validation.CollaboratorSignature == wizard.SignatureValidated:
				fmt.Fprintln(out, "Validation : signée des deux parties")
			default:
				fmt.Fprintln(out, "Validation : en attente")
			}
			return nil
		},
	}
	return cmd
}
