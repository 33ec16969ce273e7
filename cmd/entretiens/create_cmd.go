package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/applipro/entretiens/modules/interviews/domain/aggregates/interview"
	"github.com/applipro/entretiens/modules/interviews/services"
)

func newCreateCmd() *cobra.Command {
	dto := &interview.CreateDTO{}
	var typ, statut string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crée un entretien pour un collaborateur",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd.Context())
			if err != nil {
				return err
			}

			dto.Type = interview.Type(typ)
			dto.Status = interview.Status(statut)

			record, err := app.interview.Create(cmd.Context(), dto)
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				for field, message := range vErr.Fields {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s : %s\n", field, message)
				}
				return errors.New("formulaire invalide")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Entretien %s créé pour %s (manager %s)\n",
				record.ID(), record.Collaborator().FullName(), record.Manager().FullName())
			return nil
		},
	}

	cmd.Flags().StringVar(&dto.CollaboratorID, "collaborateur", "", "identifiant du collaborateur")
	cmd.Flags().StringVar(&dto.ManagerID, "manager", "", "identifiant du manager")
	cmd.Flags().StringVar(&typ, "type", "", "type d'entretien (integration par défaut)")
	cmd.Flags().StringVar(&statut, "statut", "", "statut initial (planifie par défaut)")
	cmd.Flags().StringVar(&dto.PlannedDate, "date", "", "date prévue (AAAA-MM-JJ)")
	cmd.Flags().StringVar(&dto.Location, "lieu", "", "lieu de l'entretien")
	cmd.Flags().StringVar(&dto.Notes, "notes", "", "notes libres")
	return cmd
}
