package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/applipro/entretiens/modules/interviews/infrastructure/fixtures"
	"github.com/applipro/entretiens/modules/interviews/infrastructure/persistence"
	"github.com/applipro/entretiens/modules/interviews/services"
	"github.com/applipro/entretiens/pkg/configuration"
	"github.com/applipro/entretiens/pkg/eventbus"
	"github.com/applipro/entretiens/pkg/kvstore"
)

// appContext bundles the wired services a subcommand runs against.
type appContext struct {
	conf      *configuration.Configuration
	interview *services.InterviewService
	wizard    *services.WizardService
}

func buildApp(ctx context.Context) (*appContext, error) {
	conf := configuration.Use()
	log := conf.Logger()

	store, err := kvstore.NewFromConfig(ctx, conf)
	if err != nil {
		return nil, err
	}

	seed, err := fixtures.InterviewsWithDetails()
	if err != nil {
		return nil, err
	}

	publisher := eventbus.NewEventPublisher(log)
	interviewRepo := persistence.NewKVInterviewRepository(store, conf.Storage.InterviewsKey, seed, log)
	wizardRepo := persistence.NewKVWizardRepository(store, conf.Storage.WizardKey, log)

	return &appContext{
		conf:      conf,
		interview: services.NewInterviewService(interviewRepo, fixtures.Directory{}, publisher),
		wizard:    services.NewWizardService(wizardRepo, fixtures.Directory{}, publisher, log),
	}, nil
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "entretiens",
		Short:         "Backoffice de gestion des entretiens individuels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newStatutCmd())
	cmd.AddCommand(newWizardCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
