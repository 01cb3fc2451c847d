package main

import (
	"github.com/spf13/cobra"

	"insurance_quotes/internal/adapter/http/handlers"
	"insurance_quotes/internal/adapter/http/routes"
	"insurance_quotes/internal/adapter/messaging"
	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/infrastructure/config"
	"insurance_quotes/internal/usecase"
)

func runPolicy(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	underwriting := usecase.NewUnderwritingUseCase(a.requests, a.policies, a.channel, a.locker, a.metrics, a.log)
	sweeper := usecase.NewExpirationSweeper(a.requests, a.channel, a.locker, a.metrics, a.log, cfg.SweepInterval, cfg.SweepInitialDelay)

	registry := messaging.NewRegistry()
	for kind, h := range map[events.Kind]messaging.HandlerFunc{
		events.KindQuoteRequestSubmitted: underwriting.HandleQuoteRequestSubmitted,
		events.KindCustomerDecision:      underwriting.HandleCustomerDecision,
	} {
		if err := registry.Register(kind, h); err != nil {
			return err
		}
	}

	router := routes.NewPolicyRouter(handlers.NewUnderwritingHandler(underwriting), a.metrics.Handler(), a.log)
	return a.run(ctx, router, a.newDispatcher(registry).Run, sweeper.Start)
}
