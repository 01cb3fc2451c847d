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

func runCustomer(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	quotes := usecase.NewCustomerQuoteUseCase(a.requests, a.channel, a.locker, a.log)
	relay := usecase.NewOutboxRelay(a.requests, a.channel, a.locker, a.metrics, a.log, cfg.OutboxInterval)

	registry := messaging.NewRegistry()
	for kind, h := range map[events.Kind]messaging.HandlerFunc{
		events.KindQuoteResponse: quotes.HandleQuoteResponse,
		events.KindQuoteExpired:  quotes.HandleQuoteExpired,
		events.KindPolicyCreated: quotes.HandlePolicyCreated,
	} {
		if err := registry.Register(kind, h); err != nil {
			return err
		}
	}

	router := routes.NewCustomerRouter(handlers.NewCustomerQuoteHandler(quotes), a.metrics.Handler(), a.log)
	return a.run(ctx, router, a.newDispatcher(registry).Run, relay.Start)
}
