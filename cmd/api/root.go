package main

import (
	"github.com/spf13/cobra"

	"insurance_quotes/internal/infrastructure/config"
)

var Version = "dev"

type overrides struct {
	port  int
	store string
	lock  string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "insurance-quotes",
		Short:         "Insurance quote request services",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServiceCmd(config.ServiceCustomer, "Run the customer-core service", runCustomer))
	root.AddCommand(newServiceCmd(config.ServicePolicy, "Run the policy-management service", runPolicy))
	return root
}

func newServiceCmd(service, short string, run func(cmd *cobra.Command, cfg config.Config) error) *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:   service,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load(service)
			o.apply(&cfg)
			return run(cmd, cfg)
		},
	}
	cmd.Flags().IntVar(&o.port, "port", 0, "HTTP port (overrides HTTP_PORT)")
	cmd.Flags().StringVar(&o.store, "store", "", "entity store: dynamodb or memory (overrides STORE_BACKEND)")
	cmd.Flags().StringVar(&o.lock, "lock", "", "aggregate lock: memory or redis (overrides LOCK_BACKEND)")
	return cmd
}

func (o overrides) apply(cfg *config.Config) {
	if o.port > 0 {
		cfg.HTTPPort = o.port
	}
	if o.store != "" {
		cfg.StoreBackend = o.store
	}
	if o.lock != "" {
		cfg.LockBackend = o.lock
	}
}
