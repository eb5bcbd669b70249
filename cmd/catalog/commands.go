package main

import (
	"fmt"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/app"
	"github.com/Astemirdum/catalog-service/catalog/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

type options struct {
	driver       string
	logLevel     string
	readTimeout  time.Duration
	writeTimeout time.Duration
	cfg          *config.Config
}

// configOptions turns the flags that were set into overrides of the environment.
func (o *options) configOptions() ([]config.Option, error) {
	var ops []config.Option
	if o.driver != "" {
		ops = append(ops, config.WithDriver(o.driver))
	}
	if o.logLevel != "" {
		level, err := zapcore.ParseLevel(o.logLevel)
		if err != nil {
			return nil, err
		}
		ops = append(ops, config.WithLogLevel(level))
	}
	if o.readTimeout > 0 {
		ops = append(ops, config.WithReadTimeout(o.readTimeout))
	}
	if o.writeTimeout > 0 {
		ops = append(ops, config.WithWriteTimeout(o.writeTimeout))
	}
	return ops, nil
}

func (o *options) addServerFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&o.readTimeout, "read-timeout", 0, "HTTP read timeout (overrides HTTP_READ)")
	cmd.Flags().DurationVar(&o.writeTimeout, "write-timeout", 0, "HTTP write timeout (overrides HTTP_WRITE)")
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Lending-library catalog service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ops, err := opts.configOptions()
			if err != nil {
				return err
			}
			cfg, err := config.Load(ops...)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts.cfg)
		},
	}
	root.PersistentFlags().StringVar(&opts.driver, "driver", "", "storage driver: postgres or sqlite (overrides DB_DRIVER)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	opts.addServerFlags(root)

	root.AddCommand(newServeCmd(opts), newMigrateCmd(opts), newTokenCmd(opts), newEventsCmd(opts))
	return root
}

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts.cfg)
		},
	}
	opts.addServerFlags(cmd)
	return cmd
}

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := app.OpenStorage(cmd.Context(), opts.cfg.Storage)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", opts.cfg.Storage.Driver)
			return nil
		},
	}
}

func newTokenCmd(opts *options) *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Manage bearer tokens",
	}

	var user string
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a new token for a user, creating the user if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := app.NewCatalog(cmd.Context(), opts.cfg, false)
			if err != nil {
				return err
			}
			defer catalog.Close()

			tok, err := catalog.Service.IssueToken(cmd.Context(), user)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	issue.Flags().StringVar(&user, "user", "", "user name the token is issued to")
	_ = issue.MarkFlagRequired("user")

	revoke := &cobra.Command{
		Use:   "revoke TOKEN",
		Short: "Revoke a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.NewCatalog(cmd.Context(), opts.cfg, false)
			if err != nil {
				return err
			}
			defer catalog.Close()
			return catalog.Service.RevokeToken(cmd.Context(), args[0])
		},
	}

	token.AddCommand(issue, revoke)
	return token
}

func newEventsCmd(opts *options) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print catalog change events from Kafka as JSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.WatchEvents(cmd.Context(), opts.cfg, group, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&group, "group", "catalog-events-cli", "kafka consumer group")
	return cmd
}
