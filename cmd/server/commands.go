package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pooja-site/internal/adapter"
	"github.com/MKhiriev/go-pooja-site/internal/app"
	"github.com/MKhiriev/go-pooja-site/internal/config"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/models"
	"github.com/spf13/cobra"
)

// errServeFailed marks errors returned by the serve command.
var errServeFailed = errors.New("serve failed")

type cli struct {
	buildInfo models.AppBuildInfo
	flags     *config.StructuredConfig
	logger    *logger.Logger
	out       io.Writer

	// connect is nil outside tests.
	connect app.Connector

	healthcheckURL     string
	healthcheckTimeout time.Duration
}

func newRootCommand(buildInfo models.AppBuildInfo, log *logger.Logger, out io.Writer) *cobra.Command {
	return (&cli{buildInfo: buildInfo, logger: log, out: out}).rootCommand()
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "server",
		Short: "Pooja site web server",
		Long: `Serves the pooja site pages, static assets and the /api/v1 auth and
users API. Without a subcommand it behaves like "server serve".`,
		Args:          cobra.NoArgs,
		RunE:          c.serve,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.out)

	c.flags = config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Connect to the database and serve HTTP",
			Args:  cobra.NoArgs,
			RunE:  c.serve,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			Args:  cobra.NoArgs,
			RunE:  c.migrate,
		},
		c.healthcheckCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			RunE:  c.version,
		},
	)

	return root
}

// loadConfig builds the configuration and applies the log level.
func (c *cli) loadConfig() (*config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("env", string(cfg.App.Env)).
		Int("port", cfg.Server.Port).
		Str("views", cfg.Web.ViewsDir).
		Str("public", cfg.Web.PublicDir).
		Bool("dotenv", cfg.DotEnvLoaded).
		Msg("received configs")

	return cfg, nil
}

func (c *cli) serve(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if err = cfg.RequireServe(); err != nil {
		return err
	}

	c.logger.Info().
		Str("version", c.buildInfo.Version).
		Str("commit", c.buildInfo.Commit).
		Msg("starting server")

	var opts []app.Option
	if c.connect != nil {
		opts = append(opts, app.WithConnector(c.connect))
	}

	a, err := app.New(cfg, c.logger, opts...)
	if err != nil {
		return err
	}

	if err = a.Run(cmd.Context()); err != nil {
		return errors.Join(errServeFailed, err)
	}
	return nil
}

func (c *cli) migrate(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if err = cfg.RequireStorage(); err != nil {
		return err
	}

	return app.Migrate(cmd.Context(), cfg.Storage.DB, c.logger, c.connect)
}

func (c *cli) version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		c.buildInfo.Version, c.buildInfo.Date, c.buildInfo.Commit)
	return err
}

func (c *cli) healthcheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Exit 0 when a running server answers its home page",
		Args:  cobra.NoArgs,
		RunE:  c.healthcheck,
	}
	cmd.Flags().StringVar(&c.healthcheckURL, "url", "", "Server address (default localhost:<port>)")
	cmd.Flags().DurationVar(&c.healthcheckTimeout, "timeout", 5*time.Second, "Request timeout")
	return cmd
}

func (c *cli) healthcheck(cmd *cobra.Command, _ []string) error {
	address := c.healthcheckURL
	if address == "" {
		cfg, err := c.loadConfig()
		if err != nil {
			return err
		}
		address = "localhost:" + strconv.Itoa(cfg.Server.Port)
	}

	client, err := adapter.NewHTTPSiteClient(address, c.healthcheckTimeout, c.logger)
	if err != nil {
		return err
	}

	if err = client.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("healthcheck failed: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return err
}
