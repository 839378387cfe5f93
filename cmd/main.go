package main

import (
	"context"
	goflag "flag"
	"fmt"
	"github.com/golang/glog"
	"github.com/rycus86/mbta-route-tables/pkg/cache"
	"github.com/rycus86/mbta-route-tables/pkg/client"
	"github.com/rycus86/mbta-route-tables/pkg/config"
	"github.com/rycus86/mbta-route-tables/pkg/controller"
	"github.com/rycus86/mbta-route-tables/pkg/server"
	"github.com/rycus86/mbta-route-tables/pkg/tables"
	"github.com/rycus86/mbta-route-tables/pkg/timetables"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
)

type options struct {
	configPath    string
	baseURL       string
	sortBy        string
	scheduleLimit int
	stopCache     string
	listen        string
}

func main() {
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "mbta-tables",
		Short:        "Render MBTA routes and schedules as tables",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its settings from the standard flag set
			return goflag.CommandLine.Parse(nil)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML or TOML configuration file")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Transit API base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.sortBy, "sort-by", "", "Route order: none, name-asc or name-desc (overrides config)")
	cmd.PersistentFlags().IntVar(&opts.scheduleLimit, "schedule-limit", 0, "Number of schedule entries per route (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.stopCache, "stop-cache", "", "Stop name cache: none, memory or redis (overrides config)")
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newRoutesCmd(opts))
	cmd.AddCommand(newScheduleCmd(opts))

	return cmd
}

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route and schedule tables over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if opts.listen != "" {
				cfg.Server.Address = opts.listen
			}

			ctl, err := newController(cfg)
			if err != nil {
				return err
			}

			srv, err := server.New(ctl)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, cfg.Server.Address)
		},
	}

	cmd.Flags().StringVar(&opts.listen, "listen", "", "Address to listen on (overrides config)")

	return cmd
}

func newRoutesCmd(opts *options) *cobra.Command {
	var colors bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print every route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			ctl, err := newController(cfg)
			if err != nil {
				return err
			}

			var result tables.Result
			if colors {
				result = ctl.StyledRoutes(cmd.Context())
			} else {
				result = ctl.LinkedRoutes(cmd.Context())
			}

			return printResult(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&colors, "colors", false, "Include the official route colors instead of schedule links")

	return cmd
}

func newScheduleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <route-id>",
		Short: "Print the upcoming schedule of a route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			ctl, err := newController(cfg)
			if err != nil {
				return err
			}

			return printResult(cmd, ctl.ScheduleTable(cmd.Context(), args[0]))
		},
	}
}

func printResult(cmd *cobra.Command, result tables.Result) error {
	if err := server.WriteText(cmd.OutOrStdout(), result.Render()); err != nil {
		return err
	}
	if !result.OK() {
		return fmt.Errorf("%s: %w", result.Kind, result.Err)
	}
	return nil
}

func loadConfig(opts *options) (config.AppConfig, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.AppConfig{}, err
	}

	if opts.baseURL != "" {
		cfg.API.BaseURL = opts.baseURL
	}
	if opts.sortBy != "" {
		cfg.Routes.SortBy = opts.sortBy
	}
	if opts.scheduleLimit > 0 {
		cfg.API.ScheduleLimit = opts.scheduleLimit
	}
	if opts.stopCache != "" {
		cfg.StopCache.Backend = opts.stopCache
	}

	return cfg, cfg.Validate()
}

func newController(cfg config.AppConfig) (*controller.Controller, error) {
	sortBy, err := tables.ParseSortOrder(cfg.Routes.SortBy)
	if err != nil {
		return nil, err
	}

	api := timetables.NewClient(client.NewHttpClient(cfg.API.BaseURL, cfg.API.Timeout))

	var stops tables.StopNameResolver = timetables.NewStopResolver(api)

	switch cfg.StopCache.Backend {
	case "memory":
		stops = cache.NewResolver(cache.NewMemoryBackend(cfg.StopCache.TTL), stops)
	case "redis":
		stops = cache.NewResolver(cache.NewRedisBackend(cfg.StopCache.Redis.Address, cfg.StopCache.Redis.Password, cfg.StopCache.TTL), stops)
	}

	glog.Infof("Using %s (stop cache: %s, route order: %s)", cfg.API.BaseURL, cfg.StopCache.Backend, sortBy)

	return controller.New(api, stops, controller.Options{
		Routes: tables.RouteTableOptions{
			SortBy:        sortBy,
			RequireRoutes: cfg.Routes.RequireRoutes,
		},
		ScheduleLimit: cfg.API.ScheduleLimit,
	}), nil
}
