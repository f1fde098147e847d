package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/cheesesashimi/mazdadealers/pkg/config"
	"github.com/cheesesashimi/mazdadealers/pkg/logger"
	"github.com/cheesesashimi/mazdadealers/pkg/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	app := newApp(cfg)

	if err := app.Run(os.Args); err != nil {
		logger.New(cfg.Env, os.Stderr).Fatal("Dealer export failed", err, nil)
	}
}

func newApp(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:  "mazdadealers",
		Usage: "export the Mazda UK dealer listing to a semicolon delimited file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Value: cfg.DealersURL,
				Usage: "dealer API endpoint",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   cfg.OutputPath,
				Usage:   "path of the file to create or overwrite",
			},
			&cli.StringFlag{
				Name:  "env",
				Value: cfg.Env,
				Usage: "logging environment; development logs to the console, anything else as JSON",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: cfg.HTTPTimeout,
				Usage: "HTTP timeout for the fetch, 0 for none",
			},
			&cli.StringFlag{
				Name:  "user-agent",
				Value: cfg.UserAgent,
				Usage: "User-Agent header to send",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: cfg.MapWorkers,
				Usage: "number of dealers mapped concurrently",
			},
			&cli.BoolFlag{
				Name:  "strip-markup",
				Value: cfg.StripMarkup,
				Usage: "reduce HTML fragments in text fields to plain text",
			},
		},
		Action: func(c *cli.Context) error {
			runCfg := &config.Config{
				DealersURL:  c.String("url"),
				OutputPath:  c.String("output"),
				Env:         c.String("env"),
				HTTPTimeout: c.Duration("timeout"),
				UserAgent:   c.String("user-agent"),
				MapWorkers:  c.Int("workers"),
				StripMarkup: c.Bool("strip-markup"),
			}

			if err := runCfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err := pipeline.Run(ctx, runCfg, logger.New(runCfg.Env, nil))
			return err
		},
	}
}
