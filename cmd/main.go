package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"hardwarestore/internal/app"
	"hardwarestore/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCLI().RunContext(ctx, os.Args); err != nil {
		log.WithError(err).Fatal("hardwarestore failed")
	}
}

func newCLI() *cli.App {
	// accepted both before and after the demo subcommand
	flags := []cli.Flag{
		&cli.StringFlag{Name: "log-level", Usage: "overrides HARDWARESTORE_LOG_LEVEL"},
		&cli.StringFlag{Name: "date", Usage: "date label for the demo sale, overrides HARDWARESTORE_SALE_DATE"},
	}
	demo := &cli.Command{
		Name:   "demo",
		Usage:  "seed the sample catalog, sell to C002 and print every report",
		Flags:  flags,
		Action: runDemo,
	}
	return &cli.App{
		Name:     "hardwarestore",
		Usage:    "in-memory hardware store inventory and point of sale",
		Flags:    flags,
		Commands: []*cli.Command{demo},
		Action:   runDemo,
	}
}

func runDemo(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if v := c.String("date"); v != "" {
		cfg.SaleDate = v
	}

	out, errOut := c.App.Writer, c.App.ErrWriter
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	logger := cfg.NewLogger(errOut)
	logger.WithFields(log.Fields{
		"wholesale_discount": cfg.WholesaleDiscount.String(),
		"date":               cfg.SaleDate,
	}).Debug("starting demo")

	return app.New(cfg.WholesaleDiscount, out, logger).RunDemo(c.Context, cfg.SaleDate)
}
