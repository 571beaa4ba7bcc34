// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the commands for the rentaweb project.
// Commands are organized using the cobra library. The root command
// starts the web server itself.
//
//	./rentaweb [-c /path/of/main/config.yaml]     # start web server
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/rentautos/rentaweb/pkg/adapter/config"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/routes"
	"github.com/rentautos/rentaweb/pkg/core/log"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "rentaweb",
	Short: "A car rental management web service",
	Long: `A car rental management web service which maintains a fleet
of cars, a roster of clients, and the rental transactions which link
them. Each transaction books one car for one client over a date range
with the pricing snapshotted at booking time; a car or client may be
committed to at most one active rental at any moment and that guarantee
is kept even under concurrent booking attempts.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	var e *gin.Engine = c.Gin.NewEngine()
	routes.Register(e, p)
	log.Info(
		ctx, "starting web server",
		log.Str("addr", c.Gin.Addr),
	)
	if err = e.Run(c.Gin.Addr); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
