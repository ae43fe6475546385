// Copyright 2025 Workflowkit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/workflowkit/backfill-go/cmd/internal/app"
	"github.com/workflowkit/backfill-go/cmd/internal/config"
	"github.com/workflowkit/backfill-go/cmd/internal/flags"
	"github.com/workflowkit/backfill-go/remote"
)

const VersionDev = "dev"

// Cmd represents the base command when called without any subcommands
type Cmd struct {
	// Version params.
	appVersion string
	commitHash string

	// Root flags
	flagsApp      *flags.App
	flagsRemote   *flags.Remote
	flagsBackfill *flags.Backfill
}

func NewCmd(appVersion, commitHash string) *cobra.Command {
	c := &Cmd{
		appVersion: appVersion,
		commitHash: commitHash,

		flagsApp:      flags.NewApp(),
		flagsRemote:   flags.NewRemote(),
		flagsBackfill: flags.NewBackfill(),
	}

	rootCmd := &cobra.Command{
		Use:   "wfbackfill [flags] launchplan [launchplan-version]",
		Short: "Workflow backfill CLI tool",
		Args:  cobra.MaximumNArgs(2),
		RunE:  c.run,
	}

	// Disable sorting
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.SilenceUsage = true

	appFlagSet := c.flagsApp.NewFlagSet()
	remoteFlagSet := c.flagsRemote.NewFlagSet()
	backfillFlagSet := c.flagsBackfill.NewFlagSet()

	// App flags.
	rootCmd.PersistentFlags().AddFlagSet(appFlagSet)
	rootCmd.PersistentFlags().AddFlagSet(remoteFlagSet)

	rootCmd.Flags().AddFlagSet(backfillFlagSet)

	// Beautify help and usage.
	helpFunc := func() {
		fmt.Println("Welcome to the workflow backfill CLI tool!")
		fmt.Println("------------------------------------------")
		fmt.Println("\nUsage:")
		fmt.Println("  wfbackfill [flags] launchplan [launchplan-version]")
		fmt.Println("\nRegisters a backfill workflow for the given launchplan, covering the")
		fmt.Println("window between from-date and to-date. Supply any two of from-date,")
		fmt.Println("to-date and backfill-window. If launchplan-version is omitted, the")
		fmt.Println("latest registered version is used.")

		// Print section: App Flags
		fmt.Println("\nGeneral Flags:")
		appFlagSet.PrintDefaults()

		// Print section: Remote Flags
		fmt.Println("\nRemote Flags:")
		remoteFlagSet.PrintDefaults()

		// Print section: Backfill Flags
		fmt.Println("\nBackfill Flags:")
		backfillFlagSet.PrintDefaults()
	}

	rootCmd.SetUsageFunc(func(_ *cobra.Command) error {
		helpFunc()
		return nil
	})
	rootCmd.SetHelpFunc(func(_ *cobra.Command, _ []string) {
		helpFunc()
	})

	return rootCmd
}

func (c *Cmd) run(cmd *cobra.Command, args []string) error {
	// Show version.
	if c.flagsApp.Version {
		c.printVersion()

		return nil
	}

	// If nothing was passed, show help.
	if len(args) == 0 && cmd.Flags().NFlag() == 0 {
		if err := cmd.Help(); err != nil {
			return err
		}

		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("launchplan is required")
	}

	// Init logger.
	logger, err := app.NewLogger(c.flagsApp.LogLevel, c.flagsApp.Verbose, c.flagsApp.LogJSON)
	if err != nil {
		return err
	}

	// Init service config.
	serviceConfig, err := config.NewBackfillServiceConfig(
		c.flagsApp.GetApp(),
		c.flagsBackfill.GetBackfill(),
		c.flagsRemote.GetRemote(),
	)
	if err != nil {
		return err
	}

	// Positional arguments win over the config file.
	serviceConfig.Backfill.LaunchPlan = args[0]
	if len(args) > 1 {
		serviceConfig.Backfill.LaunchPlanVersion = args[1]
	}

	remoteClient, err := remote.NewClient(&remote.Config{
		Endpoint:        serviceConfig.Remote.Endpoint,
		ConsoleEndpoint: serviceConfig.Remote.ConsoleEndpoint,
		Insecure:        serviceConfig.Remote.Insecure,
		Timeout:         time.Duration(serviceConfig.Remote.TimeoutMilliseconds) * time.Millisecond,
	}, logger)
	if err != nil {
		return err
	}

	b, err := app.NewBackfill(serviceConfig, remoteClient, logger)
	if err != nil {
		return err
	}

	if err = b.Run(cmd.Context()); err != nil {
		logger.Error("backfill failed", slog.Any("error", err))

		return err
	}

	return nil
}

func (c *Cmd) printVersion() {
	version := c.appVersion
	if c.appVersion == VersionDev {
		version += " (" + c.commitHash + ")"
	}

	fmt.Printf("version: %s\n", version)
}
