package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coursepage/internal/config"
	"coursepage/internal/eventbus"
	"coursepage/internal/logging"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

// configInitCmd writes the default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where the config file is read from",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.NewConfigService(configPath, nil).Path())
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	level := "warn"
	if verbose {
		level = "debug"
	}
	log, err := logging.New(logging.Options{Level: level, Console: true})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	bus := eventbus.New(log)
	defer bus.Close()
	subscribeLogger(bus, log)

	svc := config.NewConfigService(configPath, bus)
	if _, err := os.Stat(svc.Path()); err == nil && !configForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", svc.Path())
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := svc.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), svc.Path())
	return nil
}
