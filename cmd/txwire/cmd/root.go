/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/txwire/pkg/config"
	"github.com/ssargent/txwire/pkg/di"
	"github.com/ssargent/txwire/pkg/inspect"
)

type contextKey string

const configContextKey contextKey = "config"

// skipConfigAnnotation marks commands that run without loading a config file
const skipConfigAnnotation = "txwire/skip-config"

var container *di.Container

// SetContainer injects the dependency container used by all commands
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "txwire",
	Short: "txwire - Bitcoin transaction wire codec",
	Long: `txwire encodes and decodes a subset of the Bitcoin transaction wire
format: version, inputs and lock time, with CompactSize length prefixes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipConfigAnnotation] == "true" {
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		setLogLevels(cfg.Logging.Level)
		txwrLog.Debugf("Using output format %s, strict=%t", cfg.Output.Format, cfg.Decode.Strict)

		cmd.SetContext(context.WithValue(cmd.Context(), configContextKey, cfg))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipConfigAnnotation] == "true" {
			return nil
		}

		cfg, ok := cmd.Context().Value(configContextKey).(*config.Config)
		if !ok || cfg.Metrics.Textfile == "" || container == nil {
			return nil
		}

		if err := container.GetMetrics().WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
		txwrLog.Debugf("Wrote metrics to %s", cfg.Metrics.Textfile)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default is $HOME/.config/txwire/config.yaml)")
	rootCmd.PersistentFlags().String("format", "", "Output format: text, json, yaml, table or dump")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error, critical or off")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file after the command")
}

// loadConfig reads the config file and applies command line overrides. A
// missing default config file is not an error; a missing explicit one is.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg := config.DefaultConfig()
	switch {
	case configPath != "":
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case config.ConfigExists(config.GetDefaultConfigPath()):
		loaded, err := config.LoadConfig(config.GetDefaultConfigPath())
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format, _ = cmd.Flags().GetString("format")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.Metrics.Textfile, _ = cmd.Flags().GetString("metrics-file")
	}
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		cfg.Decode.Strict, _ = cmd.Flags().GetBool("strict")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newService builds an inspection service from the command's config
func newService(cmd *cobra.Command) (inspect.Service, error) {
	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}

	cfg, ok := cmd.Context().Value(configContextKey).(*config.Config)
	if !ok {
		return nil, fmt.Errorf("config not found in context")
	}

	format, err := inspect.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	opts := inspect.Options{
		Format: format,
		Strict: cfg.Decode.Strict,
	}
	return container.GetInspectorFactory().CreateService(opts, container.GetMetrics())
}
