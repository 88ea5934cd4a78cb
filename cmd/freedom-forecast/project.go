package main

import (
	"fmt"

	"github.com/iwvelando/freedom-forecast/internal/config"
	"github.com/iwvelando/freedom-forecast/internal/forecast"
	"github.com/iwvelando/freedom-forecast/pkg/constants"
	"github.com/iwvelando/freedom-forecast/pkg/output"
	"github.com/iwvelando/freedom-forecast/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProjectCmd() *cobra.Command {
	var (
		configLocation string
		outputFormat   string
		logLevel       string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project every active scenario in a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, configLocation, outputFormat, logLevel)
		},
	}

	cmd.Flags().StringVar(&configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.Flags().StringVar(&outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	return cmd
}

func runProject(cmd *cobra.Command, configLocation, outputFormatFlag, logLevel string) error {
	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if outputFormatFlag != "" {
		outputFormat = outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	if err := conf.Validate(); err != nil {
		logger.Error("invalid configuration",
			zap.String("op", "main.runProject"),
			zap.Error(err),
		)
		return err
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.runProject"),
		)
	}

	results, err := forecast.GetForecast(logger, *conf)
	if err != nil {
		logger.Error("failed to compute projection",
			zap.String("op", "main.runProject"),
			zap.Error(err),
		)
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case constants.OutputFormatCSV:
		return output.CsvFormat(out, results)
	case constants.OutputFormatJSON:
		return output.JSONFormat(out, results)
	default:
		output.PrettyFormat(out, results)
	}
	return nil
}
