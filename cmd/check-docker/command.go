package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rusenback/check-docker/internal/collector"
	"github.com/rusenback/check-docker/internal/config"
	"github.com/rusenback/check-docker/internal/docker"
	"github.com/rusenback/check-docker/internal/logging"
	"github.com/rusenback/check-docker/internal/model"
	"github.com/rusenback/check-docker/internal/report"
)

type cliParams struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// run executes the check once and returns the process exit code. Every
// failure is reported as UNKNOWN.
func run(args []string, stdout, stderr io.Writer) int {
	code := model.StatusUnknown.ExitCode()

	cmd := rootCommand(stdout, stderr, &code)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(stdout, "%s - %v\n", model.StatusUnknown, err)
		return model.StatusUnknown.ExitCode()
	}
	return code
}

func rootCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	var params cliParams
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "check-docker",
		Short:         "Return result of a check to docker stats with nagios format",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), params)
			if err != nil {
				return err
			}

			out, exit, err := check(cmd.Context(), cfg, stderr)
			if err != nil {
				return err
			}

			fmt.Fprintln(stdout, out)
			*code = exit
			return nil
		},
	}

	// Usage output is not a check result and exits 0.
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		*code = 0
		defaultHelp(c, args)
	})

	flags := cmd.Flags()
	flags.StringVarP(&params.cfg.DockerSocket, "docker-socket", "s", defaults.DockerSocket, "path to docker socket file")
	flags.BoolVarP(&params.cfg.PerformanceData, "enable-performance-data", "a", defaults.PerformanceData, "enable output performance data")
	flags.DurationVarP(&params.cfg.Timeout, "timeout", "t", defaults.Timeout, "timeout for each request to the docker socket, 0 disables it")
	flags.StringVarP(&params.cfg.Format, "format", "f", defaults.Format, fmt.Sprintf("output format (%s or %s)", config.FormatNagios, config.FormatTable))
	flags.StringVarP(&params.configPath, "config", "c", "", "path to a yaml configuration file")
	flags.BoolVarP(&params.verbose, "verbose", "v", false, "write debug logs to stderr")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file, which is
// itself layered over the defaults.
func resolveConfig(flags *pflag.FlagSet, params cliParams) (config.Config, error) {
	cfg, err := config.Load(params.configPath)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("docker-socket") {
		cfg.DockerSocket = params.cfg.DockerSocket
	}
	if flags.Changed("enable-performance-data") {
		cfg.PerformanceData = params.cfg.PerformanceData
	}
	if flags.Changed("timeout") {
		cfg.Timeout = params.cfg.Timeout
	}
	if flags.Changed("format") {
		cfg.Format = params.cfg.Format
	}
	if params.verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, cfg.Validate()
}

// check collects the stats once and renders them in the configured format.
func check(ctx context.Context, cfg config.Config, stderr io.Writer) (string, int, error) {
	log := logging.New(stderr, cfg.LogLevel)

	client, err := docker.NewClient(cfg, log)
	if err != nil {
		return "", 0, err
	}
	defer client.Close()

	result, err := collector.New(client, log).Collect(ctx)
	if err != nil {
		return "", 0, err
	}

	if cfg.Format == config.FormatTable {
		out, exit := report.RenderTable(result)
		return out, exit, nil
	}
	return report.Render(result, cfg.PerformanceData)
}
