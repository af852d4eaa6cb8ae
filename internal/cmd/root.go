// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/skel/internal/config"
	"github.com/opmodel/skel/internal/output"
	"github.com/opmodel/skel/internal/version"
)

// NewRootCmd creates the root command for the skel CLI.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	// Populated in PersistentPreRunE, before any RunE reads it.
	cfg := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "skel",
		Short: "Project template generator",
		Long: `skel generates new projects from embedded templates.

Answers to the template's questions decide which parts of the template
are kept: CI workflows, documentation, publishing, coverage, and container
tooling are removed from the generated project when not wanted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, globalFlags{
				config:     configFlag,
				verbose:    verboseFlag,
				timestamps: timestampsFlag,
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: SKEL_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd(cfg))
	rootCmd.AddCommand(NewPruneCmd(cfg))
	rootCmd.AddCommand(NewVerifyCmd(cfg))
	rootCmd.AddCommand(NewTemplateCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

type globalFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// initializeGlobals loads configuration into cfg and sets up logging.
func initializeGlobals(c *cobra.Command, cfg *config.GlobalConfig, flags globalFlags) error {
	loaded, err := config.LoadGlobalConfig(config.LoaderOptions{
		ConfigFlag: flags.config,
		Verbose:    flags.verbose,
	})
	if err != nil {
		// Keep going so config init and vet can still run.
		path, _ := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
		loaded = &config.GlobalConfig{
			Config:     &config.Config{},
			ConfigPath: path.ConfigPath,
			Verbose:    flags.verbose,
			LoadErr:    err,
		}
	}
	*cfg = *loaded

	logCfg := output.LogConfig{Verbose: flags.verbose}

	// flag (if explicitly set) > config > default (nil = on)
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Config.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Config.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if cfg.LoadErr != nil {
		output.Debug("config load error", "error", cfg.LoadErr)
	}

	info := version.Get()
	output.Debug("skel started",
		"version", info.Version,
		"config", cfg.ConfigPath,
		"replayDir", cfg.ReplayDir,
	)

	return nil
}
