// Package cmd is for command line interactions with the genome_buddy application
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genome_buddy_go/benchmark"
	"genome_buddy_go/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	cfg        config.Config
	logger     *log.Logger
	configPath string
}

// NewRootCmd builds the genome_buddy command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use: "genome_buddy",
		Short: `Descriptive statistics for FASTA nucleotide files.
Count records, find length extremes, open reading frames and repeated k-mers`,
		Version:           config.Main_version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("log_level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("benchmark", false, "log run time and memory usage of the tool")

	rootCmd.AddCommand(
		newAnalyzeCmd(a),
		newFastaOverviewCmd(a),
		newORFFinderCmd(a),
		newKmerAnalyzerCmd(a),
		newRanDNAGenCmd(a),
		newCheckCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// setup merges flags, environment and config file into a.cfg and creates
// the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.Init(a.v, a.configPath); err != nil {
		return err
	}
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	cfg, err := config.NewConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "genome_buddy",
	})
	level, err := log.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		a.logger.SetLevel(log.InfoLevel)
		a.logger.Warn("unknown log_level, defaulting to info", "provided", cfg.Log.Level)
	} else {
		a.logger.SetLevel(level)
	}

	a.logger.Debug("loaded config",
		"config_file", a.configPath,
		"frame", cfg.ORF.Frame,
		"id", cfg.ORF.SeqID,
		"repeat_len", cfg.Repeats.Length,
		"benchmark", cfg.Benchmark,
	)
	return nil
}

// explicit reports whether key was given as a flag, in the environment or
// in the config file rather than left at its default.
func (a *app) explicit(cmd *cobra.Command, key string) bool {
	if cmd.Flags().Changed(key) || a.v.InConfig(key) {
		return true
	}
	_, ok := os.LookupEnv(config.EnvKey(key))
	return ok
}

// run executes f, wrapped in a benchmark when requested.
func (a *app) run(cmd *cobra.Command, args []string, f func() error) error {
	if !a.cfg.Benchmark {
		return f()
	}
	label := strings.TrimSpace(fmt.Sprintf("genome_buddy %s %s", cmd.Name(), strings.Join(args, " ")))
	return benchmark.Run(a.logger, label, f)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.NewWithOptions(os.Stderr, log.Options{Prefix: "genome_buddy"}).Fatal(err)
	}
}
