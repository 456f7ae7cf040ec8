// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Viper,
// e.g. GENOME_BUDDY_FRAME.
const EnvPrefix = "GENOME_BUDDY"

var envKeyReplacer = strings.NewReplacer("-", "_")

// EnvKey returns the environment variable Viper reads for key.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))
}

// LogConfig controls the stderr logger
type LogConfig struct {
	// one of debug, info, warn, error
	Level string `mapstructure:"log_level"`
}

// ORFConfig is settings for the ORF finder
type ORFConfig struct {
	// reading frame, 1 to 3. 0 means ask on stdin
	Frame int `mapstructure:"frame"`

	// only scan the sequence with this ID
	SeqID string `mapstructure:"id"`

	// minimum ORF length in nucleotides
	MinLength int `mapstructure:"minlen"`

	// tsv, gff or fasta
	OutFmt string `mapstructure:"outfmt"`
}

// RepeatConfig is settings for repeat counting
type RepeatConfig struct {
	// k-mer length. 0 means ask on stdin
	Length int `mapstructure:"repeat_len"`

	// number of ranked repeats to print, 0 prints all
	Top int `mapstructure:"top"`
}

// Config is the root-level settings struct and is a mix
// of settings available in the config file, the environment
// and those available from the command line
type Config struct {
	Log       LogConfig    `mapstructure:",squash"`
	ORF       ORFConfig    `mapstructure:",squash"`
	Repeats   RepeatConfig `mapstructure:",squash"`
	Benchmark bool         `mapstructure:"benchmark"`
}

// SetDefaults registers the default value of every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("frame", 0)
	v.SetDefault("id", "")
	v.SetDefault("minlen", 0)
	v.SetDefault("outfmt", "tsv")
	v.SetDefault("repeat_len", 0)
	v.SetDefault("top", 10)
	v.SetDefault("benchmark", false)
}

// Init prepares v to read the environment and, when path is set, a config file.
func Init(v *viper.Viper, path string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// NewConfig returns a new Config struct populated by
// Viper settings
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return c, nil
}
