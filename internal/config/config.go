package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// PreviewRows caps how many normalized rows any preview may display.
	PreviewRows int `mapstructure:"preview_rows" yaml:"preview_rows"`
	// CSVDelimiter forces the CSV field separator: "," | ";" | "tab".
	// Empty auto-detects from the extension.
	CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	// LatestYearDefault preselects the most recent available year when no
	// year filter is given.
	LatestYearDefault bool `mapstructure:"latest_year_default" yaml:"latest_year_default"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.boostme/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".boostme")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOSTME")
	v.AutomaticEnv()

	v.SetDefault("preview_rows", 200)
	v.SetDefault("csv_delimiter", "")
	v.SetDefault("latest_year_default", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".boostme")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
