package main

import (
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// runConfig is the merged view of the config file and command line flags.
// Flags always win over file values.
type runConfig struct {
	Preset        string
	DisabledRules []string
	EntryPoints   []string
	TestRunner    string
}

// loadConfig reads .purets.yaml from the working directory, falling back
// to the user's home directory, then overlays any flags that were set.
func loadConfig(flags *pflag.FlagSet) (*runConfig, error) {
	v := viper.New()
	v.SetConfigName(".purets")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &runConfig{
		Preset:        v.GetString("preset"),
		DisabledRules: v.GetStringSlice("disabledRules"),
		EntryPoints:   v.GetStringSlice("entryPoints"),
		TestRunner:    v.GetString("testRunner"),
	}
	if flags.Changed("preset") {
		cfg.Preset, _ = flags.GetString("preset")
	}
	if flags.Changed("disable") {
		disabled, _ := flags.GetStringSlice("disable")
		cfg.DisabledRules = append(cfg.DisabledRules, disabled...)
	}
	if flags.Changed("entry") {
		entries, _ := flags.GetStringSlice("entry")
		cfg.EntryPoints = append(cfg.EntryPoints, entries...)
	}
	if flags.Changed("test-runner") {
		cfg.TestRunner, _ = flags.GetString("test-runner")
	}
	return cfg, nil
}

// isEntry reports whether the given path was flagged as an entry point.
// Entries may be given as exact paths or bare basenames.
func (c *runConfig) isEntry(path string) bool {
	clean := filepath.Clean(path)
	base := filepath.Base(clean)
	for _, e := range c.EntryPoints {
		if filepath.Clean(e) == clean || e == base {
			return true
		}
		if !strings.ContainsRune(e, filepath.Separator) && e == strings.TrimSuffix(base, filepath.Ext(base)) {
			return true
		}
	}
	return false
}
