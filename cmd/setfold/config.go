package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/setfold/setfold"
	"github.com/spf13/pflag"
)

// Config file names probed in the working directory when --config is
// not given.
const (
	configFileName    = "setfold.yaml"
	configFileNameAlt = "setfold.yml"
)

const envPrefix = "SETFOLD_"

// options mirrors the configuration surface across config file,
// environment and flags.
type options struct {
	LHSColumns        []int `koanf:"lhs_columns"`
	RHSColumns        []int `koanf:"rhs_columns"`
	Merge             []int `koanf:"merge"`
	Normalize         bool  `koanf:"normalize"`
	TrailingDelimiter bool  `koanf:"trailing_delimiter"`
	Debug             bool  `koanf:"debug"`
}

func init() {
	registerFlags(rootCmd.PersistentFlags())
}

func registerFlags(fs *pflag.FlagSet) {
	fs.IntSliceP("lhs-columns", "1", nil,
		"Columns that key the lines of left operands, 0 based")
	fs.IntSliceP("rhs-columns", "2", nil,
		"Columns that key the lines of right operands, 0 based")
	fs.IntSliceP("merge", "m", nil,
		"Right operand columns that 'and' appends to matched lines")
	fs.BoolP("normalize", "n", false,
		"Strip all whitespace from comparison keys and upper-case them")
	fs.BoolP("trailing-delimiter", "t", false,
		"Terminate projected keys with a trailing '|'")
	fs.BoolP("debug", "d", false,
		"Trace evaluation steps to stderr")
	fs.String("config", "", "Config file (default: ./"+configFileName+")")
}

// loadConfig resolves the effective configuration. Precedence, lowest
// to highest: built-in defaults, config file, SETFOLD_* environment
// variables, command line flags.
func loadConfig(flags *pflag.FlagSet) (setfold.Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"normalize":          false,
		"trailing_delimiter": false,
		"debug":              false,
	}, "."), nil); err != nil {
		return setfold.Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}
	cfgFile, _ := flags.GetString("config")
	if cfgFile == "" {
		for _, name := range []string{configFileName, configFileNameAlt} {
			if _, err := os.Stat(name); err == nil {
				cfgFile = name
				break
			}
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return setfold.Config{}, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}
	// SETFOLD_LHS_COLUMNS -> lhs_columns
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return setfold.Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		// Only flags that were explicitly set override the rest.
		if !f.Changed {
			return "", nil
		}
		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return setfold.Config{}, fmt.Errorf("failed to load flags: %w", err)
	}
	var o options
	if err := k.Unmarshal("", &o); err != nil {
		return setfold.Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return setfold.Config{
		ColumnsLHS:    o.LHSColumns,
		ColumnsRHS:    o.RHSColumns,
		MergeColumns:  o.Merge,
		Normalize:     o.Normalize,
		TrailingDelim: o.TrailingDelimiter,
		Debug:         o.Debug,
	}, nil
}
