package cli

import (
	"fmt"
	"io"

	"github.com/scbrown/codename/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Show or modify configuration",
		Long: `View or change codename defaults stored in ~/.codename/config.toml.

With no arguments, shows all configuration settings.
With one argument, shows the value of that key.
With two arguments, sets the key to the given value. An empty value unsets it.

Settings:
  num        Default number of words
  delimiter  Default delimiter (one of - , _ | ; :)
  dict_path  Dictionary file (CODENAME_DICT and --dict take precedence)`,
		Example: `  codename config
  codename config num
  codename config num 3
  codename config delimiter _
  codename config dict_path /usr/share/dict/american-english`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			switch len(args) {
			case 0:
				return showConfig(out, cfg)
			case 1:
				return getConfig(out, cfg, args[0])
			default:
				return setConfig(out, cfg, args[0], args[1])
			}
		},
	}
}

func showConfig(w io.Writer, cfg *config.Config) error {
	tbl := NewTable(w, "KEY", "VALUE")
	for _, key := range config.ValidKeys() {
		val, _ := cfg.Get(key)
		if val == "" {
			val = "(not set)"
		}
		tbl.Row(key, val)
	}
	return tbl.Flush()
}

func getConfig(w io.Writer, cfg *config.Config, key string) error {
	val, err := cfg.Get(key)
	if err != nil {
		return err
	}
	if val == "" {
		return nil
	}
	fmt.Fprintln(w, val)
	return nil
}

func setConfig(w io.Writer, cfg *config.Config, key, value string) error {
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s = %s\n", key, value)
	return nil
}
