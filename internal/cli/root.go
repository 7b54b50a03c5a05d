// Package cli defines the cobra command tree for the codename CLI.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/scbrown/codename/internal/codename"
	"github.com/scbrown/codename/internal/config"
	"github.com/scbrown/codename/internal/words"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dictEnv overrides the dictionary path when --dict is not given.
const dictEnv = "CODENAME_DICT"

var (
	// configPath is the path to the config file, settable for testing.
	configPath = config.Path()

	// randSource supplies randomness to the generator, settable for testing.
	randSource codename.Source = codename.DefaultSource()
)

type rootOptions struct {
	num       string
	delimiter string
	dictPath  string
	verbose   bool
}

// newRootCmd builds the top-level codename command with its subcommands.
func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "codename [-n NUM] [-d DELIM]",
		Short: "Generate random codenames from dictionary words",
		Long: `codename picks random words from the system dictionary and joins them
with a delimiter.

Words are read from /usr/share/dict/words (override with --dict, the
CODENAME_DICT environment variable, or "codename config dict_path").
Only lines of 3 or more letters are used, lowercased.`,
		Example: `  # Two words joined by "-"
  codename

  # Four words joined by "_"
  codename -n 4 -d _

  # Change the defaults
  codename config num 3
  codename config delimiter :`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       versionString(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	f := cmd.Flags()
	f.StringVarP(&o.num, "num", "n", strconv.Itoa(codename.DefaultNumWords), "number of words to join")
	f.StringVarP(&o.delimiter, "delimiter", "d", codename.DefaultDelimiter, "delimiter to use between words")
	f.StringVar(&o.dictPath, "dict", words.DefaultPath, "path to the dictionary file")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDelimitersCmd())
	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd.Flags(), o, cfg)
	if err != nil {
		return err
	}

	path := resolveDictPath(cmd.Flags(), o, cfg)
	logger.Debug("loading dictionary", "path", path)
	list, err := words.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("dictionary loaded", "path", path, "words", len(list))

	fmt.Fprintln(cmd.OutOrStdout(), codename.Generate(randSource, list, opts.NumWords, opts.Delimiter))
	return nil
}

// resolveOptions applies config defaults to flags that were not given and
// validates the result. Config values shadowed by a flag are not checked.
func resolveOptions(flags *pflag.FlagSet, o *rootOptions, cfg *config.Config) (codename.Options, error) {
	n, err := codename.ParseNum(o.num)
	if !flags.Changed("num") && cfg.Num != 0 {
		n, err = codename.ParseNum(strconv.Itoa(cfg.Num))
		if err != nil {
			err = fmt.Errorf("config num: %w", err)
		}
	}
	if err != nil {
		return codename.Options{}, err
	}

	delim := o.delimiter
	fromConfig := !flags.Changed("delimiter") && cfg.Delimiter != ""
	if fromConfig {
		delim = cfg.Delimiter
	}
	opts := codename.Options{NumWords: n, Delimiter: delim}
	if err := opts.Validate(); err != nil {
		if fromConfig {
			err = fmt.Errorf("config delimiter: %w", err)
		}
		return codename.Options{}, err
	}
	return opts, nil
}

// resolveDictPath picks the dictionary path: flag, then environment, then
// config file, then the system default.
func resolveDictPath(flags *pflag.FlagSet, o *rootOptions, cfg *config.Config) string {
	if flags.Changed("dict") {
		return o.dictPath
	}
	if env := os.Getenv(dictEnv); env != "" {
		return env
	}
	if cfg.DictPath != "" {
		return cfg.DictPath
	}
	return o.dictPath
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
