package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vigcrack/analysis"
	"github.com/katalvlaran/vigcrack/dictionary"
	"github.com/katalvlaran/vigcrack/internal/config"
	"github.com/katalvlaran/vigcrack/internal/logger"
	"github.com/katalvlaran/vigcrack/language"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	model  *language.Model
	lookup func(string) (string, bool)
}

func newRootCmd() *cobra.Command {
	a := &app{model: language.Swedish(), lookup: os.LookupEnv}

	root := &cobra.Command{
		Use:           "vigcrack",
		Short:         "Break Vigenère ciphertexts over the Swedish alphabet",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "Log format (text, json)")
	root.PersistentFlags().Int("concurrency", 0, "Parallel workers per stage (0 = GOMAXPROCS)")

	root.AddCommand(
		newAnalyzeCmd(a),
		newDictionaryCmd(a),
		newEncryptCmd(a),
		newDecryptCmd(a),
		newServeCmd(a),
	)

	return root
}

// load builds the configuration from the environment, then applies flags
// that were set explicitly.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.FromEnv(a.lookup)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("min_key") {
		cfg.MinKey, _ = flags.GetInt("min_key")
	}
	if flags.Changed("max_key") {
		cfg.MaxKey, _ = flags.GetInt("max_key")
	}
	if flags.Changed("vocabulary") {
		cfg.Vocabulary, _ = flags.GetString("vocabulary")
	}
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	return nil
}

func (a *app) engine() (*analysis.Engine, error) {
	return analysis.New(a.model,
		analysis.WithLogger(a.log),
		analysis.WithConcurrency(a.cfg.Concurrency),
		analysis.WithSubstringRange(a.cfg.SubstringMin, a.cfg.SubstringMax),
	)
}

// loadVocabulary reads a .json word→frequency object or a plain word list.
func loadVocabulary(path string) (*dictionary.Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return dictionary.LoadJSON(f)
	}

	return dictionary.LoadWords(f)
}
