package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vigcrack/analysis"
	"github.com/katalvlaran/vigcrack/internal/corpus"
)

func newDictionaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Rank every key length by vocabulary coverage of the decryption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("crypto_path")
			files, err := corpus.ReadDir(dir)
			if err != nil {
				return err
			}
			if a.cfg.Vocabulary == "" {
				return fmt.Errorf("--vocabulary: %w", analysis.ErrVocabularyUnavailable)
			}
			vocab, err := loadVocabulary(a.cfg.Vocabulary)
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			start := time.Now()
			rep, err := e.AnalyzeDictionary(cmd.Context(), corpus.Texts(files), a.cfg.MinKey, a.cfg.MaxKey, vocab)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Key length: %d\n", rep.Best.Length)
			fmt.Fprintf(w, "Key: %s\n", rep.Best.Key)
			fmt.Fprintf(w, "Score: %d\n", rep.Best.Score)
			for i, r := range rep.Results {
				fmt.Fprintf(w, "\n--- %s ---\n%s\n", files[i].Name, r.Plaintext)
			}
			fmt.Fprintf(w, "\nRuntime: %s\n", time.Since(start).Round(time.Millisecond))

			return nil
		},
	}
	addRangeFlags(cmd)
	cmd.Flags().String("vocabulary", "", "Vocabulary file (.json word→frequency object or one word per line)")

	return cmd
}
