package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vigcrack/vigenere"
)

// readInput returns the content of path, or of stdin when path is empty.
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

func newEncryptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with a given or random key",
		Long: `Encrypt --in (or stdin). Input is lowercased and reduced to alphabet
symbols first. With --key-length a random key is drawn and printed to stderr.

  vigcrack encrypt --in plain.txt --key hemlig
  vigcrack encrypt --in plain.txt --key-length 40 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, _ := cmd.Flags().GetString("in")
			key, _ := cmd.Flags().GetString("key")
			n, _ := cmd.Flags().GetInt("key-length")
			seed, _ := cmd.Flags().GetInt64("seed")

			text, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			alpha := a.model.Alphabet()
			if key == "" {
				if n < 1 {
					return fmt.Errorf("one of --key or --key-length is required")
				}
				var rng *rand.Rand
				if cmd.Flags().Changed("seed") {
					rng = rand.New(rand.NewSource(seed))
				}
				if key, err = vigenere.RandomKey(alpha, n, rng); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "key: %s\n", key)
			}
			out, err := vigenere.Encrypt(alpha, alpha.Clean(text), key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().String("in", "", "Input file (default: stdin)")
	cmd.Flags().String("key", "", "Key")
	cmd.Flags().Int("key-length", 0, "Draw a random key of this length")
	cmd.Flags().Int64("seed", 0, "Seed for the random key")

	return cmd
}

func newDecryptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt text with a known key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, _ := cmd.Flags().GetString("in")
			key, _ := cmd.Flags().GetString("key")

			text, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			out, err := vigenere.Decrypt(a.model.Alphabet(), text, key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().String("in", "", "Input file (default: stdin)")
	cmd.Flags().String("key", "", "Key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
