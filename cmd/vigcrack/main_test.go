package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vigcrack/internal/corpus"
	"github.com/katalvlaran/vigcrack/internal/synth"
	"github.com/katalvlaran/vigcrack/language"
	"github.com/katalvlaran/vigcrack/vigenere"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// writeCorpus writes two ciphertexts enciphered with a 5-symbol key; the
// plaintexts repeat a phrase every 185 = 5·37 symbols.
func writeCorpus(t *testing.T) (dir, key string) {
	t.Helper()
	model := language.Swedish()
	a := model.Alphabet()
	key, err := a.Decode(synth.Key(model, 5, 99))
	require.NoError(t, err)

	dir = t.TempDir()
	rng := synth.RNG(4)
	for i, name := range []string{"b.crypto", "a.crypto"} {
		var sb strings.Builder
		for b := 0; b < 12+i; b++ {
			s, err := a.Decode(synth.Plaintext(model, 175, rng))
			require.NoError(t, err)
			sb.WriteString(s)
			sb.WriteString("landetsnär")
		}
		c, err := vigenere.Encrypt(a, sb.String(), key)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(c+"\n"), 0o600))
	}

	return dir, key
}

func TestAnalyzeCommand(t *testing.T) {
	dir, key := writeCorpus(t)

	out, _, err := run(t, "", "analyze", "--crypto_path", dir, "--min_key", "2", "--max_key", "9")
	require.NoError(t, err)

	assert.Contains(t, out, "Key length: 5\n")
	assert.Contains(t, out, "Key: "+key+"\n")
	assert.Less(t, strings.Index(out, "--- a.crypto ---"), strings.Index(out, "--- b.crypto ---"))
	assert.Contains(t, out, "Runtime: ")
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	_, _, err := run(t, "", "analyze", "--crypto_path", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, _, err = run(t, "", "analyze", "--crypto_path", t.TempDir())
	assert.ErrorIs(t, err, corpus.ErrNoFiles)

	_, _, err = run(t, "", "analyze")
	assert.ErrorContains(t, err, "crypto_path")

	dir, _ := writeCorpus(t)
	_, _, err = run(t, "", "analyze", "--crypto_path", dir, "--min_key", "10", "--max_key", "3")
	assert.Error(t, err)
}

func TestDictionaryCommand(t *testing.T) {
	dir, key := writeCorpus(t)

	_, _, err := run(t, "", "dictionary", "--crypto_path", dir, "--min_key", "2", "--max_key", "6")
	assert.ErrorContains(t, err, "vocabulary")

	vocabPath := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(vocabPath, []byte(`{"landet": 5, "snär": 1, "när": 9}`), 0o600))

	out, _, err := run(t, "", "dictionary", "--crypto_path", dir, "--min_key", "2", "--max_key", "6", "--vocabulary", vocabPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Key length: 5\n")
	assert.Contains(t, out, "Key: "+key+"\n")
}

func TestEncryptDecryptCommands(t *testing.T) {
	enc, _, err := run(t, "Hej på dig!\n", "encrypt", "--key", "nyckel")
	require.NoError(t, err)

	dec, _, err := run(t, enc, "decrypt", "--key", "nyckel")
	require.NoError(t, err)
	assert.Equal(t, "hejpådig\n", dec)
}

func TestEncryptCommand_RandomKey(t *testing.T) {
	out1, key1, err := run(t, "abcdef", "encrypt", "--key-length", "4", "--seed", "3")
	require.NoError(t, err)
	out2, key2, err := run(t, "abcdef", "encrypt", "--key-length", "4", "--seed", "3")
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.Equal(t, key1, key2)
	assert.True(t, strings.HasPrefix(key1, "key: "))

	_, _, err = run(t, "abc", "encrypt")
	assert.Error(t, err)
}

func TestRoot_EnvConfig(t *testing.T) {
	a := &app{model: language.Swedish(), lookup: func(k string) (string, bool) {
		if k == "VIGCRACK_MIN_KEY" {
			return "7", true
		}
		return "", false
	}}
	analyze := newAnalyzeCmd(a)
	require.NoError(t, analyze.ParseFlags([]string{"--max_key", "30"}))
	require.NoError(t, a.load(analyze))

	assert.Equal(t, 7, a.cfg.MinKey)
	assert.Equal(t, 30, a.cfg.MaxKey)
	assert.NotNil(t, a.log)
}
