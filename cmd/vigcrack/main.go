// Command vigcrack recovers keys and plaintext of Vigenère ciphertexts over
// the Swedish alphabet.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
