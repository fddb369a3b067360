package friedman_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vigcrack/friedman"
	"github.com/katalvlaran/vigcrack/internal/synth"
	"github.com/katalvlaran/vigcrack/language"
)

// ExampleSelect recovers the key length of a synthetic Swedish ciphertext.
func ExampleSelect() {
	model := language.Swedish()
	key := synth.Key(model, 5, 11)
	ciphers, _ := synth.Corpus(model, key, []int{3000}, 5)

	text, _ := model.Alphabet().Encode(ciphers[0])
	sel, err := friedman.Select(context.Background(), [][]int{text}, model, 2, 9, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("key length:", sel.Length, "exhaustive:", sel.Exhaustive)
	// Output:
	// key length: 5 exhaustive: true
}

// ExampleIndexOfCoincidence shows the degenerate and trivial cases.
func ExampleIndexOfCoincidence() {
	fmt.Println(friedman.IndexOfCoincidence([]int{7}, 29))
	fmt.Println(friedman.IndexOfCoincidence([]int{7, 7}, 29))
	// Output:
	// 0
	// 1
}
