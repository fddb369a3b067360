package mic_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/vigcrack/internal/synth"
	"github.com/katalvlaran/vigcrack/language"
	"github.com/katalvlaran/vigcrack/mic"
)

var sinkRec mic.Recovery

func BenchmarkRecoverKey(b *testing.B) {
	model := language.Swedish()
	text := synth.Plaintext(model, 20000, synth.RNG(1))
	b.ReportAllocs()
	for _, m := range []int{7, 60, 250} {
		b.Run(fmt.Sprintf("m=%d", m), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rec, err := mic.RecoverKey(context.Background(), [][]int{text}, m, model)
				if err != nil {
					b.Fatal(err)
				}
				sinkRec = rec
			}
		})
	}
}
