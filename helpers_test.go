package huffcodec

import (
	"math/rand"
)

const (
	randSeed   = 0x5a025ca11825a5e7
	iterations = 25
)

// randomFrequencyTable returns a table with between 1 and NumSymbols
// distinct symbols.
func randomFrequencyTable(rng *rand.Rand) *FrequencyTable {
	counts := make([]uint64, NumSymbols)
	distinct := 1 + rng.Intn(NumSymbols)
	for _, symbol := range rng.Perm(NumSymbols)[:distinct] {
		counts[symbol] = 1 + uint64(rng.Intn(1000))
	}
	return NewFrequencyTable(counts)
}

// randomInput returns between 1 and 4096 bytes drawn from a random skewed
// alphabet.
func randomInput(rng *rand.Rand) []byte {
	alphabet := make([]byte, 1+rng.Intn(NumSymbols))
	for i := range alphabet {
		alphabet[i] = byte(rng.Intn(NumSymbols))
	}
	data := make([]byte, 1+rng.Intn(4096))
	for i := range data {
		// squaring the index skews the distribution towards the front
		x := rng.Float64()
		data[i] = alphabet[int(x*x*float64(len(alphabet)))]
	}
	return data
}
