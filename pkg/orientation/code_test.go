package orientation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCodeFor verifies the letter-to-code mapping, including rejected tokens
func TestCodeFor(t *testing.T) {
	testCases := []struct {
		letter   byte
		expected Code
	}{
		{'R', R2L},
		{'L', L2R},
		{'P', P2A},
		{'A', A2P},
		{'I', I2S},
		{'S', S2I},
		{'X', Illegal},
		{'r', Illegal},
		{'a', Illegal},
		{0, Illegal},
		{' ', Illegal},
		{'Z', Illegal},
	}

	for _, tc := range testCases {
		result := CodeFor(tc.letter)
		if result != tc.expected {
			t.Errorf("CodeFor(%q): expected %v, got %v", tc.letter, tc.expected, result)
		}
	}
}

func TestCodeForDistinct(t *testing.T) {
	seen := make(map[Code]byte)
	for _, letter := range []byte("RLPAIS") {
		c := CodeFor(letter)
		assert.True(t, c.Valid(), "code for %q", letter)
		if prev, dup := seen[c]; dup {
			t.Errorf("letters %q and %q share code %v", prev, letter, c)
		}
		seen[c] = letter
		assert.Equal(t, letter, c.Letter())
	}
	assert.Len(t, seen, 6)
}

func TestCodeForAllBytes(t *testing.T) {
	valid := 0
	for b := 0; b < 256; b++ {
		if CodeFor(byte(b)).Valid() {
			valid++
		}
	}
	assert.Equal(t, 6, valid)
}

func TestCodeForRepeatable(t *testing.T) {
	for b := 0; b < 256; b++ {
		first := CodeFor(byte(b))
		if again := CodeFor(byte(b)); again != first {
			t.Errorf("CodeFor(%q): first call %v, second call %v", byte(b), first, again)
		}
	}
}

func TestLegacyValues(t *testing.T) {
	assert.Equal(t, Code(0), R2L)
	assert.Equal(t, Code(1), L2R)
	assert.Equal(t, Code(2), P2A)
	assert.Equal(t, Code(3), A2P)
	assert.Equal(t, Code(4), I2S)
	assert.Equal(t, Code(5), S2I)
	assert.Equal(t, Code(7), Illegal)
}

func TestPairAndOpposite(t *testing.T) {
	testCases := []struct {
		code     Code
		pair     Pair
		opposite Code
	}{
		{R2L, PairRL, L2R},
		{L2R, PairRL, R2L},
		{P2A, PairAP, A2P},
		{A2P, PairAP, P2A},
		{I2S, PairIS, S2I},
		{S2I, PairIS, I2S},
		{Illegal, PairNone, Illegal},
		{Code(6), PairNone, Illegal},
		{Code(-1), PairNone, Illegal},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.pair, tc.code.Pair(), "Pair of %v", tc.code)
		assert.Equal(t, tc.opposite, tc.code.Opposite(), "Opposite of %v", tc.code)
	}
}

func TestVector(t *testing.T) {
	testCases := []struct {
		code     Code
		expected [3]float64
	}{
		{R2L, [3]float64{1, 0, 0}},
		{L2R, [3]float64{-1, 0, 0}},
		{A2P, [3]float64{0, 1, 0}},
		{P2A, [3]float64{0, -1, 0}},
		{I2S, [3]float64{0, 0, 1}},
		{S2I, [3]float64{0, 0, -1}},
		{Illegal, [3]float64{}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.code.Vector(), "Vector of %v", tc.code)
	}
}

func TestCodeStrings(t *testing.T) {
	assert.Equal(t, "R2L", R2L.String())
	assert.Equal(t, "S2I", S2I.String())
	assert.Equal(t, "Illegal", Illegal.String())
	assert.Equal(t, byte('?'), Illegal.Letter())
	assert.Equal(t, "A/P", PairAP.String())
	assert.Equal(t, "none", PairNone.String())
}

func BenchmarkCodeFor(b *testing.B) {
	letters := []byte("RLPAISXr")
	for i := 0; i < b.N; i++ {
		_ = CodeFor(letters[i%len(letters)])
	}
}
