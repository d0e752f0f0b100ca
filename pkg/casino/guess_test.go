package casino

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessString(t *testing.T) {
	testCases := []struct {
		g    Guess
		want string
	}{
		{GuessZero, "Zero"},
		{GuessDoubleZero, "DoubleZero"},
		{GuessR1, "R1"},
		{GuessR16, "R16"},
		{GuessR36, "R36"},
		{GuessRed, "Red"},
		{GuessBlack, "Black"},
		{GuessEven, "Even"},
		{GuessOdd, "Odd"},
		{GuessCol3, "Col3"},
		{GuessDozen1, "Dozen1"},
		{GuessLow, "Low"},
		{GuessHigh, "High"},
		{Guess(50), "Guess(50)"},
		{Guess(255), "Guess(255)"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.g.String())
	}
}

func TestGuessValid(t *testing.T) {
	for g := Guess(0); g <= GuessHigh; g++ {
		assert.True(t, g.Valid(), "guess %d", g)
	}
	assert.False(t, Guess(50).Valid())
	assert.False(t, Guess(255).Valid())
}

func TestGuessSurvivesCodecUnvalidated(t *testing.T) {
	// The wire type is a plain u8; out-of-range positions round-trip
	// rather than failing (interpretation is the program's business).
	p := &PlaceGuesses{Guesses: []RouletteGuess{{Guess: 200, Amount: 1}}}

	encoded, err := Encode(p)
	assert.NoError(t, err)

	decoded, err := DecodeInstruction(encoded)
	assert.NoError(t, err)
	assert.Equal(t, Guess(200), decoded.(*PlaceGuesses).Guesses[0].Guess)
}
