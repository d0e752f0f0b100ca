package casino

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solcasino/casinowire/pkg/codec"
)

// Conformance vectors: exact hex for records whose layout is the
// binding contract with the external program.
func TestConformanceVectors(t *testing.T) {
	testCases := []struct {
		name   string
		record Record
		hex    string
	}{
		{
			name:   "Initialize",
			record: &Initialize{},
			hex:    "00",
		},
		{
			name:   "Sample tolerance 5",
			record: &Sample{Tolerance: 5},
			hex:    "010500000000000000",
		},
		{
			name:   "InitializeHoneypot",
			record: &InitializeHoneypot{TickSize: 1, MaxBetSize: 2, MinimumBankSize: 3},
			hex:    "02010000000000000002000000000000000300000000000000",
		},
		{
			name:   "WithdrawFromHoneypot",
			record: &WithdrawFromHoneypot{AmountToWithdraw: 256},
			hex:    "030001000000000000",
		},
		{
			name:   "InitializeGuessAccount",
			record: &InitializeGuessAccount{},
			hex:    "04",
		},
		{
			name: "PlaceGuesses two bets",
			record: &PlaceGuesses{Guesses: []RouletteGuess{
				{Guess: 17, Amount: 500},
				{Guess: 0, Amount: 1_000_000},
			}},
			hex: "050200000011f4010000000000000040420f0000000000",
		},
		{
			name:   "Spin tolerance 12",
			record: &Spin{Tolerance: 12},
			hex:    "060c00000000000000",
		},
		{
			name:   "TryCancel",
			record: &TryCancel{},
			hex:    "07",
		},
		{
			name:   "RouletteGuess standalone",
			record: &RouletteGuess{Guess: GuessR16, Amount: 500},
			hex:    "11f401000000000000",
		},
		{
			name:   "RNG",
			record: &RNG{Version: VersionRNGV1, Sample: 500, Slot: 2},
			hex:    "02f4010000000000000200000000000000",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			want, err := hex.DecodeString(tc.hex)
			require.NoError(t, err)

			encoded, err := Encode(tc.record)
			require.NoError(t, err)
			assert.Equal(t, want, encoded, "encode mismatch")

			decoded, err := Decode(tc.record.RecordType(), want)
			require.NoError(t, err)
			assert.Equal(t, tc.record, decoded, "decode mismatch")
		})
	}
}

func TestDecodeUnknownRecordType(t *testing.T) {
	_, err := Decode("Blackjack", []byte{0x00})
	assert.True(t, codec.IsCode(err, codec.CodeUnknownRecordType), "got %v", err)
}

func TestEncodeDeterministic(t *testing.T) {
	h := sampleHoneypot()

	first, err := Encode(h)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Encode(h)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEveryRecordTypeRegistered(t *testing.T) {
	for rt := range constructors {
		_, err := codec.Lookup(rt)
		assert.NoError(t, err, "record type %s has a constructor but no schema", rt)
	}
}
