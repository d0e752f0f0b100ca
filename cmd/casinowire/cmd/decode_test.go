package cmd

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDecodeInstructionCommand(t *testing.T) {
	out, err := execute(t, "decode", "instruction",
		"050200000011f4010000000000000040420f0000000000")
	require.NoError(t, err)
	assert.Contains(t, out, `"recordType": "PlaceGuesses"`)
	assert.Contains(t, out, `"guess": 17`)
	assert.Contains(t, out, `"amount": 500`)
	assert.Contains(t, out, `"amount": 1000000`)
}

func TestDecodeNamedRecordCommand(t *testing.T) {
	out, err := execute(t, "decode", "RNG", "02f4010000000000000200000000000000")
	require.NoError(t, err)
	assert.Contains(t, out, `"recordType": "RNG"`)
	assert.Contains(t, out, `"sample": 500`)
	assert.Contains(t, out, `"slot": 2`)
}

func TestDecodeAcceptsBase64(t *testing.T) {
	raw, err := hex.DecodeString("010500000000000000")
	require.NoError(t, err)

	out, err := execute(t, "decode", "instruction", base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Contains(t, out, `"recordType": "Sample"`)
	assert.Contains(t, out, `"tolerance": 5`)
}

func TestDecodeTruncatedBuffer(t *testing.T) {
	_, err := execute(t, "decode", "Honeypot", "03fffe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BufferUnderrun")
}

func TestDecodeUnknownRecordType(t *testing.T) {
	_, err := execute(t, "decode", "Blackjack", "00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UnknownRecordType")
}

func TestDecodeGarbageData(t *testing.T) {
	_, err := execute(t, "decode", "RNG", "!!not-an-encoding!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither hex nor base64")
}

func TestTypesCommand(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "Honeypot (99 bytes)")
	assert.Contains(t, out, "RNG (17 bytes)")
	assert.Contains(t, out, "LockedGuess (595 bytes)")
	assert.Contains(t, out, "PlaceGuesses (variable, at least 5 bytes)")
	assert.Contains(t, out, "vector of RouletteGuess")
}
