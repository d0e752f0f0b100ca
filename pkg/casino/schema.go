package casino

import "github.com/solcasino/casinowire/pkg/codec"

// Record type identifiers for every entity the program encodes.
const (
	RecordInitialize             codec.RecordType = "Initialize"
	RecordSample                 codec.RecordType = "Sample"
	RecordInitializeHoneypot     codec.RecordType = "InitializeHoneypot"
	RecordWithdrawFromHoneypot   codec.RecordType = "WithdrawFromHoneypot"
	RecordInitializeGuessAccount codec.RecordType = "InitializeGuessAccount"
	RecordPlaceGuesses           codec.RecordType = "PlaceGuesses"
	RecordSpin                   codec.RecordType = "Spin"
	RecordTryCancel              codec.RecordType = "TryCancel"
	RecordRouletteGuess          codec.RecordType = "RouletteGuess"
	RecordHoneypot               codec.RecordType = "Honeypot"
	RecordRNG                    codec.RecordType = "RNG"
	RecordLockedGuess            codec.RecordType = "LockedGuess"
)

// Wire sizes of the fixed-layout account states.
const (
	HoneypotSize    = 1 + 1 + 1 + 32 + 32 + 8 + 8 + 8 + 8 // 99
	RNGSize         = 1 + 8 + 8                            // 17
	LockedGuessSize = 1 + 1 + 32 + 32 + 8 + 1 + 8 + 8*64  // 595
)

// The schema table is the binding wire contract with the external
// program; field order defines the byte layout. Declared once at init
// and immutable for the life of the process.
func init() {
	codec.MustRegister(codec.Schema{Type: RecordInitialize, Fields: []codec.Field{
		{Name: "discriminant", Type: codec.TypeU8},
	}})
	codec.MustRegister(codec.Schema{Type: RecordSample, Fields: []codec.Field{
		{Name: "discriminant", Type: codec.TypeU8},
		{Name: "tolerance", Type: codec.TypeU64},
	}})
	codec.MustRegister(codec.Schema{Type: RecordInitializeHoneypot, Fields: []codec.Field{
		{Name: "discriminant", Type: codec.TypeU8},
		{Name: "tickSize", Type: codec.TypeU64},
		{Name: "maxBetSize", Type: codec.TypeU64},
		{Name: "minimumBankSize", Type: codec.TypeU64},
	}})
	codec.MustRegister(codec.Schema{Type: RecordWithdrawFromHoneypot, Fields: []codec.Field{
		{Name: "discriminant", Type: codec.TypeU8},
		{Name: "amountToWithdraw", Type: codec.TypeU64},
	}})
	codec.MustRegister(codec.Schema{Type: RecordInitializeGuessAccount, Fields: []codec.Field{
		{Name: "discriminant", Type: codec.TypeU8},
	}})
	codec.MustRegister(codec.Schema{Type: RecordPlaceGuesses, Fields: []codec.Field{
		{Name: "discriminant", Type: codec.TypeU8},
		{Name: "guesses", Type: codec.TypeVector, Elem: RecordRouletteGuess},
	}})
	codec.MustRegister(codec.Schema{Type: RecordSpin, Fields: []codec.Field{
		{Name: "discriminant", Type: codec.TypeU8},
		{Name: "tolerance", Type: codec.TypeU64},
	}})
	codec.MustRegister(codec.Schema{Type: RecordTryCancel, Fields: []codec.Field{
		{Name: "discriminant", Type: codec.TypeU8},
	}})
	codec.MustRegister(codec.Schema{Type: RecordRouletteGuess, Fields: []codec.Field{
		{Name: "guess", Type: codec.TypeU8},
		{Name: "amount", Type: codec.TypeU64},
	}})
	codec.MustRegister(codec.Schema{Type: RecordHoneypot, Fields: []codec.Field{
		{Name: "version", Type: codec.TypeU8},
		{Name: "honeypotBumpSeed", Type: codec.TypeU8},
		{Name: "vaultBumpSeed", Type: codec.TypeU8},
		{Name: "owner", Type: codec.TypePubkey},
		{Name: "mint", Type: codec.TypePubkey},
		{Name: "tickSize", Type: codec.TypeU64},
		{Name: "maxAmount", Type: codec.TypeU64},
		{Name: "minimumBankSize", Type: codec.TypeU64},
		{Name: "owedAmount", Type: codec.TypeU64},
	}})
	codec.MustRegister(codec.Schema{Type: RecordRNG, Fields: []codec.Field{
		{Name: "version", Type: codec.TypeU8},
		{Name: "sample", Type: codec.TypeU64},
		{Name: "slot", Type: codec.TypeU64},
	}})
	codec.MustRegister(codec.Schema{Type: RecordLockedGuess, Fields: []codec.Field{
		{Name: "version", Type: codec.TypeU8},
		{Name: "bumpSeed", Type: codec.TypeU8},
		{Name: "owner", Type: codec.TypePubkey},
		{Name: "vault", Type: codec.TypePubkey},
		{Name: "slot", Type: codec.TypeU64},
		{Name: "active", Type: codec.TypeBool},
		{Name: "activeSize", Type: codec.TypeU64},
		{Name: "guesses", Type: codec.TypeU64Array, Len: 64},
	}})
}
