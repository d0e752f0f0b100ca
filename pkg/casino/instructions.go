package casino

import (
	"fmt"

	"github.com/solcasino/casinowire/pkg/codec"
)

// Instruction discriminants, fixed by the external program.
const (
	TagInitialize             uint8 = 0
	TagSample                 uint8 = 1
	TagInitializeHoneypot     uint8 = 2
	TagWithdrawFromHoneypot   uint8 = 3
	TagInitializeGuessAccount uint8 = 4
	TagPlaceGuesses           uint8 = 5
	TagSpin                   uint8 = 6
	TagTryCancel              uint8 = 7
)

// Instruction is the closed set of instruction-argument variants. Each
// variant encodes its fixed discriminant byte first, followed by its
// payload fields.
type Instruction interface {
	Record
	Discriminant() uint8
}

var instructionTypes = map[uint8]codec.RecordType{
	TagInitialize:             RecordInitialize,
	TagSample:                 RecordSample,
	TagInitializeHoneypot:     RecordInitializeHoneypot,
	TagWithdrawFromHoneypot:   RecordWithdrawFromHoneypot,
	TagInitializeGuessAccount: RecordInitializeGuessAccount,
	TagPlaceGuesses:           RecordPlaceGuesses,
	TagSpin:                   RecordSpin,
	TagTryCancel:              RecordTryCancel,
}

// DecodeInstruction dispatches on the leading discriminant byte and
// decodes the matching variant.
func DecodeInstruction(buf []byte) (Instruction, error) {
	if len(buf) < 1 {
		return nil, &codec.Error{
			Kind:    codec.KindCodec,
			Code:    codec.CodeBufferUnderrun,
			Field:   "discriminant",
			Message: "empty instruction buffer",
		}
	}
	rt, ok := instructionTypes[buf[0]]
	if !ok {
		return nil, &codec.Error{
			Kind:    codec.KindCodec,
			Code:    codec.CodeInvalidDiscriminant,
			Field:   "discriminant",
			Message: fmt.Sprintf("no instruction variant with discriminant %d", buf[0]),
		}
	}
	rec, err := Decode(rt, buf)
	if err != nil {
		return nil, err
	}
	return rec.(Instruction), nil
}

// Initialize sets up the program's RNG account.
type Initialize struct{}

func (Initialize) RecordType() codec.RecordType { return RecordInitialize }
func (Initialize) Discriminant() uint8          { return TagInitialize }

func (Initialize) fields() codec.Fields {
	return codec.Fields{"discriminant": TagInitialize}
}

func newInitialize(f codec.Fields) (*Initialize, error) {
	fr, err := newFieldReader(RecordInitialize, f)
	if err != nil {
		return nil, err
	}
	fr.discriminant(TagInitialize)
	if fr.err != nil {
		return nil, fr.err
	}
	return &Initialize{}, nil
}

// Sample requests a fresh RNG sample within a slot tolerance.
type Sample struct {
	Tolerance uint64 `json:"tolerance"`
}

func (*Sample) RecordType() codec.RecordType { return RecordSample }
func (*Sample) Discriminant() uint8          { return TagSample }

func (s *Sample) fields() codec.Fields {
	return codec.Fields{
		"discriminant": TagSample,
		"tolerance":    s.Tolerance,
	}
}

func newSample(f codec.Fields) (*Sample, error) {
	fr, err := newFieldReader(RecordSample, f)
	if err != nil {
		return nil, err
	}
	fr.discriminant(TagSample)
	s := &Sample{Tolerance: fr.u64("tolerance")}
	if fr.err != nil {
		return nil, fr.err
	}
	return s, nil
}

// InitializeHoneypot creates a honeypot account with its betting
// parameters.
type InitializeHoneypot struct {
	TickSize        uint64 `json:"tickSize"`
	MaxBetSize      uint64 `json:"maxBetSize"`
	MinimumBankSize uint64 `json:"minimumBankSize"`
}

func (*InitializeHoneypot) RecordType() codec.RecordType { return RecordInitializeHoneypot }
func (*InitializeHoneypot) Discriminant() uint8          { return TagInitializeHoneypot }

func (i *InitializeHoneypot) fields() codec.Fields {
	return codec.Fields{
		"discriminant":    TagInitializeHoneypot,
		"tickSize":        i.TickSize,
		"maxBetSize":      i.MaxBetSize,
		"minimumBankSize": i.MinimumBankSize,
	}
}

func newInitializeHoneypot(f codec.Fields) (*InitializeHoneypot, error) {
	fr, err := newFieldReader(RecordInitializeHoneypot, f)
	if err != nil {
		return nil, err
	}
	fr.discriminant(TagInitializeHoneypot)
	i := &InitializeHoneypot{
		TickSize:        fr.u64("tickSize"),
		MaxBetSize:      fr.u64("maxBetSize"),
		MinimumBankSize: fr.u64("minimumBankSize"),
	}
	if fr.err != nil {
		return nil, fr.err
	}
	return i, nil
}

// WithdrawFromHoneypot withdraws funds from a honeypot's vault.
type WithdrawFromHoneypot struct {
	AmountToWithdraw uint64 `json:"amountToWithdraw"`
}

func (*WithdrawFromHoneypot) RecordType() codec.RecordType { return RecordWithdrawFromHoneypot }
func (*WithdrawFromHoneypot) Discriminant() uint8          { return TagWithdrawFromHoneypot }

func (w *WithdrawFromHoneypot) fields() codec.Fields {
	return codec.Fields{
		"discriminant":     TagWithdrawFromHoneypot,
		"amountToWithdraw": w.AmountToWithdraw,
	}
}

func newWithdrawFromHoneypot(f codec.Fields) (*WithdrawFromHoneypot, error) {
	fr, err := newFieldReader(RecordWithdrawFromHoneypot, f)
	if err != nil {
		return nil, err
	}
	fr.discriminant(TagWithdrawFromHoneypot)
	w := &WithdrawFromHoneypot{AmountToWithdraw: fr.u64("amountToWithdraw")}
	if fr.err != nil {
		return nil, fr.err
	}
	return w, nil
}

// InitializeGuessAccount creates the per-player locked-guess account.
type InitializeGuessAccount struct{}

func (InitializeGuessAccount) RecordType() codec.RecordType { return RecordInitializeGuessAccount }
func (InitializeGuessAccount) Discriminant() uint8          { return TagInitializeGuessAccount }

func (InitializeGuessAccount) fields() codec.Fields {
	return codec.Fields{"discriminant": TagInitializeGuessAccount}
}

func newInitializeGuessAccount(f codec.Fields) (*InitializeGuessAccount, error) {
	fr, err := newFieldReader(RecordInitializeGuessAccount, f)
	if err != nil {
		return nil, err
	}
	fr.discriminant(TagInitializeGuessAccount)
	if fr.err != nil {
		return nil, fr.err
	}
	return &InitializeGuessAccount{}, nil
}

// RouletteGuess is one bet: a position and an amount. It is the
// element type of PlaceGuesses and is also decodable standalone.
type RouletteGuess struct {
	Guess  Guess  `json:"guess"`
	Amount uint64 `json:"amount"`
}

func (*RouletteGuess) RecordType() codec.RecordType { return RecordRouletteGuess }

func (g *RouletteGuess) fields() codec.Fields {
	return codec.Fields{
		"guess":  uint8(g.Guess),
		"amount": g.Amount,
	}
}

func newRouletteGuess(f codec.Fields) (*RouletteGuess, error) {
	fr, err := newFieldReader(RecordRouletteGuess, f)
	if err != nil {
		return nil, err
	}
	g := &RouletteGuess{
		Guess:  Guess(fr.u8("guess")),
		Amount: fr.u64("amount"),
	}
	if fr.err != nil {
		return nil, fr.err
	}
	return g, nil
}

// PlaceGuesses submits a batch of bets.
type PlaceGuesses struct {
	Guesses []RouletteGuess `json:"guesses"`
}

func (*PlaceGuesses) RecordType() codec.RecordType { return RecordPlaceGuesses }
func (*PlaceGuesses) Discriminant() uint8          { return TagPlaceGuesses }

func (p *PlaceGuesses) fields() codec.Fields {
	elems := make([]codec.Fields, 0, len(p.Guesses))
	for i := range p.Guesses {
		elems = append(elems, p.Guesses[i].fields())
	}
	return codec.Fields{
		"discriminant": TagPlaceGuesses,
		"guesses":      elems,
	}
}

func newPlaceGuesses(f codec.Fields) (*PlaceGuesses, error) {
	fr, err := newFieldReader(RecordPlaceGuesses, f)
	if err != nil {
		return nil, err
	}
	fr.discriminant(TagPlaceGuesses)
	elems := fr.vector("guesses")
	if fr.err != nil {
		return nil, fr.err
	}
	p := &PlaceGuesses{Guesses: make([]RouletteGuess, 0, len(elems))}
	for _, elem := range elems {
		g, err := newRouletteGuess(elem)
		if err != nil {
			return nil, err
		}
		p.Guesses = append(p.Guesses, *g)
	}
	return p, nil
}

// Spin resolves the pending bets against a fresh sample.
type Spin struct {
	Tolerance uint64 `json:"tolerance"`
}

func (*Spin) RecordType() codec.RecordType { return RecordSpin }
func (*Spin) Discriminant() uint8          { return TagSpin }

func (s *Spin) fields() codec.Fields {
	return codec.Fields{
		"discriminant": TagSpin,
		"tolerance":    s.Tolerance,
	}
}

func newSpin(f codec.Fields) (*Spin, error) {
	fr, err := newFieldReader(RecordSpin, f)
	if err != nil {
		return nil, err
	}
	fr.discriminant(TagSpin)
	s := &Spin{Tolerance: fr.u64("tolerance")}
	if fr.err != nil {
		return nil, fr.err
	}
	return s, nil
}

// TryCancel voids a stale pending spin.
type TryCancel struct{}

func (TryCancel) RecordType() codec.RecordType { return RecordTryCancel }
func (TryCancel) Discriminant() uint8          { return TagTryCancel }

func (TryCancel) fields() codec.Fields {
	return codec.Fields{"discriminant": TagTryCancel}
}

func newTryCancel(f codec.Fields) (*TryCancel, error) {
	fr, err := newFieldReader(RecordTryCancel, f)
	if err != nil {
		return nil, err
	}
	fr.discriminant(TagTryCancel)
	if fr.err != nil {
		return nil, fr.err
	}
	return &TryCancel{}, nil
}
