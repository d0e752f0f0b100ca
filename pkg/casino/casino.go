package casino

import (
	"fmt"

	"github.com/solcasino/casinowire/pkg/codec"
)

// Record is a typed value with a registered wire schema. The interface
// is closed: only types in this package implement it, matching the
// fixed record set of the external program.
type Record interface {
	RecordType() codec.RecordType
	fields() codec.Fields
}

// Encode serializes r into its exact wire bytes.
func Encode(r Record) ([]byte, error) {
	return codec.EncodeFields(r.RecordType(), r.fields())
}

// Decode decodes buf as the record type rt and constructs the typed
// record. Trailing bytes are ignored; a buffer too short for every
// declared field fails with BufferUnderrun.
func Decode(rt codec.RecordType, buf []byte) (Record, error) {
	ctor, ok := constructors[rt]
	if !ok {
		return nil, &codec.Error{
			Kind:    codec.KindSchema,
			Code:    codec.CodeUnknownRecordType,
			Record:  rt,
			Message: "no typed record for this record type",
		}
	}
	fields, err := codec.DecodeFields(rt, buf)
	if err != nil {
		return nil, err
	}
	return ctor(fields)
}

var constructors = map[codec.RecordType]func(codec.Fields) (Record, error){
	RecordInitialize:             func(f codec.Fields) (Record, error) { return newInitialize(f) },
	RecordSample:                 func(f codec.Fields) (Record, error) { return newSample(f) },
	RecordInitializeHoneypot:     func(f codec.Fields) (Record, error) { return newInitializeHoneypot(f) },
	RecordWithdrawFromHoneypot:   func(f codec.Fields) (Record, error) { return newWithdrawFromHoneypot(f) },
	RecordInitializeGuessAccount: func(f codec.Fields) (Record, error) { return newInitializeGuessAccount(f) },
	RecordPlaceGuesses:           func(f codec.Fields) (Record, error) { return newPlaceGuesses(f) },
	RecordSpin:                   func(f codec.Fields) (Record, error) { return newSpin(f) },
	RecordTryCancel:              func(f codec.Fields) (Record, error) { return newTryCancel(f) },
	RecordRouletteGuess:          func(f codec.Fields) (Record, error) { return newRouletteGuess(f) },
	RecordHoneypot:               func(f codec.Fields) (Record, error) { return newHoneypot(f) },
	RecordRNG:                    func(f codec.Fields) (Record, error) { return newRNG(f) },
	RecordLockedGuess:            func(f codec.Fields) (Record, error) { return newLockedGuess(f) },
}

// fieldReader extracts typed values from a decoded field map,
// collecting the first failure. Constructors check the exact field set
// up front, then read without per-field error plumbing.
type fieldReader struct {
	rt  codec.RecordType
	f   codec.Fields
	err error
}

func newFieldReader(rt codec.RecordType, f codec.Fields) (*fieldReader, error) {
	schema, err := codec.Lookup(rt)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckFields(f); err != nil {
		return nil, err
	}
	return &fieldReader{rt: rt, f: f}, nil
}

func (fr *fieldReader) mismatch(name, want string, got any) {
	if fr.err == nil {
		fr.err = &codec.Error{
			Kind:    codec.KindSchema,
			Code:    codec.CodeFieldMismatch,
			Record:  fr.rt,
			Field:   name,
			Message: fmt.Sprintf("value is %T, want %s", got, want),
		}
	}
}

func (fr *fieldReader) u8(name string) uint8 {
	v, ok := fr.f[name].(uint8)
	if !ok {
		fr.mismatch(name, "uint8", fr.f[name])
	}
	return v
}

func (fr *fieldReader) u64(name string) uint64 {
	v, ok := fr.f[name].(uint64)
	if !ok {
		fr.mismatch(name, "uint64", fr.f[name])
	}
	return v
}

func (fr *fieldReader) boolean(name string) bool {
	v, ok := fr.f[name].(bool)
	if !ok {
		fr.mismatch(name, "bool", fr.f[name])
	}
	return v
}

func (fr *fieldReader) pubkey(name string) string {
	v, ok := fr.f[name].(string)
	if !ok {
		fr.mismatch(name, "string", fr.f[name])
	}
	return v
}

func (fr *fieldReader) u64s(name string) []uint64 {
	v, ok := fr.f[name].([]uint64)
	if !ok {
		fr.mismatch(name, "[]uint64", fr.f[name])
	}
	return v
}

func (fr *fieldReader) vector(name string) []codec.Fields {
	v, ok := fr.f[name].([]codec.Fields)
	if !ok {
		fr.mismatch(name, "[]codec.Fields", fr.f[name])
	}
	return v
}

// discriminant reads the leading tag field and verifies it carries the
// variant's fixed value.
func (fr *fieldReader) discriminant(want uint8) {
	got := fr.u8("discriminant")
	if fr.err == nil && got != want {
		fr.err = &codec.Error{
			Kind:    codec.KindCodec,
			Code:    codec.CodeInvalidDiscriminant,
			Record:  fr.rt,
			Field:   "discriminant",
			Message: fmt.Sprintf("discriminant is %d, variant requires %d", got, want),
		}
	}
}
