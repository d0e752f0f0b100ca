package casino

import (
	"strconv"

	"github.com/solcasino/casinowire/pkg/codec"
)

// Version is the leading byte of every account state, identifying the
// account's kind and layout revision.
type Version uint8

const (
	VersionUninitialized Version = 0
	VersionTombstone     Version = 1
	VersionRNGV1         Version = 2
	VersionHoneypotV1    Version = 3
	VersionLockedGuessV1 Version = 4
)

var versionNames = []string{
	"Uninitialized", "Tombstone", "RNGV1", "HoneypotV1", "LockedGuessV1",
}

func (v Version) String() string {
	if int(v) < len(versionNames) {
		return versionNames[v]
	}
	return "Version(" + strconv.Itoa(int(v)) + ")"
}

// Honeypot is the bank account backing a roulette table: betting
// parameters plus the owner and mint addresses. Fixed 99-byte layout.
type Honeypot struct {
	Version          Version `json:"version"`
	HoneypotBumpSeed uint8   `json:"honeypotBumpSeed"`
	VaultBumpSeed    uint8   `json:"vaultBumpSeed"`
	Owner            string  `json:"owner"`
	Mint             string  `json:"mint"`
	TickSize         uint64  `json:"tickSize"`
	MaxAmount        uint64  `json:"maxAmount"`
	MinimumBankSize  uint64  `json:"minimumBankSize"`
	OwedAmount       uint64  `json:"owedAmount"`
}

func (*Honeypot) RecordType() codec.RecordType { return RecordHoneypot }

func (h *Honeypot) fields() codec.Fields {
	return codec.Fields{
		"version":          uint8(h.Version),
		"honeypotBumpSeed": h.HoneypotBumpSeed,
		"vaultBumpSeed":    h.VaultBumpSeed,
		"owner":            h.Owner,
		"mint":             h.Mint,
		"tickSize":         h.TickSize,
		"maxAmount":        h.MaxAmount,
		"minimumBankSize":  h.MinimumBankSize,
		"owedAmount":       h.OwedAmount,
	}
}

func newHoneypot(f codec.Fields) (*Honeypot, error) {
	fr, err := newFieldReader(RecordHoneypot, f)
	if err != nil {
		return nil, err
	}
	h := &Honeypot{
		Version:          Version(fr.u8("version")),
		HoneypotBumpSeed: fr.u8("honeypotBumpSeed"),
		VaultBumpSeed:    fr.u8("vaultBumpSeed"),
		Owner:            fr.pubkey("owner"),
		Mint:             fr.pubkey("mint"),
		TickSize:         fr.u64("tickSize"),
		MaxAmount:        fr.u64("maxAmount"),
		MinimumBankSize:  fr.u64("minimumBankSize"),
		OwedAmount:       fr.u64("owedAmount"),
	}
	if fr.err != nil {
		return nil, fr.err
	}
	return h, nil
}

// DecodeHoneypot decodes a honeypot account buffer. Buffers longer
// than HoneypotSize are accepted; shorter ones fail with
// BufferUnderrun.
func DecodeHoneypot(buf []byte) (*Honeypot, error) {
	fields, err := codec.DecodeFields(RecordHoneypot, buf)
	if err != nil {
		return nil, err
	}
	return newHoneypot(fields)
}

// RNG is the program's randomness account: the latest sample and the
// slot it was drawn at. Fixed 17-byte layout.
type RNG struct {
	Version Version `json:"version"`
	Sample  uint64  `json:"sample"`
	Slot    uint64  `json:"slot"`
}

func (*RNG) RecordType() codec.RecordType { return RecordRNG }

func (r *RNG) fields() codec.Fields {
	return codec.Fields{
		"version": uint8(r.Version),
		"sample":  r.Sample,
		"slot":    r.Slot,
	}
}

func newRNG(f codec.Fields) (*RNG, error) {
	fr, err := newFieldReader(RecordRNG, f)
	if err != nil {
		return nil, err
	}
	r := &RNG{
		Version: Version(fr.u8("version")),
		Sample:  fr.u64("sample"),
		Slot:    fr.u64("slot"),
	}
	if fr.err != nil {
		return nil, fr.err
	}
	return r, nil
}

// DecodeRNG decodes an RNG account buffer.
func DecodeRNG(buf []byte) (*RNG, error) {
	fields, err := codec.DecodeFields(RecordRNG, buf)
	if err != nil {
		return nil, err
	}
	return newRNG(fields)
}

// LockedGuessSlots is the fixed capacity of a locked-guess account's
// bet array.
const LockedGuessSlots = 64

// LockedGuess is a player's pending-bet account: ownership, the slot
// the bets were locked at, and a fixed 64-slot bet array. Fixed
// 595-byte layout.
type LockedGuess struct {
	Version    Version  `json:"version"`
	BumpSeed   uint8    `json:"bumpSeed"`
	Owner      string   `json:"owner"`
	Vault      string   `json:"vault"`
	Slot       uint64   `json:"slot"`
	Active     bool     `json:"active"`
	ActiveSize uint64   `json:"activeSize"`
	Guesses    []uint64 `json:"guesses"` // always LockedGuessSlots entries
}

func (*LockedGuess) RecordType() codec.RecordType { return RecordLockedGuess }

func (l *LockedGuess) fields() codec.Fields {
	return codec.Fields{
		"version":    uint8(l.Version),
		"bumpSeed":   l.BumpSeed,
		"owner":      l.Owner,
		"vault":      l.Vault,
		"slot":       l.Slot,
		"active":     l.Active,
		"activeSize": l.ActiveSize,
		"guesses":    l.Guesses,
	}
}

func newLockedGuess(f codec.Fields) (*LockedGuess, error) {
	fr, err := newFieldReader(RecordLockedGuess, f)
	if err != nil {
		return nil, err
	}
	l := &LockedGuess{
		Version:    Version(fr.u8("version")),
		BumpSeed:   fr.u8("bumpSeed"),
		Owner:      fr.pubkey("owner"),
		Vault:      fr.pubkey("vault"),
		Slot:       fr.u64("slot"),
		Active:     fr.boolean("active"),
		ActiveSize: fr.u64("activeSize"),
		Guesses:    fr.u64s("guesses"),
	}
	if fr.err != nil {
		return nil, fr.err
	}
	return l, nil
}

// DecodeLockedGuess decodes a locked-guess account buffer.
func DecodeLockedGuess(buf []byte) (*LockedGuess, error) {
	fields, err := codec.DecodeFields(RecordLockedGuess, buf)
	if err != nil {
		return nil, err
	}
	return newLockedGuess(fields)
}
