// Package casino defines the typed records of the casino program's
// wire format: the eight instruction-argument variants and the
// on-chain account states (Honeypot, RNG, LockedGuess), built on the
// generic schema-driven codec in pkg/codec.
//
// # Instructions
//
// Each instruction record begins with a one-byte discriminant that is
// constant per variant and part of the encoded data. Instruction is a
// closed interface: the variant set matches the external program
// exactly and cannot be extended from outside the package.
// DecodeInstruction dispatches on the leading byte; Encode emits the
// variant's discriminant regardless of the other field values.
//
// # Account State
//
// Account buffers fetched from the chain are frequently over-allocated,
// so decoding ignores trailing bytes but never tolerates missing ones:
// a Honeypot buffer shorter than HoneypotSize fails with BufferUnderrun
// and no partially populated record is returned.
//
// The package performs no signing, transport, or game-rule evaluation;
// it translates between typed records and bytes, nothing else.
package casino
