// Package codec implements a schema-driven binary codec: a mapping
// between named, ordered field schemas and an exact little-endian wire
// layout, with encode/decode as the only operations.
//
// # Wire Format
//
// A record is its fields encoded back to back in declared order, with
// no separators, padding, or alignment. Field types map to the wire as
// follows (all integers little-endian):
//
//	u8        1 byte
//	u64       8 bytes
//	bool      1 byte, 0 or 1
//	pubkey    32 bytes, held in memory as a base58 string
//	struct    nested record encoded inline, no prefix
//	vector    4-byte element count, then that many inline elements
//	u64array  fixed element count of 8-byte values, no prefix
//
// Decoding is permissive about trailing bytes: a buffer may be longer
// than the record it holds, because on-chain account buffers are often
// over-allocated. It is strict about everything else: a buffer that
// ends before the last field fails with BufferUnderrun, and no partial
// record is ever returned.
//
// # Schema Registry
//
// Record types are declared once, during package initialization, via
// Register or MustRegister, and are immutable afterwards. The registry
// is the only shared state in the package; because it is read-only
// after init, encode and decode calls are safe to run concurrently
// without coordination.
//
// # Error Handling
//
// All failures are *Error values carrying a stable Kind and Code plus
// the record type, field name, and byte offset that localize the fault.
// Schema errors (unknown or duplicate record types, field-set
// mismatches) are programmer mistakes; codec errors (buffer underrun,
// invalid address, length overflow) are expected whenever input is
// truncated, corrupted, or adversarial. Errors propagate upward
// unchanged; the codec never attempts partial recovery.
//
// # Purity
//
// Encode and decode are pure functions over caller-owned buffers. The
// package performs no I/O, holds no per-call state, and imposes no
// timeouts; callers needing deadlines wrap the surrounding I/O, not
// the codec.
package codec
