package codec

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
)

// AddressSize is the wire size of a pubkey field.
const AddressSize = 32

// reader is a decoding cursor over a caller-owned buffer. Record and
// field identify the position in the schema walk so that failures can
// be localized; the driver updates them as it advances.
type reader struct {
	buf    []byte
	off    int
	record RecordType
	field  string
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) need(n int) error {
	if r.remaining() < n {
		return codecErrorf(CodeBufferUnderrun, r.record, r.field, r.off,
			"need %d bytes, have %d", n, r.remaining())
	}
	return nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *reader) boolean() (bool, error) {
	v, err := r.u8()
	if err != nil {
		return false, err
	}
	if v > 1 {
		return false, codecErrorf(CodeInvalidBool, r.record, r.field, r.off-1,
			"boolean byte must be 0 or 1, got %d", v)
	}
	return v == 1, nil
}

// pubkey reads a 32-byte address and returns its base58 form. The
// encoding is bijective over 32-byte values, so round-trips are exact.
func (r *reader) pubkey() (string, error) {
	if err := r.need(AddressSize); err != nil {
		return "", err
	}
	s := base58.Encode(r.buf[r.off : r.off+AddressSize])
	r.off += AddressSize
	return s, nil
}

func (r *reader) u64Array(n int) ([]uint64, error) {
	if err := r.need(8 * n); err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(r.buf[r.off:])
		r.off += 8
	}
	return out, nil
}

// writer is the encoding counterpart; it appends to an internal buffer
// with no separators, padding, or alignment.
type writer struct {
	buf    []byte
	record RecordType
	field  string
}

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *writer) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *writer) boolean(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *writer) pubkey(s string) error {
	raw, err := base58.Decode(s)
	if err != nil {
		return codecErrorf(CodeInvalidAddress, w.record, w.field, len(w.buf),
			"not a base58 address: %v", err)
	}
	if len(raw) != AddressSize {
		return codecErrorf(CodeInvalidAddress, w.record, w.field, len(w.buf),
			"address decodes to %d bytes, want %d", len(raw), AddressSize)
	}
	w.buf = append(w.buf, raw...)
	return nil
}

func (w *writer) u64Array(vals []uint64) {
	for _, v := range vals {
		w.u64(v)
	}
}
