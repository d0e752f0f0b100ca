package codec

import "math"

// Fields holds a record's decoded field values keyed by field name.
// Value types follow the field's wire type: uint8, uint64, bool,
// string (base58 address), Fields (nested struct), []Fields (vector),
// []uint64 (fixed array).
type Fields map[string]any

// maxVectorBytes bounds how many bytes a single vector may claim via
// its length prefix. Counts that would require more are rejected before
// any allocation; real account buffers sit far below this.
const maxVectorBytes = math.MaxInt32

// DecodeFields decodes buf as the record type rt, walking the
// registered schema strictly in declared field order from offset 0.
// Trailing bytes beyond the last field are permitted: on-chain account
// buffers are frequently over-allocated. Any field failure aborts the
// whole decode; no partial result is returned.
func DecodeFields(rt RecordType, buf []byte) (Fields, error) {
	schema, err := Lookup(rt)
	if err != nil {
		return nil, err
	}
	r := &reader{buf: buf, record: rt}
	return decodeStruct(r, schema)
}

// EncodeFields encodes fields as the record type rt, producing the
// concatenated wire bytes with no trailing padding. fields must contain
// exactly the schema's declared field names.
func EncodeFields(rt RecordType, fields Fields) ([]byte, error) {
	schema, err := Lookup(rt)
	if err != nil {
		return nil, err
	}
	w := &writer{record: rt}
	if err := encodeStruct(w, schema, fields); err != nil {
		return nil, err
	}
	return w.buf, nil
}

func decodeStruct(r *reader, schema Schema) (Fields, error) {
	prevRecord, prevField := r.record, r.field
	r.record = schema.Type
	defer func() { r.record, r.field = prevRecord, prevField }()

	out := make(Fields, len(schema.Fields))
	for _, f := range schema.Fields {
		r.field = f.Name
		v, err := decodeField(r, f)
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}
	return out, nil
}

func decodeField(r *reader, f Field) (any, error) {
	switch f.Type {
	case TypeU8:
		return r.u8()
	case TypeU64:
		return r.u64()
	case TypeBool:
		return r.boolean()
	case TypePubkey:
		return r.pubkey()
	case TypeU64Array:
		return r.u64Array(f.Len)
	case TypeStruct:
		nested, err := Lookup(f.Elem)
		if err != nil {
			return nil, err
		}
		return decodeStruct(r, nested)
	case TypeVector:
		return decodeVector(r, f)
	default:
		return nil, schemaErrorf(CodeFieldMismatch, r.record, f.Name, "unsupported field type %d", f.Type)
	}
}

func decodeVector(r *reader, f Field) ([]Fields, error) {
	nested, err := Lookup(f.Elem)
	if err != nil {
		return nil, err
	}
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	elemMin := nested.MinSize()
	if elemMin > 0 {
		if uint64(count)*uint64(elemMin) > maxVectorBytes {
			return nil, codecErrorf(CodeLengthOverflow, r.record, f.Name, r.off-4,
				"vector of %d elements (>= %d bytes each) exceeds addressable bound", count, elemMin)
		}
		if err := r.need(int(count) * elemMin); err != nil {
			return nil, err
		}
	}
	out := make([]Fields, 0, count)
	for i := uint32(0); i < count; i++ {
		elem, err := decodeStruct(r, nested)
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
	}
	return out, nil
}

func encodeStruct(w *writer, schema Schema, fields Fields) error {
	if err := schema.CheckFields(fields); err != nil {
		return err
	}
	prevRecord, prevField := w.record, w.field
	w.record = schema.Type
	defer func() { w.record, w.field = prevRecord, prevField }()

	for _, f := range schema.Fields {
		w.field = f.Name
		if err := encodeField(w, f, fields[f.Name]); err != nil {
			return err
		}
	}
	return nil
}

func encodeField(w *writer, f Field, value any) error {
	switch f.Type {
	case TypeU8:
		v, ok := value.(uint8)
		if !ok {
			return typeMismatch(w, f, "uint8", value)
		}
		w.u8(v)
	case TypeU64:
		v, ok := value.(uint64)
		if !ok {
			return typeMismatch(w, f, "uint64", value)
		}
		w.u64(v)
	case TypeBool:
		v, ok := value.(bool)
		if !ok {
			return typeMismatch(w, f, "bool", value)
		}
		w.boolean(v)
	case TypePubkey:
		v, ok := value.(string)
		if !ok {
			return typeMismatch(w, f, "string", value)
		}
		return w.pubkey(v)
	case TypeU64Array:
		v, ok := value.([]uint64)
		if !ok {
			return typeMismatch(w, f, "[]uint64", value)
		}
		if len(v) != f.Len {
			return schemaErrorf(CodeFieldMismatch, w.record, f.Name,
				"fixed array has %d elements, schema declares %d", len(v), f.Len)
		}
		w.u64Array(v)
	case TypeStruct:
		nested, err := Lookup(f.Elem)
		if err != nil {
			return err
		}
		v, ok := value.(Fields)
		if !ok {
			return typeMismatch(w, f, "codec.Fields", value)
		}
		return encodeStruct(w, nested, v)
	case TypeVector:
		nested, err := Lookup(f.Elem)
		if err != nil {
			return err
		}
		v, ok := value.([]Fields)
		if !ok {
			return typeMismatch(w, f, "[]codec.Fields", value)
		}
		// The count is derived from the actual sequence length, never
		// caller-supplied.
		w.u32(uint32(len(v)))
		for _, elem := range v {
			if err := encodeStruct(w, nested, elem); err != nil {
				return err
			}
		}
	default:
		return schemaErrorf(CodeFieldMismatch, w.record, f.Name, "unsupported field type %d", f.Type)
	}
	return nil
}

func typeMismatch(w *writer, f Field, want string, got any) error {
	return schemaErrorf(CodeFieldMismatch, w.record, f.Name, "value is %T, want %s", got, want)
}
