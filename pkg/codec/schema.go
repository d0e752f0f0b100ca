package codec

import "sort"

// RecordType names one encodable/decodable entity in the registry.
type RecordType string

// FieldType is the wire-type tag for a single field.
type FieldType uint8

const (
	// TypeU8 is a single unsigned byte.
	TypeU8 FieldType = iota
	// TypeU64 is an unsigned 64-bit integer, little-endian.
	TypeU64
	// TypeBool is a single byte holding 0 or 1; any other value is
	// rejected on decode.
	TypeBool
	// TypePubkey is 32 bytes on the wire, represented in memory as a
	// base58 string.
	TypePubkey
	// TypeStruct is a nested record type encoded inline with no prefix.
	TypeStruct
	// TypeVector is a variable-length sequence of a nested record type,
	// prefixed by a 4-byte little-endian element count.
	TypeVector
	// TypeU64Array is a fixed-length array of unsigned 64-bit integers.
	TypeU64Array
)

func (t FieldType) String() string {
	switch t {
	case TypeU8:
		return "u8"
	case TypeU64:
		return "u64"
	case TypeBool:
		return "bool"
	case TypePubkey:
		return "pubkey"
	case TypeStruct:
		return "struct"
	case TypeVector:
		return "vector"
	case TypeU64Array:
		return "u64array"
	default:
		return "unknown"
	}
}

// Field is one entry in a record's ordered field list. Elem names the
// nested record type for Struct and Vector fields; Len is the element
// count for U64Array fields.
type Field struct {
	Name string
	Type FieldType
	Elem RecordType
	Len  int
}

// Schema is a record type's ordered field list. Field order is
// significant: it defines the wire layout.
type Schema struct {
	Type   RecordType
	Fields []Field
}

// Fixed reports whether the schema's wire size is statically known
// (no vector fields, directly or through nesting).
func (s Schema) Fixed() bool {
	for _, f := range s.Fields {
		switch f.Type {
		case TypeVector:
			return false
		case TypeStruct:
			nested, err := Lookup(f.Elem)
			if err != nil || !nested.Fixed() {
				return false
			}
		}
	}
	return true
}

// MinSize returns the minimum number of bytes any encoding of this
// schema occupies. Vector fields contribute their 4-byte length prefix;
// for fixed schemas this is the exact wire size.
func (s Schema) MinSize() int {
	size := 0
	for _, f := range s.Fields {
		switch f.Type {
		case TypeU8, TypeBool:
			size++
		case TypeU64:
			size += 8
		case TypePubkey:
			size += 32
		case TypeU64Array:
			size += 8 * f.Len
		case TypeVector:
			size += 4
		case TypeStruct:
			if nested, err := Lookup(f.Elem); err == nil {
				size += nested.MinSize()
			}
		}
	}
	return size
}

// CheckFields validates that fields contains exactly the names this
// schema declares: no missing fields, no extras.
func (s Schema) CheckFields(fields Fields) error {
	for _, f := range s.Fields {
		if _, ok := fields[f.Name]; !ok {
			return schemaErrorf(CodeFieldMismatch, s.Type, f.Name, "missing field")
		}
	}
	if len(fields) != len(s.Fields) {
		declared := make(map[string]bool, len(s.Fields))
		for _, f := range s.Fields {
			declared[f.Name] = true
		}
		for name := range fields {
			if !declared[name] {
				return schemaErrorf(CodeFieldMismatch, s.Type, name, "undeclared field")
			}
		}
	}
	return nil
}

// registry is written only during package initialization and read-only
// afterwards, so lookups need no locking.
var registry = map[RecordType]Schema{}

// Register adds a schema to the registry. Registration happens during
// package init; the registry is immutable once the process is serving.
func Register(s Schema) error {
	if _, ok := registry[s.Type]; ok {
		return schemaErrorf(CodeDuplicateRecordType, s.Type, "", "record type already registered")
	}
	registry[s.Type] = s
	return nil
}

// MustRegister is Register for init-time use; it panics on failure.
func MustRegister(s Schema) {
	if err := Register(s); err != nil {
		panic(err)
	}
}

// Lookup returns the schema registered for rt.
func Lookup(rt RecordType) (Schema, error) {
	s, ok := registry[rt]
	if !ok {
		return Schema{}, schemaErrorf(CodeUnknownRecordType, rt, "", "record type not registered")
	}
	return s, nil
}

// RegisteredTypes returns the names of all registered record types in
// lexical order.
func RegisteredTypes() []RecordType {
	types := make([]RecordType, 0, len(registry))
	for rt := range registry {
		types = append(types, rt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
