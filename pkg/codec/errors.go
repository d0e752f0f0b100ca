package codec

import (
	"errors"
	"fmt"
)

// Kind is a stable error category for programmatic handling.
//
// Schema errors are programmer/configuration mistakes and are never
// expected at steady state; Codec errors are data errors and occur
// whenever input is truncated, corrupted, or adversarial. Callers
// should branch on Kind/Code rather than matching error strings.
type Kind string

const (
	KindSchema Kind = "Schema"
	KindCodec  Kind = "Codec"
)

// Code identifies the specific failure within a Kind.
type Code string

const (
	// Schema codes.
	CodeUnknownRecordType   Code = "UnknownRecordType"
	CodeDuplicateRecordType Code = "DuplicateRecordType"
	CodeFieldMismatch       Code = "FieldMismatch"

	// Codec codes.
	CodeBufferUnderrun      Code = "BufferUnderrun"
	CodeInvalidAddress      Code = "InvalidAddress"
	CodeLengthOverflow      Code = "LengthOverflow"
	CodeInvalidBool         Code = "InvalidBool"
	CodeInvalidDiscriminant Code = "InvalidDiscriminant"
)

// Error is the codec's structured error type. Record, Field, and Offset
// localize the fault; they are zero-valued when not applicable (for
// example, registry lookups have no offset).
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	Code    Code
	Record  RecordType
	Field   string
	Offset  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "codec: " + string(e.Code)
	if e.Record != "" {
		msg += ": record " + string(e.Record)
		if e.Field != "" {
			msg += " field " + e.Field
		}
	}
	return msg + ": " + e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsCode reports whether err is (or wraps) a *Error with the given Code.
func IsCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// CodeOf returns the Code of a structured codec error, or "" if err is
// not one.
func CodeOf(err error) Code {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

func schemaErrorf(code Code, rt RecordType, field, format string, args ...any) *Error {
	return &Error{
		Kind:    KindSchema,
		Code:    code,
		Record:  rt,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func codecErrorf(code Code, rt RecordType, field string, offset int, format string, args ...any) *Error {
	return &Error{
		Kind:    KindCodec,
		Code:    code,
		Record:  rt,
		Field:   field,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}
