package codec_test

import (
	"fmt"

	"github.com/solcasino/casinowire/pkg/codec"
)

func init() {
	codec.MustRegister(codec.Schema{Type: "ExampleWager", Fields: []codec.Field{
		{Name: "kind", Type: codec.TypeU8},
		{Name: "amount", Type: codec.TypeU64},
	}})
}

// ExampleEncodeFields demonstrates encoding a record and reading it back.
func ExampleEncodeFields() {
	encoded, err := codec.EncodeFields("ExampleWager", codec.Fields{
		"kind":   uint8(17),
		"amount": uint64(500),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("wire: %x\n", encoded)

	decoded, err := codec.DecodeFields("ExampleWager", encoded)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("kind: %d amount: %d\n", decoded["kind"], decoded["amount"])

	// Output:
	// wire: 11f401000000000000
	// kind: 17 amount: 500
}

// ExampleDecodeFields_truncated demonstrates the structured error
// returned for a truncated buffer.
func ExampleDecodeFields_truncated() {
	_, err := codec.DecodeFields("ExampleWager", []byte{0x11, 0xF4})
	fmt.Println(codec.CodeOf(err))

	// Output:
	// BufferUnderrun
}
