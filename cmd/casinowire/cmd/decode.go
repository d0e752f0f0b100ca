package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solcasino/casinowire/pkg/casino"
	"github.com/solcasino/casinowire/pkg/codec"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <record-type> <data>",
	Short: "Decode a binary buffer as a record type",
	Long: `Decode a hex- or base64-encoded buffer as the named record type and
print the typed record as JSON.

Use the record type "instruction" to dispatch on the buffer's leading
discriminant byte instead of naming the variant.

Examples:
  casinowire decode instruction 050200000011f4010000000000000040420f0000000000
  casinowire decode Honeypot "$(base64 < honeypot-account.bin)"
  casinowire decode RNG 02f4010000000000000200000000000000`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := parseBuffer(args[1])
		if err != nil {
			return err
		}

		var record casino.Record
		if strings.EqualFold(args[0], "instruction") {
			record, err = casino.DecodeInstruction(buf)
		} else {
			record, err = casino.Decode(codec.RecordType(args[0]), buf)
		}
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(envelope{
			RecordType: string(record.RecordType()),
			Record:     record,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

type envelope struct {
	RecordType string        `json:"recordType"`
	Record     casino.Record `json:"record"`
}

// parseBuffer accepts hex (with or without an 0x prefix) or standard
// base64.
func parseBuffer(s string) ([]byte, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if buf, err := hex.DecodeString(cleaned); err == nil {
		return buf, nil
	}
	if buf, err := base64.StdEncoding.DecodeString(cleaned); err == nil {
		return buf, nil
	}
	return nil, fmt.Errorf("data is neither hex nor base64: %q", s)
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
