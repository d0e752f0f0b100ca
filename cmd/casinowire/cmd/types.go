package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solcasino/casinowire/pkg/codec"
)

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered record types and their layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, rt := range codec.RegisteredTypes() {
			schema, err := codec.Lookup(rt)
			if err != nil {
				return err
			}
			if schema.Fixed() {
				fmt.Fprintf(out, "%s (%d bytes)\n", rt, schema.MinSize())
			} else {
				fmt.Fprintf(out, "%s (variable, at least %d bytes)\n", rt, schema.MinSize())
			}
			for _, f := range schema.Fields {
				switch f.Type {
				case codec.TypeStruct:
					fmt.Fprintf(out, "  %-20s struct %s\n", f.Name, f.Elem)
				case codec.TypeVector:
					fmt.Fprintf(out, "  %-20s vector of %s\n", f.Name, f.Elem)
				case codec.TypeU64Array:
					fmt.Fprintf(out, "  %-20s u64[%d]\n", f.Name, f.Len)
				default:
					fmt.Fprintf(out, "  %-20s %s\n", f.Name, f.Type)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
