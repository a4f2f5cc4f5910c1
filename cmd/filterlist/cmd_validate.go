package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a document and print its group and item counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(cmd, args)
		if err != nil {
			return err
		}
		if err := doc.Validate(); err != nil {
			return fmt.Errorf("invalid document:\n%w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d group(s), %d item(s)\n", len(doc.Groups), doc.ItemCount())
		return nil
	},
}
