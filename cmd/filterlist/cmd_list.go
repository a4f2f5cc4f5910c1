package main

import (
	"fmt"
	"io"

	"github.com/ruminaider/filterlist/internal/filterlist"
	"github.com/spf13/cobra"
)

var (
	listFilter    string
	listNoHeaders bool
)

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "Print the rows the picker would show, without a terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(cmd, args)
		if err != nil {
			return err
		}

		filter := doc.Filter
		if cmd.Flags().Changed("filter") {
			filter = listFilter
		}
		headers := doc.ShowHeaders() && !listNoHeaders

		state := filterlist.Flatten(doc.ListGroups(), filter, selectedItem(doc), headers)
		if len(state.Rows) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "no matches")
			return nil
		}
		printRows(cmd.OutOrStdout(), state)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "filter text (overrides the document)")
	listCmd.Flags().BoolVar(&listNoHeaders, "no-headers", false, "omit group header rows")
}

// printRows writes one line per row. Headers are bracketed and the selected
// row is marked with ">".
func printRows(w io.Writer, state filterlist.DerivedState) {
	for i, r := range state.Rows {
		if r.Kind == filterlist.RowGroupHeader {
			fmt.Fprintf(w, "[%s]\n", r.Group)
			continue
		}
		marker := " "
		if i == state.SelectedRow {
			marker = ">"
		}
		fmt.Fprintf(w, "%s %s\t%s\n", marker, r.Item.ID(), r.Item.Text())
	}
}
