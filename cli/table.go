package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/Valentin-Kaiser/go-dbase-reader/dbase"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var headerCmd = &cobra.Command{
	Use:   "header [table file]",
	Short: "Print the header of a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := dbase.OpenTable(&dbase.Config{Filename: args[0]})
		if err != nil {
			return dbase.GetErrorTrace(err)
		}
		h := table.Header()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
		fmt.Fprintf(w, "Version:\t0x%02X (%v)\n", byte(h.Version), h.Version)
		fmt.Fprintf(w, "Last update:\t%s\n", h.LastUpdate.Format("2006-01-02"))
		fmt.Fprintf(w, "Rows:\t%d\n", h.RowsCount)
		fmt.Fprintf(w, "First row:\t%d\n", h.FirstRow)
		fmt.Fprintf(w, "Row length:\t%d\n", h.RowLength)
		fmt.Fprintf(w, "Columns:\t%d\n", table.ColumnsCount())
		fmt.Fprintf(w, "Code page:\t0x%02X\n", h.CodePage)
		fmt.Fprintf(w, "File size:\t%d\n", h.FileSize())
		fmt.Fprintf(w, "Memo file:\t%v\n", h.HasMemo())
		return multierr.Append(w.Flush(), table.Close())
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema [table file]",
	Short: "Print the columns of a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := dbase.OpenTable(&dbase.Config{Filename: args[0]})
		if err != nil {
			return dbase.GetErrorTrace(err)
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tTYPE\tLENGTH\tDECIMALS")
		for i, column := range table.Columns() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", i, column.Name(), column.Type(), column.Length(), column.Decimals())
		}
		return multierr.Append(w.Flush(), table.Close())
	},
}

func init() {
	rootCmd.AddCommand(headerCmd)
	rootCmd.AddCommand(schemaCmd)
}
