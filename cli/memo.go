package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/Valentin-Kaiser/go-dbase-reader/dbase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

var memoCmd = &cobra.Command{
	Use:   "memo [memo file] [block]",
	Short: "Print the payload stored at a block of a memo file",
	Long: `Print the payload stored at a block of a memo file.

The layout of the file is never guessed, it has to be given with --format:
dbt3 for dBase III, dbt4 for dBase IV and 5, fpt for FoxPro and Visual FoxPro.
The payload is printed as a hex dump unless --text is set.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := dbase.ParseMemoFormat(viper.GetString("memo-format"))
		if err != nil {
			return err
		}
		block, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid block %q: %v", args[1], err)
		}
		text, err := cmd.Flags().GetBool("text")
		if err != nil {
			return err
		}
		converter, err := dbase.ConverterFor(viper.GetString("encoding"))
		if err != nil {
			return dbase.GetErrorTrace(err)
		}

		handle, err := dbase.OpenFile(args[0])
		if err != nil {
			return dbase.GetErrorTrace(err)
		}
		err = printMemo(cmd, handle, format, uint32(block), text, converter)
		return multierr.Append(err, handle.Close())
	},
}

func printMemo(cmd *cobra.Command, handle dbase.Handle, format dbase.MemoFormat, block uint32, text bool, converter dbase.EncodingConverter) error {
	memo, err := dbase.OpenMemo(format, handle)
	if err != nil {
		return dbase.GetErrorTrace(err)
	}
	data, err := memo.ReadMemo(block)
	if err != nil {
		return dbase.GetErrorTrace(err)
	}
	if !text {
		_, err = fmt.Fprint(cmd.OutOrStdout(), hex.Dump(data.Bytes()))
		return err
	}
	s, err := data.Decode(converter)
	if err != nil {
		return dbase.GetErrorTrace(err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

func init() {
	memoCmd.Flags().String("format", "", "memo file layout: dbt3, dbt4 or fpt")
	memoCmd.Flags().Bool("text", false, "print the payload as text instead of a hex dump")
	rootCmd.AddCommand(memoCmd)
}
