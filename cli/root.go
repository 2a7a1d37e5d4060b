// Package cli implements the dbfdump command line tool.
package cli

import (
	"fmt"
	"strings"

	"github.com/Valentin-Kaiser/go-dbase-reader/dbase"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

var cfgFile string

// configErr holds what initConfig could not do, cobra initializers have no error return.
var configErr error

var rootCmd = &cobra.Command{
	Use:   "dbfdump",
	Short: "Inspect dBase, FoxPro and Visual FoxPro tables and memo files",
	Long: `dbfdump prints the header and the column schema of dBase family tables
and the payload of single memo blocks from DBT and FPT files.

Settings are read from flags, from DBFDUMP_* environment variables
and from $HOME/.dbfdump.yaml, in this order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		dbase.SetOutput(cmd.OutOrStderr())
		dbase.SetDebug(viper.GetBool("debug"))
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dbfdump.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "write debug output of the decoder")
	rootCmd.PersistentFlags().String("encoding", "", "charset of memo text, a name like gbk or a code page mark like 0x03")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".dbfdump")
	}

	viper.SetEnvPrefix("dbfdump")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configErr = multierr.Combine(
		viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")),
		viper.BindPFlag("encoding", rootCmd.PersistentFlags().Lookup("encoding")),
		viper.BindPFlag("memo-format", memoCmd.Flags().Lookup("format")),
	)

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
		// Without --config the file in the home directory is optional
		return
	}
	if err != nil {
		configErr = multierr.Append(configErr, fmt.Errorf("reading config file: %v", err))
	}
}
