package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Haghighatbin/echem-fairifier/internal/config"
	"github.com/Haghighatbin/echem-fairifier/internal/ui"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "echemfair",
	Short: "FAIR metadata for electrochemical measurements",
	Long:  longDescription,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Init(noColor)
		initUIAndBanner(cmd)
	},

	// When invoked without a subcommand, show help (with banner) instead of
	// printing a plain usage output.
	RunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return cmd.Help()
	},
}

var (
	cfgFile  string
	logLevel string
	noColor  bool
	version  string
)

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.echemfair.yaml or ./config/defaults.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: quiet|standard|debug")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log prefixes")

	viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})

	rootCmd.AddCommand(techniquesCmd, generateCmd, validateCmd, inferCmd, vocabCmd, archiveCmd)
}

func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)
	config.BindEnv(v)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
		announceConfig()
		return
	}

	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./config")

	// Try .echemfair first, then defaults.yaml
	viper.SetConfigName(".echemfair")
	err := viper.ReadInConfig()

	notFound := &viper.ConfigFileNotFoundError{}
	if err != nil && errors.As(err, notFound) {
		viper.SetConfigName("defaults")
		err = viper.ReadInConfig()
	}

	switch {
	case err != nil && !errors.As(err, notFound):
		cobra.CheckErr(err)
	case err != nil:
		// The config file is optional.
	default:
		announceConfig()
	}
}

func announceConfig() {
	msg := ui.Dim.Render("Using config file: ") + ui.Accent.Render(viper.ConfigFileUsed())
	fmt.Fprintln(os.Stderr, msg)
}

const longDescription = "Generate, validate and enrich FAIR metadata for electrochemical measurements (CV, EIS, DPV, SWV, CA)."

func initUIAndBanner(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.Root().Long = ui.Banner() + "\n" + longDescription
}
