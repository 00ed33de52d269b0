package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docnova/go-docnova-client/docnova"
	"github.com/docnova/go-docnova-client/docnova/config"
	"github.com/docnova/go-docnova-client/docnova/i18n"
)

var (
	cfg *config.Config
	app *docnova.App

	localeFlag string
)

var rootCmd = &cobra.Command{
	Use:           "docnova",
	Short:         "Browse and inspect Docnova invoices from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if localeFlag != "" {
			c.Locale = i18n.ParseLocale(localeFlag)
		}
		cfg = c
		app = docnova.NewApp(c)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "display locale (tr, en)")
}
