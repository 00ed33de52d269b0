package cmd

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/docnova/go-docnova-client/docnova/model"
)

var (
	emailFlag    string
	passwordFlag string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds := model.Credentials{
			Email:    emailFlag,
			Password: passwordFlag,
		}
		if creds.Email == "" {
			creds.Email = cfg.Email
		}
		if creds.Password == "" {
			creds.Password = cfg.Password
		}

		if err := app.Session.Login(cmd.Context(), creds); err != nil {
			return errors.New(app.Session.Err())
		}
		fmt.Println(app.Localizer().LoginSuccess())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Run: func(cmd *cobra.Command, args []string) {
		app.Session.Logout()
	},
}

func init() {
	loginCmd.Flags().StringVar(&emailFlag, "email", "", "account email (falls back to DOCNOVA_EMAIL)")
	loginCmd.Flags().StringVar(&passwordFlag, "password", "", "account password (falls back to DOCNOVA_PASSWORD)")
	rootCmd.AddCommand(loginCmd, logoutCmd)
}
