package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/reynaldiarya/flashpos/internal/store"
)

var passwordFlag string

func init() {
	loginCmd.Flags().StringVarP(&passwordFlag, "password", "p", "", "password (prompted when omitted)")
}

// flashpos login <email>
var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and persist the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, ts, err := newClient()
		if err != nil {
			return err
		}

		password := passwordFlag
		if password == "" {
			fmt.Fprint(os.Stderr, "Password: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = string(raw)
		}

		session := store.NewAuth(client.Auth, ts)
		if err := session.Login(cmd.Context(), args[0], password); err != nil {
			return err
		}

		u := session.User()
		fmt.Printf("Logged in as %s <%s>\n", u.Name, u.Email)
		return nil
	},
}

// flashpos logout
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the session and forget the token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, ts, err := newClient()
		if err != nil {
			return err
		}

		session := store.NewAuth(client.Auth, ts)
		if err := session.Logout(cmd.Context()); err != nil {
			// Local state is already cleared; the remote failure is advisory.
			fmt.Fprintf(os.Stderr, "warning: backend logout failed: %v\n", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

// flashpos whoami
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, ts, err := newClient()
		if err != nil {
			return err
		}

		session := store.NewAuth(client.Auth, ts)
		if !session.IsAuthenticated() {
			return fmt.Errorf("not logged in")
		}
		if err := session.FetchUser(cmd.Context()); err != nil {
			return err
		}

		u := session.User()
		fmt.Printf("%s <%s> (id %d)\n", u.Name, u.Email, u.ID)
		return nil
	},
}
