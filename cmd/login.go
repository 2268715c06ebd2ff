package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Anime-Verse-backend/AnimeVerse/infra/animeverse"
	"github.com/Anime-Verse-backend/AnimeVerse/infra/auth"
)

func addLogin(topLevel *cobra.Command) {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to AnimeVerse and store the session token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := buildWiring()
			if err != nil {
				return err
			}

			if email == "" {
				email, err = promptLine(cmd, "Email: ")
				if err != nil {
					return err
				}
			}
			password, err := promptPassword(cmd, "Password: ")
			if err != nil {
				return err
			}

			accounts := animeverse.NewAccountService(w.client)
			session, err := accounts.Login(context.Background(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := auth.SaveToken(w.store, session.Token); err != nil {
				return fmt.Errorf("storing token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s).\n", session.User.Name, session.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (prompted when omitted)")

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := buildWiring()
			if err != nil {
				return err
			}
			if err := auth.ClearToken(w.store); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func promptLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}
	// Piped input (tests, scripts) falls back to a plain line read.
	return promptLine(cmd, "")
}
