package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Anime-Verse-backend/AnimeVerse/app"
	"github.com/Anime-Verse-backend/AnimeVerse/infra/animeverse"
)

func addTicket(topLevel *cobra.Command) {
	var subject, ticketType string

	cmd := &cobra.Command{
		Use:   "ticket [message]",
		Short: "File a support ticket with the AnimeVerse staff.",
		Example: `
animeverse ticket --subject "Broken episode page" "Episode 5 of Planetes 404s."
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := buildWiring()
			if err != nil {
				return err
			}

			if subject == "" {
				subject, err = promptLine(cmd, "Subject: ")
				if err != nil {
					return err
				}
			}
			message := strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				message, err = promptLine(cmd, "Message: ")
				if err != nil {
					return err
				}
			}
			if subject == "" || message == "" {
				return fmt.Errorf("a ticket needs both a subject and a message")
			}

			support := animeverse.NewSupportService(w.client)
			confirmation, err := support.Submit(context.Background(), app.Ticket{
				Subject: subject,
				Message: message,
				Type:    ticketType,
			})
			if err != nil {
				return fmt.Errorf("ticket not filed: %w", err)
			}

			if confirmation == "" {
				confirmation = "Ticket filed."
			}
			fmt.Fprintln(cmd.OutOrStdout(), confirmation)
			return nil
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "ticket subject (prompted when omitted)")
	cmd.Flags().StringVarP(&ticketType, "type", "t", "general", "ticket type (general, bug, account)")

	topLevel.AddCommand(cmd)
}
