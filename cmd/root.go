// Package cmd wires the CLI. The bare command starts the TUI; login,
// logout, and version are subcommands.
package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Anime-Verse-backend/AnimeVerse/infra/animeverse"
	"github.com/Anime-Verse-backend/AnimeVerse/infra/auth"
	"github.com/Anime-Verse-backend/AnimeVerse/infra/config"
	"github.com/Anime-Verse-backend/AnimeVerse/infra/store"
	"github.com/Anime-Verse-backend/AnimeVerse/tui"
)

// New builds the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "animeverse",
		Short:        "Browse AnimeVerse and join its comment threads from the terminal.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	addLogin(cmd)
	addLogout(cmd)
	addTicket(cmd)
	addVersion(cmd)
	return cmd
}

// wiring holds the constructed dependency graph shared by the TUI and
// the auth subcommands.
type wiring struct {
	cfg    config.Config
	store  *store.DiskStore
	client *animeverse.Client
}

func buildWiring() (wiring, error) {
	cfg, err := config.Load()
	if err != nil {
		return wiring{}, err
	}

	kv := store.New(cfg.DataDir)
	tokenProvider := auth.NewStoreTokenProvider(kv)
	client := animeverse.NewClient(cfg.BaseURL, tokenProvider)

	return wiring{cfg: cfg, store: kv, client: client}, nil
}

func runTUI() error {
	w, err := buildWiring()
	if err != nil {
		return err
	}

	root := tui.NewApp(tui.Deps{
		Comments:  animeverse.NewCommentService(w.client),
		Catalog:   animeverse.NewCatalogService(w.client),
		Recommend: animeverse.NewRecommendService(w.client),
		Account:   animeverse.NewAccountService(w.client),
		Store:     w.store,
		Poll:      w.cfg.PollEvery,
	})

	p := tea.NewProgram(root, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
