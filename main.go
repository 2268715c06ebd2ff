package main

import (
	"fmt"
	"os"

	"github.com/Anime-Verse-backend/AnimeVerse/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "animeverse: %v\n", err)
		os.Exit(1)
	}
}
