package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rlla/contrib-reward/go-scorer/internal/replay"
	"github.com/rlla/contrib-reward/go-scorer/internal/rewardlog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to reward_log.db")
	episodeID := flag.String("episode", "", "episode to export (default: latest)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--episode id]")
		os.Exit(2)
	}

	if err := run(*dbPath, *episodeID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, episodeID, outPath string) error {
	store, err := rewardlog.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	var ep rewardlog.Episode
	if episodeID == "" {
		ep, err = store.LatestEpisode()
	} else {
		ep, err = store.GetEpisode(episodeID)
	}
	if err != nil {
		return fmt.Errorf("load episode: %w", err)
	}

	steps, err := store.Steps(ep.EpisodeID)
	if err != nil {
		return fmt.Errorf("load steps: %w", err)
	}
	if len(steps) == 0 {
		return fmt.Errorf("episode %s has no logged steps", ep.EpisodeID)
	}

	f, err := replay.FixtureFromRecords(ep, steps)
	if err != nil {
		return fmt.Errorf("reconstruct fixture: %w", err)
	}
	f.Description = fmt.Sprintf("exported from episode %s (%s)", ep.EpisodeID, ep.Experiment)

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("exported %d steps from episode %s to %s\n", len(f.Steps), ep.EpisodeID, outPath)
	return nil
}

// #endregion export
