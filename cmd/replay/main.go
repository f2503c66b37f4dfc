package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/rlla/contrib-reward/go-scorer/internal/replay"
	"github.com/rlla/contrib-reward/go-scorer/internal/rewardlog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to reward_log.db (DB mode)")
	episodeID := flag.String("episode", "", "episode to replay (DB mode, default: latest)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/reward_log.db [--episode id]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *episodeID)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	results, summary := replay.NewHarness(replay.DefaultReplayConfig()).Run(f)
	printResults(results)
	return printSummary(summary)
}

// #endregion fixture-mode

// #region db-mode

// runDBMode re-scores an episode's logged steps under the episode's own
// policy and beta, then compares against the stored totals.
func runDBMode(dbPath, episodeID string) int {
	store, err := rewardlog.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: open db: %v\n", err)
		return 1
	}
	defer store.Close()

	f, err := fixtureFromEpisode(store, episodeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	results, summary := replay.NewHarness(replay.DefaultReplayConfig()).Run(f)
	printResults(results)
	return printSummary(summary)
}

// fixtureFromEpisode reconstructs scoring inputs and expectations from the
// reward log. Empty episodeID selects the most recent episode.
func fixtureFromEpisode(store *rewardlog.Store, episodeID string) (*replay.Fixture, error) {
	var ep rewardlog.Episode
	var err error
	if episodeID == "" {
		ep, err = store.LatestEpisode()
	} else {
		ep, err = store.GetEpisode(episodeID)
	}
	if err != nil {
		return nil, fmt.Errorf("load episode: %w", err)
	}

	steps, err := store.Steps(ep.EpisodeID)
	if err != nil {
		return nil, fmt.Errorf("load steps: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("episode %s has no logged steps", ep.EpisodeID)
	}

	return replay.FixtureFromRecords(ep, steps)
}

// #endregion db-mode

// #region output

func printResults(results []replay.ReplayResult) {
	for _, r := range results {
		status := "ok"
		if r.Want == nil {
			status = "unchecked"
		} else if !r.Match {
			status = "MISMATCH"
		}
		fmt.Printf("step %3d  total=%.6f contribution=%.6f  %s", r.Step, r.Got.Total, r.Got.Contribution, status)
		if r.Want != nil && !r.Match {
			fmt.Printf("  (want total=%.6f contribution=%.6f, delta=%g)", r.Want.Total, r.Want.Contribution, r.Delta)
		}
		fmt.Println()
	}
}

func printSummary(summary replay.ReplaySummary) int {
	fmt.Printf("\n%d steps: %d match, %d mismatch, %d unchecked",
		summary.TotalSteps, summary.Matches, summary.Mismatches, summary.Unchecked)
	if summary.WorstDelta > 0 {
		fmt.Printf(", worst delta %g", summary.WorstDelta)
	}
	fmt.Println()
	fmt.Printf("audit: %s\n", summary.Audit.Reason)

	if summary.Mismatches > 0 || !summary.Audit.Passed || math.IsNaN(summary.WorstDelta) {
		return 1
	}
	return 0
}

// #endregion output
