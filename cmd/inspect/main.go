package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rlla/contrib-reward/go-scorer/internal/audit"
	"github.com/rlla/contrib-reward/go-scorer/internal/rewardlog"
	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to reward_log.db")
	last := flag.Int("last", 20, "show N most recent episodes")
	episodeID := flag.String("episode", "", "show single episode detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/reward_log.db [--last N] [--episode id] [--json]")
		os.Exit(2)
	}

	store, err := rewardlog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *episodeID != "" {
		err = runDetailMode(store, *episodeID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type episodeRow struct {
	EpisodeID  string  `json:"episode_id"`
	Experiment string  `json:"experiment"`
	Policy     string  `json:"policy"`
	Beta       float64 `json:"beta"`
	Steps      int     `json:"steps"`
	CreatedAt  string  `json:"created_at"`
}

func runListMode(store *rewardlog.Store, last int, jsonOut bool) error {
	episodes, err := store.RecentEpisodes(last)
	if err != nil {
		return err
	}

	rows := make([]episodeRow, 0, len(episodes))
	for _, ep := range episodes {
		steps, err := store.Steps(ep.EpisodeID)
		if err != nil {
			return err
		}
		rows = append(rows, episodeRow{
			EpisodeID:  ep.EpisodeID,
			Experiment: ep.Experiment,
			Policy:     ep.Policy,
			Beta:       ep.Beta,
			Steps:      len(steps),
			CreatedAt:  ep.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}
	for _, r := range rows {
		fmt.Printf("%s  %-16s policy=%-3s beta=%.4f steps=%-4d %s\n",
			r.EpisodeID, r.Experiment, r.Policy, r.Beta, r.Steps, r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type episodeDetail struct {
	Episode episodeRow             `json:"episode"`
	Steps   []rewardlog.StepRecord `json:"steps"`
	Audit   audit.AuditResult      `json:"audit"`
}

func runDetailMode(store *rewardlog.Store, episodeID string, jsonOut bool) error {
	ep, err := store.GetEpisode(episodeID)
	if err != nil {
		return err
	}
	steps, err := store.Steps(episodeID)
	if err != nil {
		return err
	}

	scores := make([]score.StepScore, len(steps))
	for i, rec := range steps {
		scores[i] = score.StepScore{
			Total:        rec.Total,
			Format:       rec.Format,
			Correctness:  rec.Correctness,
			Length:       rec.Length,
			Contribution: rec.Contribution,
		}
	}
	auditResult := audit.NewAuditor(audit.DefaultAuditConfig()).Run(scores, ep.Beta)

	if jsonOut {
		detail := episodeDetail{
			Episode: episodeRow{
				EpisodeID:  ep.EpisodeID,
				Experiment: ep.Experiment,
				Policy:     ep.Policy,
				Beta:       ep.Beta,
				Steps:      len(steps),
				CreatedAt:  ep.CreatedAt.Format("2006-01-02 15:04:05"),
			},
			Steps: steps,
			Audit: auditResult,
		}
		return json.NewEncoder(os.Stdout).Encode(detail)
	}

	fmt.Printf("episode %s  experiment=%s policy=%s beta=%.4f\n", ep.EpisodeID, ep.Experiment, ep.Policy, ep.Beta)
	for _, rec := range steps {
		fmt.Printf("  step %3d  format=%.3f correct=%.3f length=%.3f contribution=%.4f total=%.4f\n",
			rec.Step, rec.Format, rec.Correctness, rec.Length, rec.Contribution, rec.Total)
	}
	fmt.Printf("audit: %s\n", auditResult.Reason)
	return nil
}

// #endregion detail-mode
