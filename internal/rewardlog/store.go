package rewardlog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS episodes (
	episode_id   TEXT PRIMARY KEY,
	experiment   TEXT NOT NULL,
	policy       TEXT NOT NULL,
	beta         REAL NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS step_scores (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	episode_id      TEXT NOT NULL,
	step            INTEGER NOT NULL,
	response        TEXT,
	prev_dict_json  TEXT,
	cur_dict_json   TEXT,
	task_complexity REAL NOT NULL DEFAULT 0,
	task_info_json  TEXT,
	format          REAL NOT NULL,
	correctness     REAL NOT NULL,
	length          REAL NOT NULL,
	contribution    REAL NOT NULL,
	total           REAL NOT NULL,
	created_at      TEXT NOT NULL,
	FOREIGN KEY (episode_id) REFERENCES episodes(episode_id)
);

CREATE INDEX IF NOT EXISTS idx_step_scores_episode ON step_scores(episode_id, step);
`

// #endregion schema

// #region store-struct

// Store persists episodes and per-step scores in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor

// DB returns the underlying *sql.DB for use by tooling (e.g. inspect).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region create-episode

// CreateEpisode records a new episode under the given experiment name and
// scoring configuration.
func (s *Store) CreateEpisode(experiment string, cfg score.ScoreConfig) (Episode, error) {
	ep := Episode{
		EpisodeID:  uuid.New().String(),
		Experiment: experiment,
		Policy:     string(cfg.Policy),
		Beta:       cfg.Beta,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO episodes (episode_id, experiment, policy, beta, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		ep.EpisodeID, ep.Experiment, ep.Policy, ep.Beta, ep.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Episode{}, fmt.Errorf("insert episode: %w", err)
	}
	return ep, nil
}

// #endregion create-episode

// #region log-step

// LogStep appends one scored step to an episode. The step dicts, task
// complexity, and task info are stored so a replay can reconstruct the exact
// scoring inputs.
func (s *Store) LogStep(episodeID string, in score.StepInput, sc score.StepScore) error {
	prevJSON, err := json.Marshal(in.Prev)
	if err != nil {
		return fmt.Errorf("marshal prev dict: %w", err)
	}
	curJSON, err := json.Marshal(in.Cur)
	if err != nil {
		return fmt.Errorf("marshal cur dict: %w", err)
	}
	var taskInfoJSON any
	if in.TaskInfo != nil {
		b, err := json.Marshal(in.TaskInfo)
		if err != nil {
			return fmt.Errorf("marshal task info: %w", err)
		}
		taskInfoJSON = string(b)
	}

	_, err = s.db.Exec(
		`INSERT INTO step_scores (episode_id, step, response, prev_dict_json, cur_dict_json,
		                          task_complexity, task_info_json,
		                          format, correctness, length, contribution, total, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		episodeID, in.Step, nullIfEmpty(in.Response), string(prevJSON), string(curJSON),
		in.TaskComplexity, taskInfoJSON,
		sc.Format, sc.Correctness, sc.Length, sc.Contribution, sc.Total,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert step score: %w", err)
	}
	return nil
}

// #endregion log-step

// #region queries

// GetEpisode loads one episode by ID.
func (s *Store) GetEpisode(episodeID string) (Episode, error) {
	row := s.db.QueryRow(
		`SELECT episode_id, experiment, policy, beta, created_at FROM episodes WHERE episode_id = ?`,
		episodeID,
	)
	return scanEpisode(row)
}

// LatestEpisode loads the most recently created episode.
func (s *Store) LatestEpisode() (Episode, error) {
	row := s.db.QueryRow(
		`SELECT episode_id, experiment, policy, beta, created_at
		 FROM episodes ORDER BY created_at DESC LIMIT 1`,
	)
	return scanEpisode(row)
}

// RecentEpisodes lists the n most recently created episodes.
func (s *Store) RecentEpisodes(n int) ([]Episode, error) {
	rows, err := s.db.Query(
		`SELECT episode_id, experiment, policy, beta, created_at
		 FROM episodes ORDER BY created_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query episodes: %w", err)
	}
	defer rows.Close()

	var out []Episode
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ep)
	}
	return out, rows.Err()
}

// Steps returns an episode's step scores ordered by step index.
func (s *Store) Steps(episodeID string) ([]StepRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, episode_id, step, response, prev_dict_json, cur_dict_json,
		        task_complexity, task_info_json,
		        format, correctness, length, contribution, total, created_at
		 FROM step_scores WHERE episode_id = ? ORDER BY step ASC, id ASC`,
		episodeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()

	var out []StepRecord
	for rows.Next() {
		var rec StepRecord
		var response, taskInfoJSON sql.NullString
		var createdAt string
		err := rows.Scan(
			&rec.ID, &rec.EpisodeID, &rec.Step, &response, &rec.PrevDictJSON, &rec.CurDictJSON,
			&rec.TaskComplexity, &taskInfoJSON,
			&rec.Format, &rec.Correctness, &rec.Length, &rec.Contribution, &rec.Total, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		rec.Response = response.String
		rec.TaskInfoJSON = taskInfoJSON.String
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse step timestamp: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion queries

// #region helpers

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row rowScanner) (Episode, error) {
	var ep Episode
	var createdAt string
	if err := row.Scan(&ep.EpisodeID, &ep.Experiment, &ep.Policy, &ep.Beta, &createdAt); err != nil {
		return Episode{}, fmt.Errorf("scan episode: %w", err)
	}
	var err error
	ep.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Episode{}, fmt.Errorf("parse episode timestamp: %w", err)
	}
	return ep, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
