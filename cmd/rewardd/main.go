package main

import (
	"log"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	pb "github.com/rlla/contrib-reward/go-scorer/gen/rewardpb"
	"github.com/rlla/contrib-reward/go-scorer/internal/rewardlog"
	"github.com/rlla/contrib-reward/go-scorer/internal/score"
	"github.com/rlla/contrib-reward/go-scorer/internal/service"
)

// #region main

func main() {
	// .env is optional; explicit environment wins.
	_ = godotenv.Load()

	addr := envOr("REWARD_ADDR", "localhost:50052")
	dbPath := envOr("REWARD_DB", "reward_log.db")
	experiment := envOr("EXPERIMENT_NAME", "default")

	cfg := configFromEnv()

	// Build the config once; the scorer never reads ambient state afterwards.
	scorer := score.NewScorer(cfg)

	var store *rewardlog.Store
	if dbPath != "" {
		var err error
		store, err = rewardlog.NewStore(dbPath)
		if err != nil {
			log.Fatalf("failed to open reward log: %v", err)
		}
		defer store.Close()
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterRewardScorerServer(grpcServer, service.NewServer(scorer, store, experiment))

	log.Printf("reward scorer ready: addr=%s db=%s experiment=%s policy=%s beta=%.4f",
		addr, dbPath, experiment, cfg.Policy, cfg.Beta)

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region config

// configFromEnv reads the training loop's configuration surface:
// CONTRIBUTION (enable flag), CONTRIB_TYPE (C0 | C1), BETA.
func configFromEnv() score.ScoreConfig {
	cfg := score.DefaultScoreConfig()

	enabled := envOr("CONTRIBUTION", "0") == "1"
	cfg.Policy = score.ParsePolicy(enabled, envOr("CONTRIB_TYPE", ""))

	if raw := os.Getenv("BETA"); raw != "" {
		beta, err := strconv.ParseFloat(raw, 64)
		if err != nil || beta < 0 {
			log.Fatalf("invalid BETA %q", raw)
		}
		cfg.Beta = beta
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion config
