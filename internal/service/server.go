// Package service exposes the composite scorer to the training loop over gRPC.
//
//go:generate protoc --proto_path=../../proto --go_out=../.. --go_opt=module=github.com/rlla/contrib-reward/go-scorer --go-grpc_out=../.. --go-grpc_opt=module=github.com/rlla/contrib-reward/go-scorer reward.proto
package service

import (
	"context"
	"fmt"

	pb "github.com/rlla/contrib-reward/go-scorer/gen/rewardpb"
	"github.com/rlla/contrib-reward/go-scorer/internal/contrib"
	"github.com/rlla/contrib-reward/go-scorer/internal/rewardlog"
	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

// #region server

// Server implements the RewardScorer gRPC service around a Scorer. The store
// is optional; without it ScoreStep serves scores but logs nothing.
type Server struct {
	pb.UnimplementedRewardScorerServer

	scorer     *score.Scorer
	store      *rewardlog.Store
	experiment string
}

// NewServer creates a reward scoring server. store may be nil. experiment
// names episodes whose StartEpisode request leaves the experiment empty.
func NewServer(scorer *score.Scorer, store *rewardlog.Store, experiment string) *Server {
	return &Server{scorer: scorer, store: store, experiment: experiment}
}

// #endregion server

// #region start-episode

// StartEpisode opens a new episode in the reward log and returns its ID.
func (s *Server) StartEpisode(_ context.Context, req *pb.StartEpisodeRequest) (*pb.StartEpisodeResponse, error) {
	if s.store == nil {
		return nil, fmt.Errorf("reward log disabled: no store configured")
	}
	experiment := req.Experiment
	if experiment == "" {
		experiment = s.experiment
	}
	ep, err := s.store.CreateEpisode(experiment, s.scorer.Config())
	if err != nil {
		return nil, fmt.Errorf("create episode: %w", err)
	}
	return &pb.StartEpisodeResponse{EpisodeId: ep.EpisodeID}, nil
}

// #endregion start-episode

// #region score-step

// ScoreStep computes the composite score for one step and, when the request
// names an episode and a store is configured, appends it to the reward log.
func (s *Server) ScoreStep(_ context.Context, req *pb.ScoreStepRequest) (*pb.ScoreStepResponse, error) {
	in := stepInputFromProto(req)
	sc := s.scorer.Score(in)

	if req.EpisodeId != "" && s.store != nil {
		if err := s.store.LogStep(req.EpisodeId, in, sc); err != nil {
			return nil, fmt.Errorf("log step: %w", err)
		}
	}

	return scoreToProto(sc), nil
}

// ScoreBatch scores a batch of steps in request order.
func (s *Server) ScoreBatch(ctx context.Context, req *pb.ScoreBatchRequest) (*pb.ScoreBatchResponse, error) {
	out := &pb.ScoreBatchResponse{Scores: make([]*pb.ScoreStepResponse, 0, len(req.Steps))}
	for _, step := range req.Steps {
		resp, err := s.ScoreStep(ctx, step)
		if err != nil {
			return nil, err
		}
		out.Scores = append(out.Scores, resp)
	}
	return out, nil
}

// #endregion score-step

// #region conversion

// stepInputFromProto maps a wire request onto a domain StepInput. Absent
// optional fields stay nil so the policies see "no signal" rather than zero.
func stepInputFromProto(req *pb.ScoreStepRequest) score.StepInput {
	in := score.StepInput{
		Response:       req.Response,
		Step:           int(req.Step),
		Prev:           stepDictFromProto(req.Prev),
		Cur:            stepDictFromProto(req.Cur),
		TaskComplexity: req.TaskComplexity,
		FormatScore:    req.FormatScore,
		CorrectScore:   req.CorrectScore,
		LengthScore:    req.LengthScore,
	}
	if req.TaskInfo != nil {
		in.TaskInfo = &contrib.TaskInfo{
			TaskType:        contrib.TaskType(req.TaskInfo.TaskType),
			ExpectedSteps:   int(req.TaskInfo.ExpectedSteps),
			CurrentProgress: req.TaskInfo.CurrentProgress,
		}
	}
	return in
}

func stepDictFromProto(d *pb.StepDict) score.StepDict {
	if d == nil {
		return score.StepDict{}
	}
	out := score.StepDict{BBHash: d.BbHash}
	if d.ValueEst != nil {
		out.ValueEst = *d.ValueEst
	}
	return out
}

func scoreToProto(sc score.StepScore) *pb.ScoreStepResponse {
	return &pb.ScoreStepResponse{
		Total:        sc.Total,
		Format:       sc.Format,
		Correctness:  sc.Correctness,
		Length:       sc.Length,
		Contribution: sc.Contribution,
	}
}

// #endregion conversion
