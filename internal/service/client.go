package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/rlla/contrib-reward/go-scorer/gen/rewardpb"
	"github.com/rlla/contrib-reward/go-scorer/internal/score"
)

// #region client-struct

// Client wraps the gRPC connection to a reward scoring server. Used by the
// replay and inspection tooling; the training loop talks to the server from
// its own language.
type Client struct {
	conn   *grpc.ClientConn
	client pb.RewardScorerClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to a reward scoring gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, client: pb.NewRewardScorerClient(conn)}, nil
}

// NewClientWithService creates a Client with an injected service stub.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.RewardScorerClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region rpcs

// StartEpisode opens a new episode on the server and returns its ID.
func (c *Client) StartEpisode(ctx context.Context, experiment string) (string, error) {
	resp, err := c.client.StartEpisode(ctx, &pb.StartEpisodeRequest{Experiment: experiment})
	if err != nil {
		return "", fmt.Errorf("start episode rpc: %w", err)
	}
	return resp.EpisodeId, nil
}

// ScoreStep scores one step on the server.
func (c *Client) ScoreStep(ctx context.Context, episodeID string, in score.StepInput) (score.StepScore, error) {
	resp, err := c.client.ScoreStep(ctx, stepInputToProto(episodeID, in))
	if err != nil {
		return score.StepScore{}, fmt.Errorf("score step rpc: %w", err)
	}
	return scoreFromProto(resp), nil
}

// ScoreBatch scores a batch of steps on the server, preserving order.
func (c *Client) ScoreBatch(ctx context.Context, episodeID string, ins []score.StepInput) ([]score.StepScore, error) {
	req := &pb.ScoreBatchRequest{Steps: make([]*pb.ScoreStepRequest, 0, len(ins))}
	for _, in := range ins {
		req.Steps = append(req.Steps, stepInputToProto(episodeID, in))
	}
	resp, err := c.client.ScoreBatch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("score batch rpc: %w", err)
	}
	out := make([]score.StepScore, len(resp.Scores))
	for i, sc := range resp.Scores {
		out[i] = scoreFromProto(sc)
	}
	return out, nil
}

// #endregion rpcs

// #region conversion

func stepInputToProto(episodeID string, in score.StepInput) *pb.ScoreStepRequest {
	req := &pb.ScoreStepRequest{
		EpisodeId:      episodeID,
		Response:       in.Response,
		Step:           int32(in.Step),
		Prev:           stepDictToProto(in.Prev),
		Cur:            stepDictToProto(in.Cur),
		TaskComplexity: in.TaskComplexity,
		FormatScore:    in.FormatScore,
		CorrectScore:   in.CorrectScore,
		LengthScore:    in.LengthScore,
	}
	if in.TaskInfo != nil {
		req.TaskInfo = &pb.TaskInfo{
			TaskType:        string(in.TaskInfo.TaskType),
			ExpectedSteps:   int32(in.TaskInfo.ExpectedSteps),
			CurrentProgress: in.TaskInfo.CurrentProgress,
		}
	}
	return req
}

func stepDictToProto(d score.StepDict) *pb.StepDict {
	out := &pb.StepDict{BbHash: d.BBHash}
	if raw := rawValueString(d.ValueEst); raw != nil {
		out.ValueEst = raw
	}
	return out
}

// rawValueString renders a value estimate in its textual wire form. nil stays
// nil so the wire distinguishes "absent" from zero.
func rawValueString(v any) *string {
	if v == nil {
		return nil
	}
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case float64:
		s = strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(x), 'g', -1, 32)
	case json.Number:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}
	return &s
}

func scoreFromProto(resp *pb.ScoreStepResponse) score.StepScore {
	return score.StepScore{
		Total:        resp.Total,
		Format:       resp.Format,
		Correctness:  resp.Correctness,
		Length:       resp.Length,
		Contribution: resp.Contribution,
	}
}

// #endregion conversion
