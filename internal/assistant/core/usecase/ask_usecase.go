package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"process-mining-service/internal/assistant/core/ports"
	evdomain "process-mining-service/internal/events/core/domain"
	evports "process-mining-service/internal/events/core/ports"
	"process-mining-service/internal/metrics/core/aggregate"
	mdomain "process-mining-service/internal/metrics/core/domain"
	mports "process-mining-service/internal/metrics/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyQuestion  = errors.New("question is empty")
	ErrInvalidDataset = errors.New("invalid dataset")
)

const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

type AskInput struct {
	Question string
	Dataset  string // "" -> salesforce
}

type AskResult struct {
	MessageID string
	Answer    string
	Source    string
	Model     string
}

type AskUseCase struct {
	source    mports.EventSourcePort
	completer ports.CompleterPort // nil -> always fallback
}

func NewAskUseCase(source mports.EventSourcePort, completer ports.CompleterPort) *AskUseCase {
	return &AskUseCase{source: source, completer: completer}
}

// facts are the top records the answer is grounded on. Nil when the dataset is empty.
type facts struct {
	dataset     evdomain.Dataset
	overview    mdomain.Overview
	topTeam     *mdomain.GroupStats
	topActor    *mdomain.GroupStats
	topWindow   *mdomain.GroupStats
	topActivity *mdomain.GroupStats
	topCase     *mdomain.CaseStats
}

// Execute answers with the completer when one is configured and falls back
// to a summary built from the same statistics on any completer failure.
func (uc *AskUseCase) Execute(ctx context.Context, in AskInput) (AskResult, error) {
	res := AskResult{MessageID: uuid.NewString()}

	question := strings.TrimSpace(in.Question)
	if question == "" {
		return res, ErrEmptyQuestion
	}

	ds := evdomain.DatasetSalesforce
	if in.Dataset != "" {
		parsed, err := evdomain.ParseDataset(in.Dataset)
		if err != nil {
			return res, fmt.Errorf("%w: %q", ErrInvalidDataset, in.Dataset)
		}
		ds = parsed
	}

	f := uc.collectFacts(ctx, ds)

	if uc.completer != nil {
		answer, err := uc.completer.Complete(ctx, buildPrompt(question, f))
		answer = strings.TrimSpace(answer)
		if err == nil && answer != "" {
			res.Answer = answer
			res.Source = SourceLLM
			res.Model = uc.completer.Model()
			return res, nil
		}
		log.Warn().Err(err).Str("message_id", res.MessageID).Msg("completion failed, using fallback answer")
	}

	res.Answer = fallbackAnswer(question, f)
	res.Source = SourceFallback
	return res, nil
}

func (uc *AskUseCase) collectFacts(ctx context.Context, ds evdomain.Dataset) facts {
	f := facts{dataset: ds}

	events, err := uc.source.ListEvents(ctx, evports.EventFilter{Dataset: ds})
	if err != nil {
		log.Warn().Err(err).Str("dataset", string(ds)).Msg("assistant could not load events")
		return f
	}
	if len(events) == 0 {
		return f
	}

	f.overview = aggregate.Summarize(events)
	byCount := func(g mdomain.GroupStats) float64 { return float64(g.EventCount) }
	byDuration := func(g mdomain.GroupStats) float64 { return g.TotalDurationSeconds }

	f.topTeam = topGroup(events, mdomain.DimensionTeam, byCount)
	f.topActor = topGroup(events, mdomain.DimensionActor, byCount)
	f.topWindow = topGroup(events, mdomain.DimensionWindow, byDuration)
	f.topActivity = topGroup(events, mdomain.DimensionActivity, byDuration)

	cases := aggregate.TopNFunc(aggregate.ProjectCases(events), 1, func(c mdomain.CaseStats) float64 {
		return c.TotalDurationSeconds
	})
	if len(cases) == 1 {
		f.topCase = &cases[0]
	}
	return f
}

func topGroup(events []evdomain.Event, dim mdomain.Dimension, value func(mdomain.GroupStats) float64) *mdomain.GroupStats {
	groups, err := aggregate.ProjectGroups(events, dim)
	if err != nil {
		return nil
	}
	top := aggregate.TopNFunc(groups, 1, value)
	if len(top) == 0 {
		return nil
	}
	return &top[0]
}
