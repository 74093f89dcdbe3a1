package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"process-mining-service/internal/assistant/core/usecase"
	evdomain "process-mining-service/internal/events/core/domain"
	evports "process-mining-service/internal/events/core/ports"
)

type fakeEventSource struct {
	ListFn     func(ctx context.Context, f evports.EventFilter) ([]evdomain.Event, error)
	lastFilter evports.EventFilter
}

func (f *fakeEventSource) ListEvents(ctx context.Context, flt evports.EventFilter) ([]evdomain.Event, error) {
	f.lastFilter = flt
	if f.ListFn != nil {
		return f.ListFn(ctx, flt)
	}
	return nil, nil
}

type fakeCompleter struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
	lastPrompt string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.CompleteFn(ctx, prompt)
}

func (f *fakeCompleter) Model() string { return "test-model" }

func sampleSource() *fakeEventSource {
	return &fakeEventSource{ListFn: func(context.Context, evports.EventFilter) ([]evdomain.Event, error) {
		return []evdomain.Event{
			{CaseID: "C1", ActorID: "alice", Team: "Sales", Window: "CRM", Activity: "Review", DurationSeconds: 100, MouseClicks: 4},
			{CaseID: "C1", ActorID: "alice", Team: "Sales", Window: "Mail", Activity: "Reply", DurationSeconds: 20},
			{CaseID: "C2", ActorID: "bob", Team: "Ops", Window: "CRM", Activity: "Review", DurationSeconds: 300, MouseClicks: 1},
		}, nil
	}}
}

// ------------------------------------------------------------
// Fallback answers
// ------------------------------------------------------------

func TestAsk_FallbackByKeyword(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"How is my team performing?", "Sales has the highest activity count with 2 activities"},
		{"Resource utilization?", "most active resource is alice"},
		{"Which app is used most?", "most used application is CRM with 400 total seconds"},
		{"Where is the workflow slow?", `"Review" with 400 total seconds`},
		{"Longest case?", "case C2 has the longest duration with 300 seconds"},
		{"help", "I can help you analyze:"},
		{"hello there", "Try asking about team performance"},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			uc := usecase.NewAskUseCase(sampleSource(), nil)

			res, err := uc.Execute(context.Background(), usecase.AskInput{Question: tt.question})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Source != usecase.SourceFallback || res.Model != "" {
				t.Fatalf("expected fallback source, got %+v", res)
			}
			if !strings.Contains(res.Answer, tt.want) {
				t.Fatalf("expected answer to contain %q, got %q", tt.want, res.Answer)
			}
			if res.MessageID == "" {
				t.Fatalf("expected message id")
			}
		})
	}
}

func TestAsk_FallbackWhenCompleterFails(t *testing.T) {
	completer := &fakeCompleter{CompleteFn: func(context.Context, string) (string, error) {
		return "", errors.New("rate limited")
	}}
	uc := usecase.NewAskUseCase(sampleSource(), completer)

	res, err := uc.Execute(context.Background(), usecase.AskInput{Question: "team?", Dataset: "amadeus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != usecase.SourceFallback {
		t.Fatalf("expected fallback, got %+v", res)
	}
}

// ------------------------------------------------------------
// Completer
// ------------------------------------------------------------

func TestAsk_UsesCompleterWithContext(t *testing.T) {
	src := sampleSource()
	completer := &fakeCompleter{CompleteFn: func(context.Context, string) (string, error) {
		return "  Sales leads with 2 activities.  ", nil
	}}
	uc := usecase.NewAskUseCase(src, completer)

	res, err := uc.Execute(context.Background(), usecase.AskInput{Question: "Who leads?", Dataset: "Amadeus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != usecase.SourceLLM || res.Model != "test-model" || res.Answer != "Sales leads with 2 activities." {
		t.Fatalf("unexpected result: %+v", res)
	}
	if src.lastFilter.Dataset != evdomain.DatasetAmadeus {
		t.Fatalf("expected amadeus events, got %q", src.lastFilter.Dataset)
	}
	for _, want := range []string{"Dataset: amadeus", "Most active team: Sales", "Longest case: C2", "Question: Who leads?"} {
		if !strings.Contains(completer.lastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, completer.lastPrompt)
		}
	}
}

// ------------------------------------------------------------
// Validation
// ------------------------------------------------------------

func TestAsk_Validation(t *testing.T) {
	uc := usecase.NewAskUseCase(sampleSource(), nil)

	if _, err := uc.Execute(context.Background(), usecase.AskInput{Question: "   "}); !errors.Is(err, usecase.ErrEmptyQuestion) {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), usecase.AskInput{Question: "hi", Dataset: "jira"}); !errors.Is(err, usecase.ErrInvalidDataset) {
		t.Fatalf("expected ErrInvalidDataset, got %v", err)
	}
}

func TestAsk_NoDataStillAnswers(t *testing.T) {
	src := &fakeEventSource{ListFn: func(context.Context, evports.EventFilter) ([]evdomain.Event, error) {
		return nil, errors.New("db down")
	}}
	uc := usecase.NewAskUseCase(src, nil)

	res, err := uc.Execute(context.Background(), usecase.AskInput{Question: "team?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Answer, "no data loaded") {
		t.Fatalf("unexpected answer: %q", res.Answer)
	}
}
