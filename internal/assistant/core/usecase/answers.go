package usecase

import (
	"fmt"
	"math"
	"strings"
)

func buildPrompt(question string, f facts) string {
	var b strings.Builder
	b.WriteString("You are a task mining assistant. Answer the question using only the statistics below. ")
	b.WriteString("Be concise and mention concrete numbers.\n\n")
	fmt.Fprintf(&b, "Dataset: %s\n", f.dataset)
	if f.overview.Records > 0 {
		fmt.Fprintf(&b, "Events: %d, cases: %d, actors: %d, total duration: %.2f hours\n",
			f.overview.Records, f.overview.Cases, f.overview.Actors, f.overview.TotalDurationHours)
	}
	if g := f.topTeam; g != nil {
		fmt.Fprintf(&b, "Most active team: %s (%d activities, avg %.0fs)\n", g.Key, g.EventCount, g.AvgDurationSeconds)
	}
	if g := f.topActor; g != nil {
		fmt.Fprintf(&b, "Most active resource: %s (%d activities, avg %.0fs)\n", g.Key, g.EventCount, g.AvgDurationSeconds)
	}
	if g := f.topWindow; g != nil {
		fmt.Fprintf(&b, "Most used application: %s (%.0fs, %d clicks)\n", g.Key, g.TotalDurationSeconds, g.Clicks)
	}
	if g := f.topActivity; g != nil {
		fmt.Fprintf(&b, "Most time-consuming activity: %s (%.0fs)\n", g.Key, g.TotalDurationSeconds)
	}
	if c := f.topCase; c != nil {
		fmt.Fprintf(&b, "Longest case: %s (%.0fs over %d activities, variability %.2f)\n",
			c.CaseID, c.TotalDurationSeconds, c.EventCount, c.VariabilityRatio)
	}
	fmt.Fprintf(&b, "\nQuestion: %s", question)
	return b.String()
}

const helpAnswer = `I can help you analyze:
- Team performance
- Resource utilization
- Application usage
- Process workflow and bottlenecks
- Case durations

Ask me about any of these areas.`

const defaultAnswer = "I can help you analyze your task mining data. Try asking about team performance, " +
	"resource utilization, application usage or process analysis."

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// fallbackAnswer picks a canned summary by keyword.
func fallbackAnswer(question string, f facts) string {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, "team", "performance"):
		if g := f.topTeam; g != nil {
			return fmt.Sprintf("%s has the highest activity count with %d activities. The average duration per activity is %.0f seconds.",
				g.Key, g.EventCount, math.Round(g.AvgDurationSeconds))
		}
	case containsAny(q, "resource", "utilization", "agent"):
		if g := f.topActor; g != nil {
			return fmt.Sprintf("The most active resource is %s with %d activities, averaging %.0f seconds per activity.",
				g.Key, g.EventCount, math.Round(g.AvgDurationSeconds))
		}
	case containsAny(q, "application", "window", "app"):
		if g := f.topWindow; g != nil {
			return fmt.Sprintf("The most used application is %s with %.0f total seconds of usage and %d total clicks.",
				g.Key, g.TotalDurationSeconds, g.Clicks)
		}
	case containsAny(q, "process", "workflow", "bottleneck"):
		if g := f.topActivity; g != nil {
			return fmt.Sprintf("The most time-consuming activity is %q with %.0f total seconds. It may be a bottleneck in the process.",
				g.Key, g.TotalDurationSeconds)
		}
	case containsAny(q, "case", "amadeus"):
		if c := f.topCase; c != nil {
			return fmt.Sprintf("In the %s dataset, case %s has the longest duration with %.0f seconds and %d activities.",
				f.dataset, c.CaseID, math.Round(c.TotalDurationSeconds), c.EventCount)
		}
	case containsAny(q, "help", "what can you do"):
		return helpAnswer
	}

	if f.overview.Records == 0 {
		return "There is no data loaded for the " + string(f.dataset) + " dataset yet. " + defaultAnswer
	}
	return defaultAnswer
}
