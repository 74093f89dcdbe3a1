package aggregate

import (
	"process-mining-service/internal/events/core/domain"
	mdomain "process-mining-service/internal/metrics/core/domain"
)

func ByCase(e domain.Event) string        { return e.CaseID }
func ByActor(e domain.Event) string       { return e.ActorID }
func ByTeam(e domain.Event) string        { return e.Team }
func ByWindow(e domain.Event) string      { return e.Window }
func ByApplication(e domain.Event) string { return e.Application }
func ByActivity(e domain.Event) string    { return e.Activity }
func ByStep(e domain.Event) string        { return e.Step }

var dimensionKeys = map[mdomain.Dimension]KeyFunc{
	mdomain.DimensionCase:        ByCase,
	mdomain.DimensionActor:       ByActor,
	mdomain.DimensionTeam:        ByTeam,
	mdomain.DimensionWindow:      ByWindow,
	mdomain.DimensionApplication: ByApplication,
	mdomain.DimensionActivity:    ByActivity,
	mdomain.DimensionStep:        ByStep,
}

// KeyFor returns the key function of a dimension.
func KeyFor(d mdomain.Dimension) (KeyFunc, bool) {
	fn, ok := dimensionKeys[d]
	return fn, ok
}
