// Package scoring holds the prioritization formulas. It is the only place
// RICE and ICE composites are computed; every write path that changes a
// scoring input recomputes the derived field through this package inside the
// same transaction.
package scoring

import (
	"math"

	"github.com/ideaforge/ideaforge-backend/internal/platform/apperr"
)

// RICE computes (reach × impact × confidence/100) / effort. Confidence is a
// percentage in [0,100]. The result is unrounded; rounding is a presentation
// concern. Callers validate inputs first — effort ≤ 0 here is a programming
// error, not a runtime condition.
func RICE(reach, impact, confidence, effort float64) float64 {
	return (reach * impact * confidence / 100) / effort
}

// ValidateRICEInputs is the caller-side gate in front of RICE.
func ValidateRICEInputs(reach, impact, confidence, effort float64) error {
	if effort <= 0 {
		return &apperr.ValidationError{Field: "effort", Reason: "must be greater than zero"}
	}
	if confidence < 0 || confidence > 100 {
		return &apperr.ValidationError{Field: "confidence", Reason: "must be a percentage in [0,100]"}
	}
	if reach < 0 {
		return &apperr.ValidationError{Field: "reach", Reason: "must not be negative"}
	}
	if impact < 0 {
		return &apperr.ValidationError{Field: "impact", Reason: "must not be negative"}
	}
	return nil
}

// ICEInput is one scorer's (impact, confidence, ease) triple.
type ICEInput struct {
	Impact     float64
	Confidence float64
	Ease       float64
}

// ICEFinalPriority averages each axis across scorers and returns
// round(avgImpact × avgConfidence × avgEase). Requires at least one scorer;
// whether one scorer is enough is the caller's policy.
func ICEFinalPriority(scores []ICEInput) int {
	var impact, confidence, ease float64
	for _, s := range scores {
		impact += s.Impact
		confidence += s.Confidence
		ease += s.Ease
	}
	n := float64(len(scores))
	return int(math.Round((impact / n) * (confidence / n) * (ease / n)))
}
