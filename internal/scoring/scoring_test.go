package scoring

import (
	"math"
	"testing"

	"github.com/ideaforge/ideaforge-backend/internal/platform/apperr"
)

func TestRICE(t *testing.T) {
	got := RICE(5000, 4, 80, 30)
	want := 533.3333333333334
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("RICE(5000, 4, 80, 30) = %v, want %v", got, want)
	}
}

func TestRICEScalesLinearly(t *testing.T) {
	base := RICE(1000, 3, 70, 5)
	if got := RICE(2000, 3, 70, 5); math.Abs(got-2*base) > 1e-9 {
		t.Fatalf("doubling reach: got %v, want %v", got, 2*base)
	}
	if got := RICE(1000, 6, 70, 5); math.Abs(got-2*base) > 1e-9 {
		t.Fatalf("doubling impact: got %v, want %v", got, 2*base)
	}
}

func TestValidateRICEInputs(t *testing.T) {
	cases := []struct {
		name    string
		reach   float64
		impact  float64
		conf    float64
		effort  float64
		wantErr bool
	}{
		{name: "valid", reach: 5000, impact: 4, conf: 80, effort: 30},
		{name: "zero_effort", reach: 5000, impact: 4, conf: 80, effort: 0, wantErr: true},
		{name: "negative_effort", reach: 5000, impact: 4, conf: 80, effort: -1, wantErr: true},
		{name: "confidence_over_100", reach: 5000, impact: 4, conf: 120, effort: 30, wantErr: true},
		{name: "negative_confidence", reach: 5000, impact: 4, conf: -5, effort: 30, wantErr: true},
		{name: "negative_reach", reach: -1, impact: 4, conf: 80, effort: 30, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRICEInputs(tc.reach, tc.impact, tc.conf, tc.effort)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !apperr.IsValidation(err) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestICEFinalPriority(t *testing.T) {
	scores := []ICEInput{
		{Impact: 4, Confidence: 80, Ease: 3},
		{Impact: 4, Confidence: 70, Ease: 2},
		{Impact: 3, Confidence: 60, Ease: 4},
	}
	// mean impact 11/3, mean confidence 70, mean ease 3
	want := int(math.Round((11.0 / 3.0) * 70 * 3))
	if got := ICEFinalPriority(scores); got != want {
		t.Fatalf("ICEFinalPriority = %d, want %d", got, want)
	}
}

func TestICEFinalPrioritySingleScorer(t *testing.T) {
	if got := ICEFinalPriority([]ICEInput{{Impact: 5, Confidence: 90, Ease: 2}}); got != 900 {
		t.Fatalf("ICEFinalPriority = %d, want 900", got)
	}
}
