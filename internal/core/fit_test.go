package core

import (
	"errors"
	"testing"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		sourceMs   int64
		targetMs   int64
		wantOp     FitOp
		wantRepeat int
	}{
		{"trim when source longer", 5000, 3000, FitTrim, 0},
		{"loop when source shorter", 2000, 7000, FitLoop, 4},
		{"identity on exact match", 4000, 4000, FitIdentity, 0},
		{"loop on exact multiple", 2000, 6000, FitLoop, 4},
		{"loop just under target", 2999, 3000, FitLoop, 2},
		{"trim to zero target", 1500, 0, FitTrim, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Fit(tt.sourceMs, tt.targetMs)
			if err != nil {
				t.Fatalf("Fit(%d, %d) error: %v", tt.sourceMs, tt.targetMs, err)
			}
			if plan.Op != tt.wantOp {
				t.Errorf("op = %v, want %v", plan.Op, tt.wantOp)
			}
			if plan.RepeatCount != tt.wantRepeat {
				t.Errorf("repeat = %d, want %d", plan.RepeatCount, tt.wantRepeat)
			}
			if plan.SourceMs != tt.sourceMs || plan.TargetMs != tt.targetMs {
				t.Errorf("plan carries %d/%d, want %d/%d", plan.SourceMs, plan.TargetMs, tt.sourceMs, tt.targetMs)
			}
			if plan.Op == FitLoop {
				if int64(plan.RepeatCount)*plan.SourceMs < plan.TargetMs {
					t.Errorf("looped material %dms shorter than target %dms",
						int64(plan.RepeatCount)*plan.SourceMs, plan.TargetMs)
				}
			}
		})
	}
}

func TestFitInvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		sourceMs int64
		targetMs int64
	}{
		{"negative target", 1000, -1},
		{"zero source", 0, 1000},
		{"negative source", -500, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.sourceMs, tt.targetMs)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}
