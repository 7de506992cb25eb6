package core

import "fmt"

// FitOp is the way a media duration is reconciled to a target.
type FitOp int

const (
	FitIdentity FitOp = iota // source already matches target
	FitTrim                  // source longer than target, cut the tail
	FitLoop                  // source shorter, repeat then cut
)

func (op FitOp) String() string {
	switch op {
	case FitIdentity:
		return "identity"
	case FitTrim:
		return "trim"
	case FitLoop:
		return "loop"
	default:
		return fmt.Sprintf("FitOp(%d)", int(op))
	}
}

// FitPlan describes how to bring media of SourceMs down or up to
// TargetMs. The plan is inert data; executing it against real media is
// the audio backend's job. For FitLoop the source is concatenated
// RepeatCount times and then trimmed to TargetMs, so the looped
// material is never shorter than the target before the final cut.
type FitPlan struct {
	Op          FitOp
	SourceMs    int64
	TargetMs    int64
	RepeatCount int // set only for FitLoop
}

// Fit decides between trim, loop and pass-through. The decision rule
// is exact: there is no tolerance band around equality.
func Fit(sourceMs, targetMs int64) (FitPlan, error) {
	if targetMs < 0 {
		return FitPlan{}, fmt.Errorf("target duration %dms is negative: %w", targetMs, ErrInvalidArgument)
	}
	if sourceMs <= 0 {
		return FitPlan{}, fmt.Errorf("source duration %dms is not positive: %w", sourceMs, ErrInvalidArgument)
	}

	plan := FitPlan{SourceMs: sourceMs, TargetMs: targetMs}
	switch {
	case sourceMs > targetMs:
		plan.Op = FitTrim
	case sourceMs < targetMs:
		plan.Op = FitLoop
		plan.RepeatCount = int(targetMs/sourceMs) + 1
	default:
		plan.Op = FitIdentity
	}
	return plan, nil
}
