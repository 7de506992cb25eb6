package pipeline

import "fmt"

// StageError reports which processing stage failed for which scene.
type StageError struct {
	Stage   string
	SceneID int
	Cause   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("scene %d: %s: %v", e.SceneID, e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

func stageErr(stage string, sceneID int, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, SceneID: sceneID, Cause: err}
}
