package ports

import "time"

// PipelineMetrics is the abstraction for any service collecting stats about
// the stages of a generation or verification run.
type PipelineMetrics interface {
	// StageCompleted records the successful completion of the given stage.
	StageCompleted(stage string, elapsed time.Duration)
	// StageFailed records a failure of the given stage.
	StageFailed(stage string)
	// RunCompleted records the outcome of a whole run.
	RunCompleted(command string, err error)
}
