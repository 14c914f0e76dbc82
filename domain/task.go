package domain

import "errors"

// Sentinel errors for the terminal failure states of image generation.
// The pipeline logs timeouts distinctly from service rejections.
var (
	ErrGenerationFailed  = errors.New("image generation failed")
	ErrGenerationTimeout = errors.New("image generation timed out")
	ErrRecipeNotFound    = errors.New("recipe not found in catalog")
)

// TaskStatus is the local lifecycle of one image generation attempt.
type TaskStatus string

const (
	TaskSubmitted TaskStatus = "submitted"
	TaskPending   TaskStatus = "pending"
	TaskReady     TaskStatus = "ready"
	TaskError     TaskStatus = "error"
	TaskTimeout   TaskStatus = "timeout"
)

// Terminal reports whether the task has finished, successfully or not.
func (s TaskStatus) Terminal() bool {
	return s == TaskReady || s == TaskError || s == TaskTimeout
}

// GenerationTask tracks one step's image generation attempt. It is
// ephemeral: created at submit, discarded once a terminal status is
// consumed.
type GenerationTask struct {
	Slug       string
	StepNumber int
	Prompt     string
	TaskID     string
	Status     TaskStatus
}

// PollResult is the decoded payload of one status poll.
type PollResult struct {
	Status    string
	SampleURL string
}

// NextTaskStatus maps a remote poll result onto the local task lifecycle.
// Pure: the polling loop that drives it owns all I/O and time.
func NextTaskStatus(poll PollResult) TaskStatus {
	switch {
	case poll.Status == RemoteStatusReady && poll.SampleURL != "":
		return TaskReady
	case RemoteErrorStatuses[poll.Status]:
		return TaskError
	default:
		return TaskPending
	}
}
