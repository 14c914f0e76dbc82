package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTaskStatus(t *testing.T) {
	cases := []struct {
		name string
		poll PollResult
		want TaskStatus
	}{
		{"ready with sample", PollResult{Status: "Ready", SampleURL: "https://cdn/img.png"}, TaskReady},
		{"ready without sample keeps polling", PollResult{Status: "Ready"}, TaskPending},
		{"error", PollResult{Status: "Error"}, TaskError},
		{"failed", PollResult{Status: "Failed"}, TaskError},
		{"moderated", PollResult{Status: "Content Moderated"}, TaskError},
		{"pending", PollResult{Status: "Pending"}, TaskPending},
		{"unknown status keeps polling", PollResult{Status: "Queued"}, TaskPending},
		{"empty status keeps polling", PollResult{}, TaskPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextTaskStatus(tc.poll))
		})
	}
}

func TestTaskStatusTerminal(t *testing.T) {
	assert.True(t, TaskReady.Terminal())
	assert.True(t, TaskError.Terminal())
	assert.True(t, TaskTimeout.Terminal())
	assert.False(t, TaskSubmitted.Terminal())
	assert.False(t, TaskPending.Terminal())
}
