package domain

const (
	// Remote statuses reported by the image generation service. The status
	// field is free-form; anything outside these families keeps polling.
	RemoteStatusReady = "Ready"

	// Style suffix appended to every image prompt. The negative constraints
	// keep the service from baking text into the illustration.
	PromptStyleSuffix = "flat vector illustration, minimal style, soft warm colors, " +
		"clean composition, no text, no labels, no words, no watermark"
)

// RemoteErrorStatuses are the terminal failure statuses of the image
// service. Polling stops immediately on any of them.
var RemoteErrorStatuses = map[string]bool{
	"Error":             true,
	"Failed":            true,
	"Content Moderated": true,
	"Request Moderated": true,
}
