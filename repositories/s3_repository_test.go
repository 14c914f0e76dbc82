package repositories

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	repo := NewS3Repository(aws.Config{}, "https://assets.example.com")

	url := repo.PublicURL("recipe-step-images", "crispy-pork-belly/step-1.png")
	assert.Equal(t, "https://assets.example.com/recipe-step-images/crispy-pork-belly/step-1.png", url)

	// Deterministic: same inputs, same URL.
	assert.Equal(t, url, repo.PublicURL("recipe-step-images", "crispy-pork-belly/step-1.png"))
}

func TestPublicURL_TrimsTrailingSlash(t *testing.T) {
	repo := NewS3Repository(aws.Config{}, "https://assets.example.com/")
	url := repo.PublicURL("bucket", "slug/step-2.png")
	assert.Equal(t, "https://assets.example.com/bucket/slug/step-2.png", url)
}
