package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"recipe-pipeline/content"
	"recipe-pipeline/domain"
)

// maxPromptTextLen caps how much of a step's text seeds the prompt when no
// image hint was authored.
const maxPromptTextLen = 80

// Consumer-side interfaces
type Catalog interface {
	Slugs() []string
	Get(slug string) (domain.RecipeContent, bool)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type ImageDownloader interface {
	DownloadImage(ctx context.Context, url string) ([]byte, string, error)
}

type AssetStore interface {
	UploadBytes(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
}

type DBRepository interface {
	UpsertRecipe(recipe domain.RecipeContent) error
}

type ImageURLCache interface {
	GetImageURL(ctx context.Context, prompt string) (string, bool, error)
	SetImageURL(ctx context.Context, prompt, url string) error
}

// PipelineService walks the catalog in order, attaches generated step
// images, normalizes the why-love-it copy and upserts each record. One
// recipe failing never aborts the batch.
type PipelineService struct {
	catalog      Catalog
	imageGen     ImageGenerator
	downloader   ImageDownloader
	assetStore   AssetStore
	dbRepo       DBRepository
	cache        ImageURLCache
	assetsBucket string
}

// Functional Options Pattern
type PipelineOption func(*PipelineService)

func WithCatalog(c Catalog) PipelineOption {
	return func(s *PipelineService) { s.catalog = c }
}

func WithImageGenerator(g ImageGenerator) PipelineOption {
	return func(s *PipelineService) { s.imageGen = g }
}

func WithImageDownloader(d ImageDownloader) PipelineOption {
	return func(s *PipelineService) { s.downloader = d }
}

func WithAssetStore(a AssetStore) PipelineOption {
	return func(s *PipelineService) { s.assetStore = a }
}

func WithDBRepository(r DBRepository) PipelineOption {
	return func(s *PipelineService) { s.dbRepo = r }
}

func WithImageURLCache(c ImageURLCache) PipelineOption {
	return func(s *PipelineService) { s.cache = c }
}

func WithAssetsBucket(bucket string) PipelineOption {
	return func(s *PipelineService) { s.assetsBucket = bucket }
}

func NewPipelineService(opts ...PipelineOption) *PipelineService {
	s := &PipelineService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunOptions selects what a batch run does. Slug narrows the run to one
// recipe; a catalog miss for it is a hard error.
type RunOptions struct {
	GenerateImages bool
	Slug           string
}

// Run processes the catalog and returns the run summary. The only error
// returned is a catalog miss for an explicitly requested slug; everything
// else is recorded per recipe.
func (s *PipelineService) Run(ctx context.Context, opts RunOptions) (domain.RunSummary, error) {
	slugs := s.catalog.Slugs()
	if opts.Slug != "" {
		if _, ok := s.catalog.Get(opts.Slug); !ok {
			return domain.RunSummary{}, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, opts.Slug)
		}
		slugs = []string{opts.Slug}
	}

	summary := domain.RunSummary{
		RunID: uuid.New().String(),
		Total: len(slugs),
	}
	log.Printf("Starting pipeline run %s: %d recipe(s), images=%v", summary.RunID, len(slugs), opts.GenerateImages)

	for _, slug := range slugs {
		recipe, _ := s.catalog.Get(slug)
		outcome := s.processRecipe(ctx, recipe, opts.GenerateImages)
		summary.Outcomes = append(summary.Outcomes, outcome)
		if outcome.Success {
			summary.Succeeded++
		}
	}
	return summary, nil
}

// processRecipe works on a copy of the authored record: generated image
// URLs and normalized text never leak back into the catalog.
func (s *PipelineService) processRecipe(ctx context.Context, authored domain.RecipeContent, generateImages bool) domain.RecipeOutcome {
	recipe := authored.Clone()
	outcome := domain.RecipeOutcome{
		Slug:        recipe.Slug,
		SourceCount: len(recipe.Sources),
	}

	if generateImages {
		for i := range recipe.Instructions {
			step := &recipe.Instructions[i]
			if url := s.generateStepImage(ctx, recipe.Slug, *step); url != "" {
				step.ImageURL = url
				outcome.ImageCount++
			}
		}
	}

	fixed, issues := content.ValidateAndFix(recipe.WhyLoveIt)
	recipe.WhyLoveIt = fixed
	for _, issue := range issues {
		log.Printf("Formatting issue in %s whyLoveIt: %s", recipe.Slug, issue)
	}

	if err := s.dbRepo.UpsertRecipe(recipe); err != nil {
		log.Printf("Failed to persist recipe %s: %v", recipe.Slug, err)
		return outcome
	}

	outcome.Success = true
	log.Printf("Persisted recipe %s (%d sources, %d images)", recipe.Slug, outcome.SourceCount, outcome.ImageCount)
	return outcome
}

// generateStepImage runs generate → download → upload for one step and
// returns the stable public URL, or "" when any stage fails. Failures are
// logged with slug, step and stage; the step simply ends up without an
// image.
func (s *PipelineService) generateStepImage(ctx context.Context, slug string, step domain.InstructionStep) string {
	prompt := BuildPrompt(step)

	if s.cache != nil {
		if url, hit, err := s.cache.GetImageURL(ctx, prompt); err != nil {
			log.Printf("Image cache lookup failed for %s step %d: %v", slug, step.Step, err)
		} else if hit {
			log.Printf("Image cache hit for %s step %d", slug, step.Step)
			return url
		}
	}

	sampleURL, err := s.imageGen.GenerateImage(ctx, prompt)
	if err != nil {
		stage := "generation"
		if errors.Is(err, domain.ErrGenerationTimeout) {
			stage = "generation timeout"
		}
		log.Printf("Image %s for %s step %d: %v", stage, slug, step.Step, err)
		return ""
	}

	data, contentType, err := s.downloader.DownloadImage(ctx, sampleURL)
	if err != nil {
		log.Printf("Image download failed for %s step %d: %v", slug, step.Step, err)
		return ""
	}

	key := fmt.Sprintf("%s/step-%d.png", slug, step.Step)
	publicURL, err := s.assetStore.UploadBytes(ctx, s.assetsBucket, key, data, contentType)
	if err != nil {
		log.Printf("Image upload failed for %s step %d: %v", slug, step.Step, err)
		return ""
	}

	if s.cache != nil {
		if err := s.cache.SetImageURL(ctx, prompt, publicURL); err != nil {
			log.Printf("Image cache store failed for %s step %d: %v", slug, step.Step, err)
		}
	}
	return publicURL
}

// BuildPrompt seeds the prompt from the authored image hint, falling back
// to a truncated prefix of the step text, and appends the fixed style
// suffix.
func BuildPrompt(step domain.InstructionStep) string {
	scene := step.ImageHint
	if scene == "" {
		scene = truncate(step.Text, maxPromptTextLen)
	}
	return strings.TrimSpace(scene) + ", " + domain.PromptStyleSuffix
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
