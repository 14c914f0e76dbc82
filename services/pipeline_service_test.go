package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recipe-pipeline/domain"
)

type stubCatalog struct {
	recipes []domain.RecipeContent
}

func (c *stubCatalog) Slugs() []string {
	out := make([]string, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.Slug
	}
	return out
}

func (c *stubCatalog) Get(slug string) (domain.RecipeContent, bool) {
	for _, r := range c.recipes {
		if r.Slug == slug {
			return r, true
		}
	}
	return domain.RecipeContent{}, false
}

type MockImageGen struct {
	mock.Mock
}

func (m *MockImageGen) GenerateImage(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockDownloader struct {
	mock.Mock
}

func (m *MockDownloader) DownloadImage(ctx context.Context, url string) ([]byte, string, error) {
	args := m.Called(ctx, url)
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) UploadBytes(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucket, key, data, contentType)
	return args.String(0), args.Error(1)
}

type MockDBRepo struct {
	mock.Mock
}

func (m *MockDBRepo) UpsertRecipe(recipe domain.RecipeContent) error {
	args := m.Called(recipe)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetImageURL(ctx context.Context, prompt string) (string, bool, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCache) SetImageURL(ctx context.Context, prompt, url string) error {
	args := m.Called(ctx, prompt, url)
	return args.Error(0)
}

func fixtureRecipe(slug string) domain.RecipeContent {
	return domain.RecipeContent{
		Slug:      slug,
		Title:     "Fixture",
		WhyLoveIt: "**Quick**\nready in minutes",
		Instructions: []domain.InstructionStep{
			{Step: 1, Text: "Chop the onions.", ImageHint: "onions being chopped"},
			{Step: 2, Text: "Fry until golden."},
		},
		Sources: []domain.Source{
			{Title: "a", URL: "https://a"},
			{Title: "b", URL: "https://b"},
		},
	}
}

func TestRun_TextOnlyNormalizesAndPersists(t *testing.T) {
	db := new(MockDBRepo)
	cat := &stubCatalog{recipes: []domain.RecipeContent{fixtureRecipe("recipe-a")}}
	srv := NewPipelineService(WithCatalog(cat), WithDBRepository(db))

	db.On("UpsertRecipe", mock.MatchedBy(func(r domain.RecipeContent) bool {
		return r.Slug == "recipe-a" &&
			r.WhyLoveIt == "• **Quick** – Ready in minutes" &&
			r.Instructions[0].ImageURL == ""
	})).Return(nil)

	summary, err := srv.Run(context.Background(), RunOptions{GenerateImages: false})
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Total)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, domain.RecipeOutcome{Slug: "recipe-a", Success: true, SourceCount: 2}, summary.Outcomes[0])

	db.AssertExpectations(t)
}

func TestRun_PartialFailureIsolation(t *testing.T) {
	db := new(MockDBRepo)
	cat := &stubCatalog{recipes: []domain.RecipeContent{
		fixtureRecipe("recipe-a"),
		fixtureRecipe("recipe-b"),
	}}
	srv := NewPipelineService(WithCatalog(cat), WithDBRepository(db))

	db.On("UpsertRecipe", mock.MatchedBy(func(r domain.RecipeContent) bool {
		return r.Slug == "recipe-a"
	})).Return(assert.AnError)
	db.On("UpsertRecipe", mock.MatchedBy(func(r domain.RecipeContent) bool {
		return r.Slug == "recipe-b"
	})).Return(nil)

	summary, err := srv.Run(context.Background(), RunOptions{})
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Total)
	assert.False(t, summary.Outcomes[0].Success)
	assert.True(t, summary.Outcomes[1].Success)

	db.AssertExpectations(t)
}

func TestRun_GeneratesAndAttachesImages(t *testing.T) {
	db := new(MockDBRepo)
	gen := new(MockImageGen)
	dl := new(MockDownloader)
	store := new(MockAssetStore)
	cat := &stubCatalog{recipes: []domain.RecipeContent{fixtureRecipe("recipe-a")}}
	srv := NewPipelineService(
		WithCatalog(cat),
		WithDBRepository(db),
		WithImageGenerator(gen),
		WithImageDownloader(dl),
		WithAssetStore(store),
		WithAssetsBucket("bucket"),
	)

	gen.On("GenerateImage", mock.Anything, "onions being chopped, "+domain.PromptStyleSuffix).
		Return("https://delivery/s1.png", nil).Once()
	gen.On("GenerateImage", mock.Anything, "Fry until golden., "+domain.PromptStyleSuffix).
		Return("https://delivery/s2.png", nil).Once()
	dl.On("DownloadImage", mock.Anything, "https://delivery/s1.png").Return([]byte("img1"), "image/png", nil)
	dl.On("DownloadImage", mock.Anything, "https://delivery/s2.png").Return([]byte("img2"), "image/png", nil)
	store.On("UploadBytes", mock.Anything, "bucket", "recipe-a/step-1.png", []byte("img1"), "image/png").
		Return("https://cdn/bucket/recipe-a/step-1.png", nil)
	store.On("UploadBytes", mock.Anything, "bucket", "recipe-a/step-2.png", []byte("img2"), "image/png").
		Return("https://cdn/bucket/recipe-a/step-2.png", nil)

	db.On("UpsertRecipe", mock.MatchedBy(func(r domain.RecipeContent) bool {
		return r.Instructions[0].ImageURL == "https://cdn/bucket/recipe-a/step-1.png" &&
			r.Instructions[1].ImageURL == "https://cdn/bucket/recipe-a/step-2.png"
	})).Return(nil)

	summary, err := srv.Run(context.Background(), RunOptions{GenerateImages: true})
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Outcomes[0].ImageCount)

	gen.AssertExpectations(t)
	dl.AssertExpectations(t)
	store.AssertExpectations(t)
	db.AssertExpectations(t)
}

func TestRun_ImageFailureDoesNotFailRecipe(t *testing.T) {
	db := new(MockDBRepo)
	gen := new(MockImageGen)
	dl := new(MockDownloader)
	store := new(MockAssetStore)
	cat := &stubCatalog{recipes: []domain.RecipeContent{fixtureRecipe("recipe-a")}}
	srv := NewPipelineService(
		WithCatalog(cat),
		WithDBRepository(db),
		WithImageGenerator(gen),
		WithImageDownloader(dl),
		WithAssetStore(store),
		WithAssetsBucket("bucket"),
	)

	gen.On("GenerateImage", mock.Anything, mock.Anything).Return("", domain.ErrGenerationTimeout)
	db.On("UpsertRecipe", mock.MatchedBy(func(r domain.RecipeContent) bool {
		return r.Instructions[0].ImageURL == "" && r.Instructions[1].ImageURL == ""
	})).Return(nil)

	summary, err := srv.Run(context.Background(), RunOptions{GenerateImages: true})
	assert.NoError(t, err)
	assert.True(t, summary.Outcomes[0].Success)
	assert.Equal(t, 0, summary.Outcomes[0].ImageCount)

	db.AssertExpectations(t)
}

func TestRun_SingleSlug(t *testing.T) {
	db := new(MockDBRepo)
	cat := &stubCatalog{recipes: []domain.RecipeContent{
		fixtureRecipe("recipe-a"),
		fixtureRecipe("recipe-b"),
	}}
	srv := NewPipelineService(WithCatalog(cat), WithDBRepository(db))

	db.On("UpsertRecipe", mock.MatchedBy(func(r domain.RecipeContent) bool {
		return r.Slug == "recipe-b"
	})).Return(nil)

	summary, err := srv.Run(context.Background(), RunOptions{Slug: "recipe-b"})
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, "recipe-b", summary.Outcomes[0].Slug)

	db.AssertExpectations(t)
}

func TestRun_SingleSlugMissIsHardError(t *testing.T) {
	srv := NewPipelineService(
		WithCatalog(&stubCatalog{}),
		WithDBRepository(new(MockDBRepo)),
	)

	_, err := srv.Run(context.Background(), RunOptions{Slug: "no-such-recipe"})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRun_CatalogRecordsNotMutated(t *testing.T) {
	db := new(MockDBRepo)
	gen := new(MockImageGen)
	dl := new(MockDownloader)
	store := new(MockAssetStore)
	authored := fixtureRecipe("recipe-a")
	cat := &stubCatalog{recipes: []domain.RecipeContent{authored}}
	srv := NewPipelineService(
		WithCatalog(cat),
		WithDBRepository(db),
		WithImageGenerator(gen),
		WithImageDownloader(dl),
		WithAssetStore(store),
		WithAssetsBucket("bucket"),
	)

	gen.On("GenerateImage", mock.Anything, mock.Anything).Return("https://delivery/s.png", nil)
	dl.On("DownloadImage", mock.Anything, mock.Anything).Return([]byte("img"), "image/png", nil)
	store.On("UploadBytes", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn/x.png", nil)
	db.On("UpsertRecipe", mock.Anything).Return(nil)

	_, err := srv.Run(context.Background(), RunOptions{GenerateImages: true})
	assert.NoError(t, err)

	// The authored catalog record must be untouched.
	fresh, _ := cat.Get("recipe-a")
	assert.Empty(t, fresh.Instructions[0].ImageURL)
	assert.Equal(t, "**Quick**\nready in minutes", fresh.WhyLoveIt)
}

func TestRun_CacheHitSkipsGeneration(t *testing.T) {
	db := new(MockDBRepo)
	gen := new(MockImageGen)
	dl := new(MockDownloader)
	store := new(MockAssetStore)
	cache := new(MockCache)
	recipe := fixtureRecipe("recipe-a")
	recipe.Instructions = recipe.Instructions[:1]
	cat := &stubCatalog{recipes: []domain.RecipeContent{recipe}}
	srv := NewPipelineService(
		WithCatalog(cat),
		WithDBRepository(db),
		WithImageGenerator(gen),
		WithImageDownloader(dl),
		WithAssetStore(store),
		WithImageURLCache(cache),
		WithAssetsBucket("bucket"),
	)

	cache.On("GetImageURL", mock.Anything, mock.Anything).Return("https://cdn/cached.png", true, nil)
	db.On("UpsertRecipe", mock.MatchedBy(func(r domain.RecipeContent) bool {
		return r.Instructions[0].ImageURL == "https://cdn/cached.png"
	})).Return(nil)

	summary, err := srv.Run(context.Background(), RunOptions{GenerateImages: true})
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Outcomes[0].ImageCount)

	gen.AssertNotCalled(t, "GenerateImage", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
	db.AssertExpectations(t)
}

func TestBuildPrompt(t *testing.T) {
	withHint := domain.InstructionStep{Step: 1, Text: "Chop.", ImageHint: "onions on a board"}
	assert.Equal(t, "onions on a board, "+domain.PromptStyleSuffix, BuildPrompt(withHint))

	long := domain.InstructionStep{
		Step: 2,
		Text: "Fry the onions slowly over medium heat until they are deeply golden and sweet, stirring often so they do not catch.",
	}
	prompt := BuildPrompt(long)
	assert.Contains(t, prompt, domain.PromptStyleSuffix)
	assert.LessOrEqual(t, len([]rune(prompt)), 80+2+len([]rune(domain.PromptStyleSuffix)))
}
