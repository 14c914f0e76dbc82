package main

import (
	"context"
	"flag"
	"log"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recipe-pipeline/catalog"
	"recipe-pipeline/config"
	"recipe-pipeline/domain"
	"recipe-pipeline/repositories"
	"recipe-pipeline/services"
)

func main() {
	generateImages := flag.Bool("images", false, "generate and persist an illustration per instruction step")
	slug := flag.String("slug", "", "process a single recipe instead of the full catalog")
	flag.Parse()

	// Best effort: env vars win over .env values.
	_ = godotenv.Load()

	log.Println("Recipe pipeline starting...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}

	opts := []services.PipelineOption{
		services.WithCatalog(catalog.New()),
		services.WithDBRepository(repositories.NewDBRepository(db)),
		services.WithAssetsBucket(cfg.AssetsBucket),
	}

	ctx := context.Background()
	if *generateImages {
		if err := cfg.ValidateImageGen(); err != nil {
			log.Fatalf("invalid configuration: %v", err)
		}

		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}

		opts = append(opts,
			services.WithImageGenerator(repositories.NewImageGenClient(
				cfg.ImageGenEndpoint,
				cfg.ImageGenAPIKey,
				repositories.WithImageSize(cfg.ImageWidth, cfg.ImageHeight),
				repositories.WithPollInterval(cfg.PollInterval),
				repositories.WithMaxPollAttempts(cfg.MaxPollAttempts),
			)),
			services.WithImageDownloader(repositories.NewHTTPRepository()),
			services.WithAssetStore(repositories.NewS3Repository(awsCfg, cfg.AssetsPublicBaseURL)),
		)

		if cfg.CacheEnabled {
			cache, err := repositories.NewCacheRepository(cfg.RedisHost, cfg.RedisPort, cfg.CacheTTL)
			if err != nil {
				log.Fatalf("failed to connect to image cache: %v", err)
			}
			opts = append(opts, services.WithImageURLCache(cache))
		}
	}

	pipeline := services.NewPipelineService(opts...)
	summary, err := pipeline.Run(ctx, services.RunOptions{
		GenerateImages: *generateImages,
		Slug:           *slug,
	})
	if err != nil {
		log.Fatalf("pipeline run failed: %v", err)
	}

	printSummary(summary)
}

func printSummary(summary domain.RunSummary) {
	log.Printf("Run %s finished", summary.RunID)
	for _, o := range summary.Outcomes {
		status := "OK"
		if !o.Success {
			status = "FAILED"
		}
		log.Printf("  %-30s %-7s sources=%d images=%d", o.Slug, status, o.SourceCount, o.ImageCount)
	}
	log.Printf("%d/%d succeeded", summary.Succeeded, summary.Total)
}
