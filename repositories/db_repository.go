package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipe-pipeline/domain"
	"recipe-pipeline/models"
)

// PostgresDBRepository persists recipe records keyed by slug.
type PostgresDBRepository struct {
	DB *gorm.DB
}

func NewDBRepository(db *gorm.DB) *PostgresDBRepository {
	return &PostgresDBRepository{DB: db}
}

// UpsertRecipe inserts the record, or fully replaces the existing row with
// the same slug. Running the pipeline twice for a slug leaves exactly one
// row, reflecting the second write.
func (repo *PostgresDBRepository) UpsertRecipe(recipe domain.RecipeContent) error {
	rec, err := models.FromDomain(recipe)
	if err != nil {
		return err
	}

	err = repo.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			UpdateAll: true,
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert recipe %s: %w", recipe.Slug, err)
	}
	return nil
}
