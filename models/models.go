package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"recipe-pipeline/domain"
)

// RecipeRecord is the persisted form of a recipe. Slug is the upsert key;
// structured sub-documents are stored as JSONB.
type RecipeRecord struct {
	ID              int            `gorm:"primaryKey;autoIncrement"`
	Slug            string         `gorm:"type:text;not null;uniqueIndex:idx_recipes_slug"`
	Title           string         `gorm:"type:text;not null"`
	Description     string         `gorm:"type:text"`
	Introduction    string         `gorm:"type:text"`
	WhyLoveIt       string         `gorm:"column:why_love_it;type:text"`
	PrepTimeMinutes int            `gorm:"not null"`
	CookTimeMinutes int            `gorm:"not null"`
	Servings        int            `gorm:"not null"`
	Difficulty      string         `gorm:"type:text;not null"`
	Ingredients     datatypes.JSON `gorm:"type:jsonb"`
	Instructions    datatypes.JSON `gorm:"type:jsonb"`
	Equipment       datatypes.JSON `gorm:"type:jsonb"`
	Substitutions   datatypes.JSON `gorm:"type:jsonb"`
	Nutrition       datatypes.JSON `gorm:"type:jsonb"`
	Tips            datatypes.JSON `gorm:"type:jsonb"`
	FAQ             datatypes.JSON `gorm:"column:faq;type:jsonb"`
	Sources         datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt       time.Time      `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP"`
}

// TableName overrides the table name
func (RecipeRecord) TableName() string {
	return "recipes"
}

// FromDomain marshals a recipe's structured fields into a persistable
// record.
func FromDomain(r domain.RecipeContent) (RecipeRecord, error) {
	rec := RecipeRecord{
		Slug:            r.Slug,
		Title:           r.Title,
		Description:     r.Description,
		Introduction:    r.Introduction,
		WhyLoveIt:       r.WhyLoveIt,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		Difficulty:      string(r.Difficulty),
	}

	fields := []struct {
		name string
		src  interface{}
		dst  *datatypes.JSON
	}{
		{"ingredients", r.Ingredients, &rec.Ingredients},
		{"instructions", r.Instructions, &rec.Instructions},
		{"equipment", r.Equipment, &rec.Equipment},
		{"substitutions", r.Substitutions, &rec.Substitutions},
		{"nutrition", r.Nutrition, &rec.Nutrition},
		{"tips", r.Tips, &rec.Tips},
		{"faq", r.FAQ, &rec.FAQ},
		{"sources", r.Sources, &rec.Sources},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.src)
		if err != nil {
			return RecipeRecord{}, fmt.Errorf("failed to marshal %s for %s: %w", f.name, r.Slug, err)
		}
		*f.dst = datatypes.JSON(data)
	}
	return rec, nil
}
