// Package catalog holds the authored recipe content the pipeline
// publishes. The catalog is read-only: entries are fixed at compile time
// and the pipeline works on copies, never on the catalog's own records.
package catalog

import "recipe-pipeline/domain"

// Catalog is a read-only, ordered view over the authored recipes.
type Catalog struct {
	slugs   []string
	recipes map[string]domain.RecipeContent
}

// New returns the catalog preloaded with the authored recipes, in
// authored order.
func New() *Catalog {
	c := &Catalog{recipes: make(map[string]domain.RecipeContent)}
	for _, r := range authored() {
		c.slugs = append(c.slugs, r.Slug)
		c.recipes[r.Slug] = r
	}
	return c
}

// Slugs returns the slugs in authored order.
func (c *Catalog) Slugs() []string {
	return append([]string(nil), c.slugs...)
}

// Get returns the recipe for a slug.
func (c *Catalog) Get(slug string) (domain.RecipeContent, bool) {
	r, ok := c.recipes[slug]
	return r, ok
}

// Len returns the number of authored recipes.
func (c *Catalog) Len() int {
	return len(c.slugs)
}
