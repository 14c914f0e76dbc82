package domain

// Difficulty is the authored difficulty rating of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Ingredient is one line of the ingredient list. Order is display order.
// Section groups ingredients under a sub-heading ("For the sauce").
type Ingredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Section  string `json:"section,omitempty"`
}

// InstructionStep is one numbered unit of the method. Step is 1-indexed and
// must match the position in the instructions slice. ImageURL is set only
// after a generated image has been persisted; empty means no image.
type InstructionStep struct {
	Step        int    `json:"step"`
	Text        string `json:"text"`
	TimeMinutes int    `json:"time_minutes,omitempty"`
	Tip         string `json:"tip,omitempty"`
	ImageHint   string `json:"image_hint,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Substitution maps an ingredient to an acceptable replacement.
type Substitution struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Notes       string `json:"notes,omitempty"`
}

// Nutrition holds approximate per-serving values as display strings.
type Nutrition struct {
	Calories string `json:"calories,omitempty"`
	Protein  string `json:"protein,omitempty"`
	Carbs    string `json:"carbs,omitempty"`
	Fat      string `json:"fat,omitempty"`
}

// Tips groups the secondary advice sections of a recipe.
type Tips struct {
	Doneness       []string `json:"doneness,omitempty"`
	Storage        []string `json:"storage,omitempty"`
	ProTips        []string `json:"pro_tips,omitempty"`
	CommonMistakes []string `json:"common_mistakes,omitempty"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Source attributes recipe content to a reference.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RecipeContent is the unit of work of the pipeline. Slug is the natural
// key; re-running the pipeline upserts on it rather than duplicating.
type RecipeContent struct {
	Slug            string            `json:"slug"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Introduction    string            `json:"introduction"`
	WhyLoveIt       string            `json:"why_love_it"`
	PrepTimeMinutes int               `json:"prep_time_minutes"`
	CookTimeMinutes int               `json:"cook_time_minutes"`
	Servings        int               `json:"servings"`
	Difficulty      Difficulty        `json:"difficulty"`
	Ingredients     []Ingredient      `json:"ingredients"`
	Instructions    []InstructionStep `json:"instructions"`
	Equipment       []string          `json:"equipment,omitempty"`
	Substitutions   []Substitution    `json:"substitutions,omitempty"`
	Nutrition       Nutrition         `json:"nutrition,omitempty"`
	Tips            Tips              `json:"tips,omitempty"`
	FAQ             []FAQItem         `json:"faq,omitempty"`
	Sources         []Source          `json:"sources"`
}

// Clone returns a deep copy so the pipeline can attach image URLs without
// mutating the shared authored catalog.
func (r RecipeContent) Clone() RecipeContent {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Instructions = append([]InstructionStep(nil), r.Instructions...)
	out.Equipment = append([]string(nil), r.Equipment...)
	out.Substitutions = append([]Substitution(nil), r.Substitutions...)
	out.Tips.Doneness = append([]string(nil), r.Tips.Doneness...)
	out.Tips.Storage = append([]string(nil), r.Tips.Storage...)
	out.Tips.ProTips = append([]string(nil), r.Tips.ProTips...)
	out.Tips.CommonMistakes = append([]string(nil), r.Tips.CommonMistakes...)
	out.FAQ = append([]FAQItem(nil), r.FAQ...)
	out.Sources = append([]Source(nil), r.Sources...)
	return out
}

// RecipeOutcome is the per-recipe result recorded by a batch run.
type RecipeOutcome struct {
	Slug        string `json:"slug"`
	Success     bool   `json:"success"`
	SourceCount int    `json:"source_count"`
	ImageCount  int    `json:"image_count"`
}

// RunSummary aggregates the outcomes of one batch run.
type RunSummary struct {
	RunID     string          `json:"run_id"`
	Outcomes  []RecipeOutcome `json:"outcomes"`
	Succeeded int             `json:"succeeded"`
	Total     int             `json:"total"`
}
