// ABOUTME: Meal plan, recipe, and guideline reference models.
// ABOUTME: Predefined and user-added plan items share the same shape.
package models

// MealPlanItem is one scheduled meal in the daily plan. FlareFriendly items
// are safe during a flare-up (liquid/pureed only).
type MealPlanItem struct {
	Time          string   `json:"time" yaml:"time"`
	Title         string   `json:"title" yaml:"title"`
	Items         []string `json:"items" yaml:"items"`
	Notes         string   `json:"notes" yaml:"notes"`
	Icon          string   `json:"icon" yaml:"icon"`
	FlareFriendly bool     `json:"flareFriendly" yaml:"flare_friendly"`
}

// Recipe is a curated gastroparesis-safe recipe.
type Recipe struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	IsLiquid     bool     `json:"isLiquid" yaml:"is_liquid"`
	Texture      Texture  `json:"texture" yaml:"texture"`
}

// Guideline is a static dietary or lifestyle safety rule.
type Guideline struct {
	Category  string `json:"category" yaml:"category"`
	Rule      string `json:"rule" yaml:"rule"`
	Reasoning string `json:"reasoning" yaml:"reasoning"`
	Critical  bool   `json:"critical,omitempty" yaml:"critical,omitempty"`
}

// QuickFood is a one-tap preset for logging a common safe food.
type QuickFood struct {
	Name    string
	Portion string
	Texture Texture
	Nutrition
}
