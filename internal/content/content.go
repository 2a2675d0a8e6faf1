// ABOUTME: Built-in dietary content shipped with the app.
// ABOUTME: Default meal plan, recipes, guidelines, quick-add foods, and clinic info.
package content

import "github.com/jamiekretzschmar/gastrocare/internal/models"

// Guidelines are the core dietary rules for gastroparesis with
// immunosuppression. Critical rules are non-negotiable.
var Guidelines = []models.Guideline{
	{
		Category:  "Dietary Strategy",
		Rule:      "Eat 6 to 8 small meals per day",
		Reasoning: "Prevents stomach distention.",
		Critical:  true,
	},
	{
		Category:  "Dietary Strategy",
		Rule:      "Chew food to applesauce consistency",
		Reasoning: "Reduces workload on the stomach.",
		Critical:  true,
	},
	{
		Category:  "Infection Safety",
		Rule:      "NO Raw Vegetables or Fruit Skins",
		Reasoning: "Transplant protocol: Must be cooked soft or canned/pasteurized to prevent infection.",
		Critical:  true,
	},
	{
		Category:  "Fiber Restriction",
		Rule:      "Avoid Corn, Popcorn, Nuts, Seeds",
		Reasoning: "Skins and fibers cause bezoars (blockages).",
	},
	{
		Category:  "Lifestyle",
		Rule:      "Do NOT lie down for 1-2 hours after eating",
		Reasoning: "Gravity helps the stomach empty.",
		Critical:  true,
	},
	{
		Category:  "Lifestyle",
		Rule:      "Take a gentle walk after eating",
		Reasoning: "Stimulates gastric motility.",
	},
	{
		Category:  "Medical",
		Rule:      "Check blood sugar frequently",
		Reasoning: "High glucose (hyperglycemia) paralyzes the stomach.",
	},
}

// DefaultMealPlan is the starting daily schedule before any customization.
// Flare entries mirror the regular meal at the same time with liquid swaps.
var DefaultMealPlan = []models.MealPlanItem{
	{
		Time:  "08:00",
		Title: "Breakfast",
		Items: []string{"Cream of Rice (Water/Skim Milk)", "Scrambled Egg Whites"},
		Notes: "Avoid oatmeal (fiber). Use smooth apple jelly.",
		Icon:  "Sun",
	},
	{
		Time:          "08:00",
		Title:         "Flare Breakfast",
		Items:         []string{"Protein Shake (Whey Isolate)", "Cream of Rice (Extra watery)"},
		Notes:         "Liquid calories only.",
		Icon:          "Sun",
		FlareFriendly: true,
	},
	{
		Time:          "10:30",
		Title:         "Morning Snack",
		Items:         []string{"Low-fat Greek Yogurt", "Canned Peaches (Mashed)"},
		Notes:         "Must be canned/cooked.",
		Icon:          "Coffee",
		FlareFriendly: true,
	},
	{
		Time:          "13:00",
		Title:         "Lunch",
		Items:         []string{"Blended Ginger Carrot Soup", "Saltine Crackers"},
		Notes:         "Chew crackers until dissolved.",
		Icon:          "Soup",
		FlareFriendly: true,
	},
	{
		Time:          "15:30",
		Title:         "Afternoon Snack",
		Items:         []string{"Liquid Nutrition (Ensure/Boost)"},
		Notes:         "Sip slowly over 30 minutes.",
		Icon:          "Milk",
		FlareFriendly: true,
	},
	{
		Time:  "18:00",
		Title: "Dinner",
		Items: []string{"Lean Ground Turkey (In Broth)", "Mashed Potatoes"},
		Notes: "No skins. No frying.",
		Icon:  "Utensils",
	},
	{
		Time:          "18:00",
		Title:         "Flare Dinner",
		Items:         []string{"Bone Broth", "Blended Potato Soup"},
		Notes:         "Liquids only to rest stomach.",
		Icon:          "Utensils",
		FlareFriendly: true,
	},
	{
		Time:          "20:30",
		Title:         "Evening Snack",
		Items:         []string{"Unsweetened Applesauce", "Rice Pudding"},
		Notes:         "Made with low-fat milk.",
		Icon:          "Moon",
		FlareFriendly: true,
	},
}

// FilterPlan keeps only the plan items appropriate for the given mode:
// flare mode shows flare-friendly items, normal mode hides them. Custom
// items follow the same rule as the built-in ones.
func FilterPlan(plan []models.MealPlanItem, flareMode bool) []models.MealPlanItem {
	filtered := make([]models.MealPlanItem, 0, len(plan))
	for _, item := range plan {
		if item.FlareFriendly == flareMode {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Recipes are texture-safe preparations referenced by the meal plan.
var Recipes = []models.Recipe{
	{
		Name:        `Ginger & Carrot "Digestion" Soup`,
		Description: "Fully cooked, low fat, and ginger helps settle nausea.",
		Ingredients: []string{
			"4 large carrots (Peeled, chopped)",
			"1 tsp ground ginger (Powdered)",
			"4 cups Chicken Broth",
			"Salt to taste",
		},
		Instructions: []string{
			"Boil carrots in broth until falling apart (25 mins).",
			"Blend until perfectly smooth.",
			"Stir in powdered ginger and salt.",
		},
		IsLiquid: true,
		Texture:  models.TexturePureed,
	},
	{
		Name:        "Soft Turkey & Sweet Potato Mash",
		Description: "Easier to process than whole meat.",
		Ingredients: []string{
			"1/2 cup lean ground turkey",
			"1/2 cup chicken broth",
			"1 medium sweet potato (Peeled completely)",
		},
		Instructions: []string{
			"Boil/bake sweet potato until soft. Mash strictly.",
			"Brown turkey in water (no oil).",
			"Add broth to turkey and simmer 10 mins.",
			"Mix turkey and potato together.",
		},
		Texture: models.TextureSoftSolid,
	},
	{
		Name:        "Emergency Electrolyte Popsicles",
		Description: "For severe nausea/vomiting days.",
		Ingredients: []string{
			"2 cups Coconut water or Pedialyte",
			"1/2 cup Apple Juice (No pulp)",
			"1 tbsp Honey",
		},
		Instructions: []string{
			"Mix liquids together.",
			"Pour into popsicle molds.",
			"Freeze. Sucking on ice helps nausea.",
		},
		IsLiquid: true,
		Texture:  models.TextureLiquid,
	},
}

// QuickAddFoods are common safe foods with known nutrition, for one-step
// logging without typing the breakdown.
var QuickAddFoods = []models.QuickFood{
	{Name: "Cream of Rice", Portion: "1/2 cup", Texture: models.TexturePureed,
		Nutrition: models.Nutrition{Calories: 150, Protein: 2, Carbs: 33}},
	{Name: "Egg Whites", Portion: "2 large", Texture: models.TextureSoftSolid,
		Nutrition: models.Nutrition{Calories: 34, Protein: 7}},
	{Name: "Ensure/Boost", Portion: "1 bottle", Texture: models.TextureLiquid,
		Nutrition: models.Nutrition{Calories: 220, Protein: 9, Carbs: 33, Fat: 6}},
	{Name: "Saltines", Portion: "5 crackers", Texture: models.TextureSolid,
		Nutrition: models.Nutrition{Calories: 60, Protein: 1, Carbs: 11, Fat: 1}},
	{Name: "Applesauce", Portion: "1/2 cup", Texture: models.TexturePureed,
		Nutrition: models.Nutrition{Calories: 50, Carbs: 13, Fiber: 1}},
}

// FindQuickFood returns the quick-add food with the given name, or nil.
// Matching is exact; names are short and shown in the picker.
func FindQuickFood(name string) *models.QuickFood {
	for i := range QuickAddFoods {
		if QuickAddFoods[i].Name == name {
			return &QuickAddFoods[i]
		}
	}
	return nil
}
