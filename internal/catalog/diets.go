package catalog

// DietPlan is one entry from the static diet catalog
type DietPlan struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Duration    string `json:"duration"`
}

var DietPlans = []DietPlan{
	{
		ID:          1,
		Slug:        "mediterranean-diet",
		Title:       "Mediterranean Diet",
		Description: "Rich in fruits, vegetables, whole grains, and healthy fats. Perfect for heart health and weight management.",
		Category:    "Weight Loss",
		Difficulty:  "Medium",
		Duration:    "12 weeks",
	},
	{
		ID:          2,
		Slug:        "keto-diet-plan",
		Title:       "Keto Diet Plan",
		Description: "High fat, low carb approach to trigger ketosis for rapid weight loss and increased energy.",
		Category:    "Weight Loss",
		Difficulty:  "Hard",
		Duration:    "8 weeks",
	},
	{
		ID:          3,
		Slug:        "plant-based-diet",
		Title:       "Plant-Based Diet",
		Description: "Focus on plant foods for improved health, weight management, and reduced environmental impact.",
		Category:    "Health",
		Difficulty:  "Medium",
		Duration:    "12 weeks",
	},
	{
		ID:          4,
		Slug:        "intermittent-fasting",
		Title:       "Intermittent Fasting",
		Description: "Alternate eating and fasting periods to improve metabolism and support weight loss.",
		Category:    "Weight Loss",
		Difficulty:  "Medium",
		Duration:    "10 weeks",
	},
	{
		ID:          5,
		Slug:        "dash-diet",
		Title:       "DASH Diet",
		Description: "Designed to lower blood pressure through balanced nutrition and reduced sodium intake.",
		Category:    "Health",
		Difficulty:  "Easy",
		Duration:    "16 weeks",
	},
	{
		ID:          6,
		Slug:        "paleo-diet",
		Title:       "Paleo Diet",
		Description: "Based on foods similar to what our ancestors ate during the Paleolithic era, focusing on whole foods.",
		Category:    "Weight Loss",
		Difficulty:  "Hard",
		Duration:    "12 weeks",
	},
	{
		ID:          7,
		Slug:        "flexitarian-diet",
		Title:       "Flexitarian Diet",
		Description: "A flexible approach to vegetarianism that emphasizes plant-based foods with occasional meat.",
		Category:    "Health",
		Difficulty:  "Easy",
		Duration:    "10 weeks",
	},
	{
		ID:          8,
		Slug:        "low-carb-diet",
		Title:       "Low-Carb Diet",
		Description: "Reduce carbohydrate intake while focusing on protein and healthy fats for effective weight loss.",
		Category:    "Weight Loss",
		Difficulty:  "Medium",
		Duration:    "8 weeks",
	},
	{
		ID:          9,
		Slug:        "anti-inflammatory-diet",
		Title:       "Anti-Inflammatory Diet",
		Description: "Combat inflammation through nutrient-rich foods and balanced nutrition.",
		Category:    "Health",
		Difficulty:  "Medium",
		Duration:    "12 weeks",
	},
	{
		ID:          10,
		Slug:        "high-protein-diet",
		Title:       "High-Protein Diet",
		Description: "Build and maintain muscle mass while supporting weight loss through increased protein intake.",
		Category:    "Weight Loss",
		Difficulty:  "Medium",
		Duration:    "10 weeks",
	},
	{
		ID:          11,
		Slug:        "mediterranean-dash-diet",
		Title:       "Mediterranean-DASH Diet",
		Description: "Combine the best of Mediterranean and DASH diets for heart health and weight management.",
		Category:    "Health",
		Difficulty:  "Medium",
		Duration:    "14 weeks",
	},
	{
		ID:          12,
		Slug:        "whole30-diet",
		Title:       "Whole30 Diet",
		Description: "Reset your nutrition with 30 days of whole foods and elimination of processed ingredients.",
		Category:    "Weight Loss",
		Difficulty:  "Hard",
		Duration:    "4 weeks",
	},
}

func DietPlanBySlug(slug string) *DietPlan {
	for i := range DietPlans {
		if DietPlans[i].Slug == slug {
			return &DietPlans[i]
		}
	}
	return nil
}
