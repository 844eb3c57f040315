// Package catalog holds the static content served by the application:
// the quiz question set, diet plans, exercise routines and daily tips.
package catalog

import "github.com/bgogeta007/health-hustler/internal/models"

func fptr(v float64) *float64 { return &v }

// Questions is the fixed twelve-question quiz, in presentation order
var Questions = []models.Question{
	{
		ID:       1,
		Question: "What is your age?",
		Type:     models.QuestionTypeNumber,
		Min:      fptr(12),
		Max:      fptr(100),
		Required: true,
	},
	{
		ID:       2,
		Question: "What is your gender?",
		Type:     models.QuestionTypeSelect,
		Options:  []string{"Male", "Female"},
		Required: true,
	},
	{
		ID:       3,
		Question: "What is your current weight?",
		Type:     models.QuestionTypeNumber,
		Unit:     "kg",
		Min:      fptr(30),
		Max:      fptr(300),
		Required: true,
	},
	{
		ID:       4,
		Question: "What is your height?",
		Type:     models.QuestionTypeNumber,
		Unit:     "cm",
		Min:      fptr(100),
		Max:      fptr(250),
		Required: true,
	},
	{
		ID:       5,
		Question: "What is your target weight?",
		Type:     models.QuestionTypeNumber,
		Unit:     "kg",
		Min:      fptr(30),
		Max:      fptr(300),
		Required: true,
	},
	{
		ID:       6,
		Question: "How would you describe your activity level?",
		Type:     models.QuestionTypeRadio,
		Options: []string{
			"Sedentary (little or no exercise)",
			"Lightly active (light exercise/sports 1-3 days/week)",
			"Moderately active (moderate exercise/sports 3-5 days/week)",
			"Very active (hard exercise/sports 6-7 days/week)",
			"Extra active (very hard exercise/sports & physical job)",
		},
		Required: true,
		Info:     "Your activity level helps us determine your daily caloric needs",
	},
	{
		ID:       7,
		Question: "Do you have any dietary restrictions?",
		Type:     models.QuestionTypeSelect,
		Options: []string{
			"None",
			"Vegetarian",
			"Vegan",
			"Gluten-free",
			"Lactose intolerant",
			"Keto",
			"Other",
		},
		Required: true,
	},
	{
		ID:       8,
		Question: "What is your primary goal?",
		Type:     models.QuestionTypeRadio,
		Options: []string{
			"Lose weight",
			"Build muscle",
			"Maintain weight",
			"Improve overall health",
			"Increase energy levels",
		},
		Required: true,
	},
	{
		ID:       9,
		Question: "How many meals do you prefer per day?",
		Type:     models.QuestionTypeSelect,
		Options:  []string{"3 meals", "4 meals", "5 meals", "6 meals"},
		Required: true,
	},
	{
		ID:       10,
		Question: "Do you have any health conditions?",
		Type:     models.QuestionTypeSelect,
		Options: []string{
			"None",
			"Diabetes",
			"High blood pressure",
			"Heart disease",
			"Thyroid issues",
			"Other",
		},
		Required: true,
		Info:     "This helps us customize your plan safely",
	},
	{
		ID:       11,
		Question: "How much time can you dedicate to exercise per day?",
		Type:     models.QuestionTypeSelect,
		Options: []string{
			"Less than 30 minutes",
			"30-45 minutes",
			"45-60 minutes",
			"More than 60 minutes",
		},
		Required: true,
	},
	{
		ID:       12,
		Question: "What type of exercises do you prefer?",
		Type:     models.QuestionTypeRadio,
		Options: []string{
			"Cardio (running, cycling, swimming)",
			"Strength training",
			"High-Intensity Interval Training (HIIT)",
			"Low-impact exercises (yoga, pilates)",
			"Mix of different exercises",
		},
		Required: true,
	},
}

// QuestionByID returns nil for unknown ids
func QuestionByID(id int) *models.Question {
	for i := range Questions {
		if Questions[i].ID == id {
			return &Questions[i]
		}
	}
	return nil
}
