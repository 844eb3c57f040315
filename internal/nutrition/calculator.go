// Package nutrition computes health metrics and plan targets from quiz
// answers. All functions are pure and deterministic.
package nutrition

import (
	"fmt"
	"math"
	"strings"

	"github.com/bgogeta007/health-hustler/internal/models"
)

// Genders handled by the Harris-Benedict formulas. The branch is binary by
// design; categories outside these two are a validation error, not a
// silent fallback.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Goal categories that adjust the calorie target
const (
	GoalLoseWeight  = "Lose weight"
	GoalBuildMuscle = "Build muscle"
)

// activityMultipliers maps activity-level names to TDEE multipliers.
// Quiz answers carry the full option text ("Sedentary (little or no
// exercise)"), so lookup matches on the level-name prefix.
var activityMultipliers = []struct {
	prefix     string
	multiplier float64
}{
	{"Sedentary", 1.2},
	{"Lightly active", 1.375},
	{"Moderately active", 1.55},
	{"Very active", 1.725},
	{"Extra active", 1.9},
}

const defaultActivityMultiplier = 1.2

// Input is the fixed answer subset the calculator consumes
type Input struct {
	Age           float64
	Gender        string
	WeightKG      float64
	HeightCM      float64
	ActivityLevel string
	Goal          string
}

// MacroSplit is a three-way percentage split summing to 100
type MacroSplit struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// MacroGrams is the split converted to daily grams
type MacroGrams struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// PlanTargets is the goal-adjusted daily targets derived from a calculation
type PlanTargets struct {
	DailyCalories int        `json:"daily_calories"`
	Split         MacroSplit `json:"split"`
	Grams         MacroGrams `json:"grams"`
}

// Validate checks that every required input is present and sensible.
// Missing inputs fail fast instead of propagating NaN downstream.
func (in Input) Validate() error {
	if in.Age <= 0 {
		return fmt.Errorf("age is required")
	}
	if in.Gender != GenderMale && in.Gender != GenderFemale {
		return fmt.Errorf("gender must be %q or %q", GenderMale, GenderFemale)
	}
	if in.WeightKG <= 0 {
		return fmt.Errorf("weight is required")
	}
	if in.HeightCM <= 0 {
		return fmt.Errorf("height is required")
	}
	if in.ActivityLevel == "" {
		return fmt.Errorf("activity level is required")
	}
	return nil
}

// Calculate derives the BMI/BMR/TDEE snapshot from the input
func Calculate(in Input) (models.HealthCalculation, error) {
	if err := in.Validate(); err != nil {
		return models.HealthCalculation{}, err
	}

	heightM := in.HeightCM / 100
	bmi := in.WeightKG / (heightM * heightM)

	// Harris-Benedict, branched by gender
	var bmr float64
	if in.Gender == GenderMale {
		bmr = 88.362 + 13.397*in.WeightKG + 4.799*in.HeightCM - 5.677*in.Age
	} else {
		bmr = 447.593 + 9.247*in.WeightKG + 3.098*in.HeightCM - 4.330*in.Age
	}

	tdee := bmr * ActivityMultiplier(in.ActivityLevel)

	return models.HealthCalculation{BMI: bmi, BMR: bmr, TDEE: tdee}, nil
}

// ActivityMultiplier resolves an activity-level answer to its TDEE
// multiplier. Unmatched or missing input defaults to sedentary.
func ActivityMultiplier(level string) float64 {
	for _, m := range activityMultipliers {
		if strings.HasPrefix(level, m.prefix) {
			return m.multiplier
		}
	}
	return defaultActivityMultiplier
}

// GoalAdjustment is the calorie delta applied on top of TDEE
func GoalAdjustment(goal string) float64 {
	switch goal {
	case GoalLoseWeight:
		return -500
	case GoalBuildMuscle:
		return 300
	default:
		return 0
	}
}

// SplitForGoal returns the recommended macro percentage split for a goal
func SplitForGoal(goal string) MacroSplit {
	switch goal {
	case GoalLoseWeight:
		return MacroSplit{Protein: 40, Carbs: 30, Fats: 30}
	case GoalBuildMuscle:
		return MacroSplit{Protein: 35, Carbs: 45, Fats: 20}
	default:
		return MacroSplit{Protein: 30, Carbs: 40, Fats: 30}
	}
}

// Targets derives the daily calorie target and macro grams from a
// calculation and the stated goal. Protein and carbs convert at 4 kcal/g,
// fat at 9 kcal/g.
func Targets(calc models.HealthCalculation, goal string) PlanTargets {
	calories := int(math.Round(calc.TDEE + GoalAdjustment(goal)))
	split := SplitForGoal(goal)

	return PlanTargets{
		DailyCalories: calories,
		Split:         split,
		Grams: MacroGrams{
			Protein: int(math.Round(float64(calories) * float64(split.Protein) / 100 / 4)),
			Carbs:   int(math.Round(float64(calories) * float64(split.Carbs) / 100 / 4)),
			Fats:    int(math.Round(float64(calories) * float64(split.Fats) / 100 / 9)),
		},
	}
}

// BMIStatus classifies a BMI value into its display band
func BMIStatus(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
