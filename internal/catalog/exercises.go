package catalog

// Exercise is one routine from the static exercise catalog
type Exercise struct {
	ID           int      `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Intensity    string   `json:"intensity"`
	Category     string   `json:"category"`
	Benefits     []string `json:"benefits"`
	Instructions []string `json:"instructions"`
	Equipment    []string `json:"equipment"`
	Calories     string   `json:"calories"`
}

var Exercises = []Exercise{
	{
		ID:          1,
		Slug:        "hiit-cardio-workout",
		Title:       "HIIT Cardio Workout",
		Description: "High-intensity interval training to maximize calorie burn in a short amount of time.",
		Duration:    "30 min",
		Intensity:   "High",
		Category:    "Cardio",
		Benefits: []string{
			"Increases metabolism for hours after workout",
			"Improves cardiovascular endurance",
			"Burns maximum calories in minimum time",
			"Enhances fat burning",
			"Builds lean muscle",
		},
		Instructions: []string{
			"Warm up for 5 minutes with light cardio",
			"Perform 30 seconds of high-intensity exercise",
			"Rest or perform low-intensity exercise for 30 seconds",
			"Repeat for 20 minutes",
			"Cool down for 5 minutes",
		},
		Equipment: []string{"None required (bodyweight exercises)", "Optional: jump rope", "Optional: exercise mat", "Water bottle"},
		Calories:  "300-400",
	},
	{
		ID:          2,
		Slug:        "full-body-strength-training",
		Title:       "Full Body Strength Training",
		Description: "Build muscle and increase metabolism with this comprehensive strength workout.",
		Duration:    "45 min",
		Intensity:   "Medium",
		Category:    "Strength",
		Benefits: []string{
			"Builds lean muscle mass",
			"Increases resting metabolic rate",
			"Improves bone density",
			"Enhances functional strength",
			"Reduces risk of injury",
		},
		Instructions: []string{
			"Start with a 5-minute dynamic warm-up",
			"Perform exercises in circuit format",
			"Complete 3 sets of each exercise",
			"Rest 60 seconds between sets",
			"End with stretching",
		},
		Equipment: []string{"Dumbbells", "Exercise mat", "Resistance bands", "Water bottle"},
		Calories:  "400-500",
	},
	{
		ID:          3,
		Slug:        "yoga-for-weight-loss",
		Title:       "Yoga for Weight Loss",
		Description: "A flowing yoga sequence designed to burn calories while improving flexibility and mindfulness.",
		Duration:    "40 min",
		Intensity:   "Low",
		Category:    "Flexibility",
		Benefits: []string{
			"Improves flexibility and balance",
			"Reduces stress and anxiety",
			"Builds lean muscle mass",
			"Enhances mindfulness",
			"Promotes better sleep",
		},
		Instructions: []string{
			"Start with sun salutations to warm up",
			"Flow through standing poses",
			"Include balance poses",
			"Add strength-building poses",
			"End with relaxation",
		},
		Equipment: []string{"Yoga mat", "Optional blocks", "Optional strap", "Comfortable clothing"},
		Calories:  "200-300",
	},
	{
		ID:          4,
		Slug:        "fat-burning-running-plan",
		Title:       "Fat-Burning Running Plan",
		Description: "Interval running workout designed to maximize fat burning and cardiovascular health.",
		Duration:    "35 min",
		Intensity:   "High",
		Category:    "Cardio",
		Benefits: []string{
			"Maximizes calorie burn",
			"Improves cardiovascular endurance",
			"Boosts metabolism",
			"Strengthens legs and core",
			"Enhances mental toughness",
		},
		Instructions: []string{
			"Warm up with 5 minutes of light jogging",
			"Run at high intensity for 1 minute",
			"Recover with 2 minutes of light jogging",
			"Repeat intervals 8-10 times",
			"Cool down with 5 minutes of walking",
		},
		Equipment: []string{"Running shoes", "Comfortable clothing", "Water bottle", "Optional: fitness tracker"},
		Calories:  "400-500",
	},
	{
		ID:          5,
		Slug:        "core-and-abs-workout",
		Title:       "Core and Abs Workout",
		Description: "Strengthen your core muscles to improve posture, stability, and create a toned midsection.",
		Duration:    "25 min",
		Intensity:   "Medium",
		Category:    "Strength",
		Benefits: []string{
			"Strengthens core muscles",
			"Improves posture",
			"Reduces back pain",
			"Enhances stability",
			"Tones abdominal area",
		},
		Instructions: []string{
			"Begin with a 5-minute warm-up",
			"Perform each exercise for 45 seconds",
			"Rest for 15 seconds between exercises",
			"Complete 3 rounds",
			"End with stretching",
		},
		Equipment: []string{"Exercise mat", "Optional: resistance band", "Optional: light weights", "Water bottle"},
		Calories:  "150-200",
	},
	{
		ID:          6,
		Slug:        "low-impact-full-body-workout",
		Title:       "Low-Impact Full Body Workout",
		Description: "Joint-friendly exercises that provide a full body workout without high-impact movements.",
		Duration:    "30 min",
		Intensity:   "Low",
		Category:    "Strength",
		Benefits: []string{
			"Joint-friendly exercises",
			"Full body muscle engagement",
			"Improves strength and endurance",
			"Suitable for beginners",
			"Low risk of injury",
		},
		Instructions: []string{
			"Start with gentle mobility exercises",
			"Perform each exercise for 40 seconds",
			"Rest for 20 seconds between exercises",
			"Complete 3 rounds",
			"Cool down with light stretching",
		},
		Equipment: []string{"Exercise mat", "Light dumbbells", "Resistance bands", "Water bottle"},
		Calories:  "200-300",
	},
	{
		ID:          7,
		Slug:        "pilates-for-core-strength",
		Title:       "Pilates for Core Strength",
		Description: "Focus on core strength and flexibility with controlled, precise movements.",
		Duration:    "35 min",
		Intensity:   "Medium",
		Category:    "Flexibility",
		Benefits: []string{
			"Strengthens core muscles",
			"Improves posture",
			"Increases flexibility",
			"Enhances body awareness",
			"Reduces back pain",
		},
		Instructions: []string{
			"Begin with breathing exercises",
			"Focus on core engagement",
			"Perform controlled movements",
			"Maintain proper alignment",
			"End with stretching",
		},
		Equipment: []string{"Exercise mat", "Optional: Pilates ring", "Optional: small ball", "Comfortable clothing"},
		Calories:  "150-250",
	},
	{
		ID:          8,
		Slug:        "bodyweight-circuit-training",
		Title:       "Bodyweight Circuit Training",
		Description: "Effective full-body workout using only your body weight for resistance.",
		Duration:    "30 min",
		Intensity:   "High",
		Category:    "Strength",
		Benefits: []string{
			"No equipment needed",
			"Can be done anywhere",
			"Improves functional strength",
			"Builds endurance",
			"Burns calories efficiently",
		},
		Instructions: []string{
			"Warm up with dynamic stretches",
			"Perform exercises in circuit format",
			"Work for 45 seconds",
			"Rest for 15 seconds",
			"Complete 3-4 rounds",
		},
		Equipment: []string{"No equipment required", "Exercise mat (optional)", "Water bottle", "Timer"},
		Calories:  "300-400",
	},
	{
		ID:          9,
		Slug:        "power-walking-routine",
		Title:       "Power Walking Routine",
		Description: "Brisk walking workout with intervals to boost calorie burn and endurance.",
		Duration:    "40 min",
		Intensity:   "Low",
		Category:    "Cardio",
		Benefits: []string{
			"Low-impact cardio",
			"Improves heart health",
			"Burns calories",
			"Strengthens legs",
			"Suitable for all fitness levels",
		},
		Instructions: []string{
			"Start with regular pace warm-up",
			"Increase to brisk walking",
			"Add arm movements",
			"Include uphill sections if possible",
			"Cool down with slower pace",
		},
		Equipment: []string{"Comfortable walking shoes", "Weather-appropriate clothing", "Water bottle", "Optional: fitness tracker"},
		Calories:  "200-300",
	},
	{
		ID:          10,
		Slug:        "resistance-band-workout",
		Title:       "Resistance Band Workout",
		Description: "Full-body strength training using resistance bands for progressive overload.",
		Duration:    "35 min",
		Intensity:   "Medium",
		Category:    "Strength",
		Benefits: []string{
			"Portable equipment",
			"Adaptable resistance",
			"Improves strength",
			"Enhances muscle tone",
			"Low impact on joints",
		},
		Instructions: []string{
			"Warm up with light exercises",
			"Check band condition",
			"Perform controlled movements",
			"Complete 3 sets per exercise",
			"Cool down and stretch",
		},
		Equipment: []string{"Resistance bands", "Exercise mat", "Water bottle", "Timer"},
		Calories:  "250-350",
	},
	{
		ID:          11,
		Slug:        "dynamic-stretching-routine",
		Title:       "Dynamic Stretching Routine",
		Description: "Improve flexibility and mobility with dynamic stretching exercises.",
		Duration:    "25 min",
		Intensity:   "Low",
		Category:    "Flexibility",
		Benefits: []string{
			"Improves flexibility",
			"Enhances mobility",
			"Reduces injury risk",
			"Prepares body for exercise",
			"Improves circulation",
		},
		Instructions: []string{
			"Start with light movement",
			"Progress through all major muscle groups",
			"Maintain fluid movements",
			"Hold stretches briefly",
			"Increase range gradually",
		},
		Equipment: []string{"Exercise mat", "Comfortable clothing", "Water bottle", "Optional: yoga strap"},
		Calories:  "100-150",
	},
	{
		ID:          12,
		Slug:        "tabata-training",
		Title:       "Tabata Training",
		Description: "High-intensity interval training with 20 seconds work and 10 seconds rest.",
		Duration:    "20 min",
		Intensity:   "High",
		Category:    "Cardio",
		Benefits: []string{
			"Maximum calorie burn",
			"Improves endurance",
			"Increases metabolism",
			"Time-efficient workout",
			"Builds mental toughness",
		},
		Instructions: []string{
			"Warm up thoroughly",
			"Work hard for 20 seconds",
			"Rest for 10 seconds",
			"Repeat 8 times",
			"Complete 4-8 rounds",
		},
		Equipment: []string{"Timer", "Exercise mat", "Water bottle", "Optional: weights"},
		Calories:  "250-400",
	},
}

func ExerciseBySlug(slug string) *Exercise {
	for i := range Exercises {
		if Exercises[i].Slug == slug {
			return &Exercises[i]
		}
	}
	return nil
}
