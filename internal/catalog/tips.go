package catalog

import (
	"time"

	"github.com/bgogeta007/health-hustler/internal/models"
)

var Tips = []models.Tip{
	{
		ID:       1,
		Category: "workout",
		Title:    "Perfect Your Form",
		Content:  "Focus on proper form during exercises. Quality reps are better than rushed ones. This reduces injury risk and maximizes results.",
	},
	{
		ID:       2,
		Category: "nutrition",
		Title:    "Protein Timing",
		Content:  "Consume protein within 30 minutes after your workout to support muscle recovery and growth.",
	},
	{
		ID:       3,
		Category: "motivation",
		Title:    "Progress Over Perfection",
		Content:  "Remember that small improvements add up. Celebrate your daily wins, no matter how small they seem.",
	},
	{
		ID:       4,
		Category: "workout",
		Title:    "Active Recovery",
		Content:  "On rest days, try light activities like walking or stretching to promote recovery and maintain mobility.",
	},
	{
		ID:       5,
		Category: "nutrition",
		Title:    "Hydration Reminder",
		Content:  "Drink water throughout the day. A good rule is to consume half your body weight (in pounds) in ounces of water daily.",
	},
}

// TipOfTheDay rotates deterministically, one tip per calendar day
func TipOfTheDay(now time.Time) models.Tip {
	days := now.UTC().Unix() / 86400
	return Tips[int(days)%len(Tips)]
}

func TipByID(id int) *models.Tip {
	for i := range Tips {
		if Tips[i].ID == id {
			return &Tips[i]
		}
	}
	return nil
}
