package models

import "time"

// QuestionType enumerates the quiz input kinds
const (
	QuestionTypeSelect = "select"
	QuestionTypeNumber = "number"
	QuestionTypeRadio  = "radio"
)

// Question describes a single quiz question
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Required bool     `json:"required"`
	Info     string   `json:"info,omitempty"`
}

// AnswerSet maps question ids to the submitted scalar answer. Numeric
// answers are normalized to their decimal string form.
type AnswerSet map[int]string

// HealthCalculation is the derived metrics snapshot. Immutable once
// computed; a new quiz submission produces a new calculation.
type HealthCalculation struct {
	BMI  float64 `json:"bmi"`
	BMR  float64 `json:"bmr"`
	TDEE float64 `json:"tdee"`
}

// QuizResult is one immutable quiz submission with its calculations
type QuizResult struct {
	ID           uint64            `json:"id" db:"id"`
	UserID       uint64            `json:"user_id" db:"user_id"`
	Answers      AnswerSet         `json:"answers" db:"answers"`
	Calculations HealthCalculation `json:"calculations" db:"calculations"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
}

// HealthProfile is the user's single current-plan snapshot, overwritten
// on each quiz completion. History lives in quiz_results.
type HealthProfile struct {
	UserID       uint64            `json:"user_id" db:"user_id"`
	Answers      AnswerSet         `json:"answers" db:"answers"`
	Calculations HealthCalculation `json:"calculations" db:"calculations"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
}
