package models

// UserInfo is the questionnaire input for diet/exercise plan generation.
type UserInfo struct {
	Age                 int    `json:"age"`
	Gender              string `json:"gender"`
	Weight              int    `json:"weight"`
	Height              int    `json:"height"`
	ActivityLevel       string `json:"activityLevel"`
	Goal                string `json:"goal"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	VulnerableBodyParts string `json:"vulnerableBodyParts"`
}

// Meal is a single meal entry of a diet plan.
type Meal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Calories    int    `json:"calories"`
}

// DietPlan is the nutrition half of a generated plan.
type DietPlan struct {
	DailyCaloriesGoal int    `json:"daily_calories_goal"`
	Breakfast         Meal   `json:"breakfast"`
	Lunch             Meal   `json:"lunch"`
	Dinner            Meal   `json:"dinner"`
	Snacks            []Meal `json:"snacks"`
}

// Exercise is a single movement inside a workout day.
type Exercise struct {
	Name        string `json:"name"`
	Sets        string `json:"sets"`
	Description string `json:"description"`
}

// WorkoutDay is one entry of the weekly exercise schedule.
type WorkoutDay struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

// ExercisePlan is the training half of a generated plan.
type ExercisePlan struct {
	WeeklySchedule        []WorkoutDay `json:"weekly_schedule"`
	RestDayRecommendation string       `json:"rest_day_recommendation"`
}

// FullPlan is the complete structured response of the planner.
type FullPlan struct {
	DietPlan     DietPlan     `json:"diet_plan"`
	ExercisePlan ExercisePlan `json:"exercise_plan"`
}
