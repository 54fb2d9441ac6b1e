package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fitfood-app/backend/internal/logger"
	"github.com/fitfood-app/backend/internal/models"
)

const plannerModel = "gemini-2.5-flash"

// fullPlanSchema is the response schema sent with every planner request so
// the model returns the exact FullPlan shape.
const fullPlanSchema = `{
  "type": "OBJECT",
  "properties": {
    "diet_plan": {
      "type": "OBJECT",
      "properties": {
        "daily_calories_goal": {"type": "INTEGER"},
        "breakfast": {
          "type": "OBJECT",
          "properties": {"name": {"type": "STRING"}, "description": {"type": "STRING"}, "calories": {"type": "INTEGER"}},
          "required": ["name", "description", "calories"]
        },
        "lunch": {
          "type": "OBJECT",
          "properties": {"name": {"type": "STRING"}, "description": {"type": "STRING"}, "calories": {"type": "INTEGER"}},
          "required": ["name", "description", "calories"]
        },
        "dinner": {
          "type": "OBJECT",
          "properties": {"name": {"type": "STRING"}, "description": {"type": "STRING"}, "calories": {"type": "INTEGER"}},
          "required": ["name", "description", "calories"]
        },
        "snacks": {
          "type": "ARRAY",
          "items": {
            "type": "OBJECT",
            "properties": {"name": {"type": "STRING"}, "description": {"type": "STRING"}, "calories": {"type": "INTEGER"}},
            "required": ["name", "description", "calories"]
          }
        }
      },
      "required": ["daily_calories_goal", "breakfast", "lunch", "dinner", "snacks"]
    },
    "exercise_plan": {
      "type": "OBJECT",
      "properties": {
        "weekly_schedule": {
          "type": "ARRAY",
          "items": {
            "type": "OBJECT",
            "properties": {
              "day": {"type": "STRING"},
              "focus": {"type": "STRING"},
              "exercises": {
                "type": "ARRAY",
                "items": {
                  "type": "OBJECT",
                  "properties": {"name": {"type": "STRING"}, "sets": {"type": "STRING"}, "description": {"type": "STRING"}},
                  "required": ["name", "sets", "description"]
                }
              }
            },
            "required": ["day", "focus", "exercises"]
          }
        },
        "rest_day_recommendation": {"type": "STRING"}
      },
      "required": ["weekly_schedule", "rest_day_recommendation"]
    }
  },
  "required": ["diet_plan", "exercise_plan"]
}`

// PlannerService generates personalized diet and exercise plans.
type PlannerService struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewPlannerService creates a planner against the given Gemini base URL.
func NewPlannerService(baseURL string) *PlannerService {
	return &PlannerService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
		log:     logger.L(),
	}
}

// GeneratePlan fills the prompt template with the questionnaire answers and
// requests a structured plan. The response is decoded strictly: a JSON
// body that does not carry the full plan shape fails with
// ErrSchemaMismatch rather than returning a partial plan.
func (s *PlannerService) GeneratePlan(ctx context.Context, info models.UserInfo, apiKey, promptTemplate string) (*models.FullPlan, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: planner API key is not set", ErrConfigurationMissing)
	}

	prompt := buildPlannerPrompt(info, promptTemplate)

	text, err := generateContent(ctx, s.client, s.baseURL, plannerModel, apiKey, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   json.RawMessage(fullPlanSchema),
		},
	})
	if err != nil {
		s.log.Error("[Planner] generation failed", zap.Error(err))
		return nil, err
	}

	var plan models.FullPlan
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &plan); err != nil {
		s.log.Error("[Planner] response is not valid JSON", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if err := validatePlan(&plan); err != nil {
		s.log.Error("[Planner] response violates plan shape", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	return &plan, nil
}

// buildPlannerPrompt substitutes the questionnaire placeholders. Empty
// restriction fields read as "none" in the target language.
func buildPlannerPrompt(info models.UserInfo, template string) string {
	dietary := info.DietaryRestrictions
	if dietary == "" {
		dietary = "ندارد"
	}
	vulnerable := info.VulnerableBodyParts
	if vulnerable == "" {
		vulnerable = "ندارد"
	}

	return strings.NewReplacer(
		"{{age}}", strconv.Itoa(info.Age),
		"{{gender}}", info.Gender,
		"{{weight}}", strconv.Itoa(info.Weight),
		"{{height}}", strconv.Itoa(info.Height),
		"{{activityLevel}}", info.ActivityLevel,
		"{{goal}}", info.Goal,
		"{{dietaryRestrictions}}", dietary,
		"{{vulnerableBodyParts}}", vulnerable,
	).Replace(template)
}

// validatePlan checks the fields the schema marks required.
func validatePlan(plan *models.FullPlan) error {
	meals := map[string]models.Meal{
		"breakfast": plan.DietPlan.Breakfast,
		"lunch":     plan.DietPlan.Lunch,
		"dinner":    plan.DietPlan.Dinner,
	}
	for field, meal := range meals {
		if meal.Name == "" {
			return fmt.Errorf("missing %s", field)
		}
	}
	if plan.DietPlan.DailyCaloriesGoal <= 0 {
		return fmt.Errorf("missing daily_calories_goal")
	}
	if len(plan.ExercisePlan.WeeklySchedule) == 0 {
		return fmt.Errorf("missing weekly_schedule")
	}
	for _, day := range plan.ExercisePlan.WeeklySchedule {
		if day.Day == "" || day.Focus == "" {
			return fmt.Errorf("incomplete weekly_schedule entry")
		}
	}
	return nil
}
