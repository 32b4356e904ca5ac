package controllers

import (
	"errors"
	"fitviz/internal/models"
	"fmt"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/spf13/cast"
)

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04"
)

// validateStruct runs the struct tag rules and reports the first violation.
func validateStruct(v any) error {
	vd := validate.Struct(v)
	if !vd.Validate() {
		return errors.New(vd.Errors.One())
	}
	return nil
}

type profileRequest struct {
	Name   *string `json:"name"`
	Gender *string `json:"gender"`
	Age    *string `json:"age"`
	Height *string `json:"height"`
	Weight *string `json:"weight"`
}

func (r *profileRequest) toUpdate() (models.ProfileUpdate, error) {
	u := models.ProfileUpdate{Age: r.Age, Height: r.Height, Weight: r.Weight}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return u, errors.New("name must not be empty")
		}
		u.Name = &name
	}
	if r.Gender != nil {
		g := models.Gender(*r.Gender)
		switch g {
		case models.GenderMale, models.GenderFemale, models.GenderOther:
			u.Gender = &g
		default:
			return u, fmt.Errorf("gender must be one of male, female, other")
		}
	}
	for field, val := range map[string]*string{"age": r.Age, "height": r.Height, "weight": r.Weight} {
		if val == nil {
			continue
		}
		n, err := cast.ToFloat64E(strings.TrimSpace(*val))
		if err != nil || n < 0 {
			return u, fmt.Errorf("%s must be a non-negative number", field)
		}
	}
	return u, nil
}

type sleepRequest struct {
	Date       string  `json:"date" validate:"required"`
	HoursSlept float64 `json:"hoursSlept" validate:"min:0|max:24"`
	RestTime   string  `json:"restTime" validate:"required"`
	WakeUpTime string  `json:"wakeUpTime" validate:"required"`
}

func (r *sleepRequest) toEntry() (models.SleepEntry, error) {
	if err := validateStruct(r); err != nil {
		return models.SleepEntry{}, err
	}
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		return models.SleepEntry{}, errors.New("date must be YYYY-MM-DD")
	}
	for _, t := range []string{r.RestTime, r.WakeUpTime} {
		if _, err := time.Parse(timeOfDayLayout, t); err != nil {
			return models.SleepEntry{}, errors.New("restTime and wakeUpTime must be HH:MM")
		}
	}
	return models.SleepEntry{Date: r.Date, HoursSlept: r.HoursSlept, RestTime: r.RestTime, WakeUpTime: r.WakeUpTime}, nil
}

type waterRequest struct {
	Amount float64 `json:"amount" validate:"required|gt:0"`
}

type mealRequest struct {
	Name     string  `json:"name" validate:"required"`
	Calories int     `json:"calories" validate:"min:0"`
	Carbs    float64 `json:"carbs" validate:"min:0"`
	Protein  float64 `json:"protein" validate:"min:0"`
	Fat      float64 `json:"fat" validate:"min:0"`
	MealType string  `json:"mealType" validate:"required|in:breakfast,lunch,dinner,snack"`
}

func (r *mealRequest) toInput() (models.MealInput, error) {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateStruct(r); err != nil {
		return models.MealInput{}, err
	}
	return models.MealInput{
		Name:     r.Name,
		Calories: r.Calories,
		Carbs:    r.Carbs,
		Protein:  r.Protein,
		Fat:      r.Fat,
		MealType: models.MealType(r.MealType),
	}, nil
}

type workoutRequest struct {
	Name         string   `json:"name" validate:"required"`
	Duration     int      `json:"duration" validate:"min:0"`
	Intensity    string   `json:"intensity" validate:"required|in:low,medium,high"`
	MuscleGroups []string `json:"muscleGroups" validate:"required"`
}

func (r *workoutRequest) toInput() (models.WorkoutInput, error) {
	r.Name = strings.TrimSpace(r.Name)
	groups := make([]string, 0, len(r.MuscleGroups))
	for _, g := range r.MuscleGroups {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	r.MuscleGroups = groups
	if err := validateStruct(r); err != nil {
		return models.WorkoutInput{}, err
	}
	if len(r.MuscleGroups) == 0 {
		return models.WorkoutInput{}, errors.New("select at least one muscle group")
	}
	return models.WorkoutInput{
		Name:         r.Name,
		Duration:     r.Duration,
		Intensity:    models.Intensity(r.Intensity),
		MuscleGroups: r.MuscleGroups,
	}, nil
}

type notificationRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message"`
	Type    string `json:"type" validate:"required|in:water,sleep,workout,nutrition,general"`
}

type reminderRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message"`
	Type    string `json:"type" validate:"required|in:water,sleep,workout,nutrition,general"`
	// At schedules a daily reminder; IntervalMinutes a repeating one.
	At              string `json:"at"`
	IntervalMinutes int    `json:"intervalMinutes" validate:"min:0"`
}

func (r *reminderRequest) check() error {
	r.Title = strings.TrimSpace(r.Title)
	if err := validateStruct(r); err != nil {
		return err
	}
	if (r.At == "") == (r.IntervalMinutes == 0) {
		return errors.New("set exactly one of at or intervalMinutes")
	}
	if r.At != "" {
		if _, err := time.Parse(timeOfDayLayout, r.At); err != nil {
			return errors.New("at must be HH:MM")
		}
	}
	return nil
}

func (r *reminderRequest) reminder() models.Reminder {
	return models.Reminder{Title: r.Title, Message: r.Message, Type: models.NotificationType(r.Type)}
}
