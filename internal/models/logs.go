package models

// MaxSleepEntries bounds the sleep log; inserting beyond it evicts the
// oldest insertion.
const MaxSleepEntries = 30

type SleepEntry struct {
	Date       string  `json:"date"`
	HoursSlept float64 `json:"hoursSlept"`
	RestTime   string  `json:"restTime"`
	WakeUpTime string  `json:"wakeUpTime"`
}

// WaterEntry is the total intake of one calendar day. Date is unique
// within the water log.
type WaterEntry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type Meal struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	Carbs    float64  `json:"carbs"`
	Protein  float64  `json:"protein"`
	Fat      float64  `json:"fat"`
	Date     string   `json:"date"`
	MealType MealType `json:"mealType"`
}

// MealInput is a meal before the store stamps its id and date.
type MealInput struct {
	Name     string
	Calories int
	Carbs    float64
	Protein  float64
	Fat      float64
	MealType MealType
}

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

type Workout struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Duration     int       `json:"duration"`
	Intensity    Intensity `json:"intensity"`
	MuscleGroups []string  `json:"muscleGroups"`
	Date         string    `json:"date"`
}

type WorkoutInput struct {
	Name         string
	Duration     int
	Intensity    Intensity
	MuscleGroups []string
}

// MuscleGroups is the catalogue offered when logging a workout.
var MuscleGroups = []string{
	"chest", "back", "shoulders", "biceps", "triceps", "forearms",
	"abs", "legs", "glutes", "calves", "cardiovascular",
}
