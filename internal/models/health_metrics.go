package models

import (
	"math"
	"sort"
)

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

const (
	waterLitresPerKg      = 0.033
	hydrationBaseMale     = 60.0
	hydrationBaseOther    = 55.0
	hydrationAgePenalty   = 5.0
	hydrationAgeThreshold = 50.0
	hydrationIntakeWeight = 10.0
	hydrationIntakeCap    = 10.0

	caloriesMale       = 2500
	caloriesOther      = 2000
	proteinGramsPerKg  = 1.6
	fatCalorieShare    = 0.25
	carbsCalorieShare  = 0.5
	kcalPerGramFat     = 9.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramProtein = 4.0

	// a muscle group trained fewer times than this is reported as less worked
	lessWorkedThreshold = 2
	lessWorkedLimit     = 3
	topMuscleGroups     = 7
)

// BMI returns weight / height² with height given in centimetres. A
// non-positive height yields 0.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

func BMICategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// RecommendedWater is the daily water target in litres.
func RecommendedWater(weightKg float64) float64 {
	return weightKg * waterLitresPerKg
}

// BodyWaterIndex is a 0..100 hydration score: a demographic baseline plus
// up to 10 points for today's intake relative to the recommendation.
func BodyWaterIndex(gender Gender, age, todayIntake, recommended float64) float64 {
	base := hydrationBaseOther
	if gender == GenderMale {
		base = hydrationBaseMale
	}
	if age > hydrationAgeThreshold {
		base -= hydrationAgePenalty
	}

	var contribution float64
	if recommended > 0 {
		contribution = math.Min(todayIntake/recommended*hydrationIntakeWeight, hydrationIntakeCap)
	}
	return clamp(base+contribution, 0, 100)
}

// WaterProgress is today's intake as a percentage of the target, capped at 100.
func WaterProgress(todayIntake, recommended float64) float64 {
	if recommended <= 0 {
		return 0
	}
	return math.Min(100, todayIntake/recommended*100)
}

type Macros struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

func RecommendedMacros(gender Gender, weightKg float64) Macros {
	calories := float64(caloriesOther)
	if gender == GenderMale {
		calories = caloriesMale
	}
	return Macros{
		Calories: calories,
		Protein:  weightKg * proteinGramsPerKg,
		Fat:      calories * fatCalorieShare / kcalPerGramFat,
		Carbs:    calories * carbsCalorieShare / kcalPerGramCarbs,
	}
}

type MacroSplit struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}

// MacroPercentages splits the energy of the given macros (grams) into
// percentages. All zero when there is nothing to split.
func MacroPercentages(m Macros) MacroSplit {
	carbs := m.Carbs * kcalPerGramCarbs
	protein := m.Protein * kcalPerGramProtein
	fat := m.Fat * kcalPerGramFat
	total := carbs + protein + fat
	if total <= 0 {
		return MacroSplit{}
	}
	return MacroSplit{
		Carbs:   carbs / total * 100,
		Protein: protein / total * 100,
		Fat:     fat / total * 100,
	}
}

// MealTotals sums the macros of the meals logged on date.
func MealTotals(meals []Meal, date string) Macros {
	var total Macros
	for _, m := range meals {
		if m.Date != date {
			continue
		}
		total.Calories += float64(m.Calories)
		total.Carbs += m.Carbs
		total.Protein += m.Protein
		total.Fat += m.Fat
	}
	return total
}

func WaterOn(entries []WaterEntry, date string) float64 {
	var total float64
	for _, e := range entries {
		if e.Date == date {
			total += e.Amount
		}
	}
	return total
}

func WorkoutMinutesOn(workouts []Workout, date string) int {
	total := 0
	for _, w := range workouts {
		if w.Date == date {
			total += w.Duration
		}
	}
	return total
}

func AverageSleep(entries []SleepEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var total float64
	for _, e := range entries {
		total += e.HoursSlept
	}
	return total / float64(len(entries))
}

type MuscleGroupCount struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// MuscleGroupFrequency counts how often each muscle group was trained,
// most trained first (ties by name), limited to the top seven.
func MuscleGroupFrequency(workouts []Workout) []MuscleGroupCount {
	counts := muscleGroupCounts(workouts)
	result := make([]MuscleGroupCount, 0, len(counts))
	for g, c := range counts {
		result = append(result, MuscleGroupCount{Group: g, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Group < result[j].Group
	})
	if len(result) > topMuscleGroups {
		result = result[:topMuscleGroups]
	}
	return result
}

// LessWorkedGroups lists up to three catalogue groups trained fewer than
// two times, in catalogue order.
func LessWorkedGroups(workouts []Workout) []string {
	counts := muscleGroupCounts(workouts)
	result := make([]string, 0, lessWorkedLimit)
	for _, g := range MuscleGroups {
		if counts[g] < lessWorkedThreshold {
			result = append(result, g)
			if len(result) == lessWorkedLimit {
				break
			}
		}
	}
	return result
}

func muscleGroupCounts(workouts []Workout) map[string]int {
	counts := make(map[string]int)
	for _, w := range workouts {
		for _, g := range w.MuscleGroups {
			counts[g]++
		}
	}
	return counts
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
