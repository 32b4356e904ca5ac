package models

// DailySummary bundles every derived metric for one calendar day. It is
// computed on demand and never persisted.
type DailySummary struct {
	Date string `json:"date"`

	BMI         float64     `json:"bmi"`
	BMICategory BMICategory `json:"bmiCategory"`

	WaterToday       float64            `json:"waterToday"`
	WaterTarget      float64            `json:"waterTarget"`
	WaterRemaining   float64            `json:"waterRemaining"`
	WaterProgress    float64            `json:"waterProgress"`
	BodyWaterIndex   float64            `json:"bodyWaterIndex"`
	AverageSleep     float64            `json:"averageSleep"`
	WorkoutMinutes   int                `json:"workoutMinutes"`
	MacrosToday      Macros             `json:"macrosToday"`
	MacroSplitToday  MacroSplit         `json:"macroSplitToday"`
	MacrosTarget     Macros             `json:"macrosTarget"`
	MuscleGroups     []MuscleGroupCount `json:"muscleGroups"`
	LessWorkedGroups []string           `json:"lessWorkedGroups"`
}

// Summarize derives the summary for date from a snapshot of the store.
func Summarize(date string, p Profile, sleep []SleepEntry, water []WaterEntry, meals []Meal, workouts []Workout) DailySummary {
	weight := p.WeightKg()
	bmi := BMI(weight, p.HeightCm())
	target := RecommendedWater(weight)
	today := WaterOn(water, date)
	macros := MealTotals(meals, date)

	return DailySummary{
		Date:             date,
		BMI:              bmi,
		BMICategory:      BMICategoryFor(bmi),
		WaterToday:       today,
		WaterTarget:      target,
		WaterRemaining:   max(target-today, 0),
		WaterProgress:    WaterProgress(today, target),
		BodyWaterIndex:   BodyWaterIndex(p.Gender, p.AgeYears(), today, target),
		AverageSleep:     AverageSleep(sleep),
		WorkoutMinutes:   WorkoutMinutesOn(workouts, date),
		MacrosToday:      macros,
		MacroSplitToday:  MacroPercentages(macros),
		MacrosTarget:     RecommendedMacros(p.Gender, weight),
		MuscleGroups:     MuscleGroupFrequency(workouts),
		LessWorkedGroups: LessWorkedGroups(workouts),
	}
}
