package models

// Seed data used on first run and whenever a persisted collection is
// missing or unreadable. The Default* functions return fresh copies so
// callers may mutate them.

func DefaultProfile() Profile {
	return Profile{
		Name:   "Alex",
		Gender: GenderMale,
		Age:    "30",
		Height: "178",
		Weight: "73.2",
	}
}

func DefaultSleepEntries() []SleepEntry {
	return []SleepEntry{
		{Date: "2023-05-01", HoursSlept: 7.5, RestTime: "23:00", WakeUpTime: "06:30"},
		{Date: "2023-05-02", HoursSlept: 6.8, RestTime: "23:30", WakeUpTime: "06:20"},
		{Date: "2023-05-03", HoursSlept: 8.2, RestTime: "22:45", WakeUpTime: "07:00"},
		{Date: "2023-05-04", HoursSlept: 7.0, RestTime: "23:15", WakeUpTime: "06:15"},
		{Date: "2023-05-05", HoursSlept: 7.8, RestTime: "22:30", WakeUpTime: "06:20"},
		{Date: "2023-05-06", HoursSlept: 8.5, RestTime: "22:00", WakeUpTime: "06:30"},
		{Date: "2023-05-07", HoursSlept: 7.2, RestTime: "23:45", WakeUpTime: "07:00"},
	}
}

func DefaultWaterEntries() []WaterEntry {
	return []WaterEntry{
		{Date: "2023-05-01", Amount: 1.8},
		{Date: "2023-05-02", Amount: 2.1},
		{Date: "2023-05-03", Amount: 1.5},
		{Date: "2023-05-04", Amount: 2.3},
		{Date: "2023-05-05", Amount: 2.0},
		{Date: "2023-05-06", Amount: 1.9},
		{Date: "2023-05-07", Amount: 2.2},
	}
}

func DefaultMeals() []Meal {
	return []Meal{
		{ID: "1", Name: "Oatmeal with Berries", Calories: 350, Carbs: 45, Protein: 12, Fat: 8, Date: "2023-05-07", MealType: MealBreakfast},
		{ID: "2", Name: "Chicken Salad", Calories: 420, Carbs: 15, Protein: 35, Fat: 22, Date: "2023-05-07", MealType: MealLunch},
		{ID: "3", Name: "Salmon with Vegetables", Calories: 480, Carbs: 20, Protein: 40, Fat: 25, Date: "2023-05-07", MealType: MealDinner},
		{ID: "4", Name: "Greek Yogurt with Honey", Calories: 180, Carbs: 20, Protein: 15, Fat: 5, Date: "2023-05-07", MealType: MealSnack},
	}
}

func DefaultWorkouts() []Workout {
	return []Workout{
		{ID: "1", Name: "Push-ups", Duration: 15, Intensity: IntensityMedium, MuscleGroups: []string{"chest", "shoulders", "triceps"}, Date: "2023-05-07"},
		{ID: "2", Name: "Running", Duration: 30, Intensity: IntensityHigh, MuscleGroups: []string{"legs", "cardiovascular"}, Date: "2023-05-07"},
		{ID: "3", Name: "Squats", Duration: 20, Intensity: IntensityMedium, MuscleGroups: []string{"legs", "glutes"}, Date: "2023-05-06"},
		{ID: "4", Name: "Pull-ups", Duration: 10, Intensity: IntensityHigh, MuscleGroups: []string{"back", "biceps"}, Date: "2023-05-05"},
	}
}

func DefaultNotifications() []Notification {
	return []Notification{}
}
