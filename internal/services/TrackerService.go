package services

import (
	"fitviz/internal/models"
	"fitviz/internal/providers"
	"fitviz/internal/storage/interfaces"
	"fitviz/internal/structures"
	"slices"
	"sync"
)

type TrackerServiceInterface interface {
	Profile() models.Profile
	UpdateProfile(update models.ProfileUpdate) models.Profile
	SleepEntries() []models.SleepEntry
	AddSleepEntry(entry models.SleepEntry)
	WaterEntries() []models.WaterEntry
	AddWaterIntake(amount float64) models.WaterEntry
	Meals() []models.Meal
	AddMeal(input models.MealInput) models.Meal
	Workouts() []models.Workout
	AddWorkout(input models.WorkoutInput) models.Workout
	Summary() models.DailySummary
}

// TrackerService owns the profile and the four health logs. Every mutation
// updates memory and persists the touched document before returning.
type TrackerService struct {
	mu         sync.Mutex
	store      interfaces.StoreInterface
	clock      providers.Clock
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	newID      func() string
	sleepLimit int

	profile  models.Profile
	sleep    []models.SleepEntry
	water    []models.WaterEntry
	meals    []models.Meal
	workouts []models.Workout
}

func NewTrackerService(conf *structures.Config, store interfaces.StoreInterface, clock providers.Clock, logger providers.Logger, metrics providers.MetricsProviderInterface) TrackerServiceInterface {
	limit := conf.Tracker.SleepLogLimit
	if limit <= 0 || limit > models.MaxSleepEntries {
		limit = models.MaxSleepEntries
	}

	ts := &TrackerService{
		store:      store,
		clock:      clock,
		logger:     logger,
		metrics:    metrics,
		newID:      newID,
		sleepLimit: limit,
	}
	ts.profile = loadDocument(store, logger, KeyProfile, models.DefaultProfile)
	ts.sleep = loadDocument(store, logger, KeySleep, models.DefaultSleepEntries)
	ts.water = loadDocument(store, logger, KeyWater, models.DefaultWaterEntries)
	ts.meals = loadDocument(store, logger, KeyMeals, models.DefaultMeals)
	ts.workouts = loadDocument(store, logger, KeyWorkouts, models.DefaultWorkouts)

	if len(ts.sleep) > ts.sleepLimit {
		ts.sleep = ts.sleep[:ts.sleepLimit]
	}
	return ts
}

func (ts *TrackerService) Profile() models.Profile {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.profile
}

func (ts *TrackerService) UpdateProfile(update models.ProfileUpdate) models.Profile {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.profile = ts.profile.Merge(update)
	ts.persist("updateProfile", KeyProfile, ts.profile)
	return ts.profile
}

func (ts *TrackerService) SleepEntries() []models.SleepEntry {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return slices.Clone(ts.sleep)
}

// AddSleepEntry prepends entry and drops the oldest insertions beyond the
// log limit. Entries are ordered by insertion, not by their date.
func (ts *TrackerService) AddSleepEntry(entry models.SleepEntry) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	keep := min(len(ts.sleep), ts.sleepLimit-1)
	next := make([]models.SleepEntry, 0, keep+1)
	next = append(next, entry)
	next = append(next, ts.sleep[:keep]...)
	ts.sleep = next
	ts.persist("addSleepEntry", KeySleep, ts.sleep)
}

func (ts *TrackerService) WaterEntries() []models.WaterEntry {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return slices.Clone(ts.water)
}

// AddWaterIntake adds amount litres to today's entry, creating it at the
// front of the log when today has none yet.
func (ts *TrackerService) AddWaterIntake(amount float64) models.WaterEntry {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	today := ts.clock.Today()
	var entry models.WaterEntry
	if i := slices.IndexFunc(ts.water, func(e models.WaterEntry) bool { return e.Date == today }); i >= 0 {
		ts.water[i].Amount += amount
		entry = ts.water[i]
	} else {
		entry = models.WaterEntry{Date: today, Amount: amount}
		ts.water = append([]models.WaterEntry{entry}, ts.water...)
	}
	ts.persist("addWaterIntake", KeyWater, ts.water)
	return entry
}

func (ts *TrackerService) Meals() []models.Meal {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return slices.Clone(ts.meals)
}

func (ts *TrackerService) AddMeal(input models.MealInput) models.Meal {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	meal := models.Meal{
		ID:       ts.newID(),
		Name:     input.Name,
		Calories: input.Calories,
		Carbs:    input.Carbs,
		Protein:  input.Protein,
		Fat:      input.Fat,
		Date:     ts.clock.Today(),
		MealType: input.MealType,
	}
	ts.meals = append([]models.Meal{meal}, ts.meals...)
	ts.persist("addMeal", KeyMeals, ts.meals)
	return meal
}

func (ts *TrackerService) Workouts() []models.Workout {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return cloneWorkouts(ts.workouts)
}

func (ts *TrackerService) AddWorkout(input models.WorkoutInput) models.Workout {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	workout := models.Workout{
		ID:           ts.newID(),
		Name:         input.Name,
		Duration:     input.Duration,
		Intensity:    input.Intensity,
		MuscleGroups: slices.Clone(input.MuscleGroups),
		Date:         ts.clock.Today(),
	}
	ts.workouts = append([]models.Workout{workout}, ts.workouts...)
	ts.persist("addWorkout", KeyWorkouts, ts.workouts)

	workout.MuscleGroups = slices.Clone(workout.MuscleGroups)
	return workout
}

func (ts *TrackerService) Summary() models.DailySummary {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return models.Summarize(ts.clock.Today(), ts.profile, ts.sleep, ts.water, ts.meals, ts.workouts)
}

func (ts *TrackerService) persist(operation, key string, v any) {
	ts.metrics.IncMutations(operation)
	saveDocument(ts.store, ts.logger, key, v)
}

func cloneWorkouts(in []models.Workout) []models.Workout {
	out := make([]models.Workout, len(in))
	for i, w := range in {
		w.MuscleGroups = slices.Clone(w.MuscleGroups)
		out[i] = w
	}
	return out
}
