package services

import (
	"fitviz/internal/models"
	"fitviz/internal/storage"
	"fitviz/internal/structures"
	"fitviz/internal/testutil"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

type trackerFixture struct {
	store   *testutil.MockStore
	clock   *testutil.FakeClock
	logger  *testutil.MockLogger
	metrics *testutil.MockMetrics
}

func newTrackerFixture() *trackerFixture {
	return &trackerFixture{
		store:   testutil.NewMockStore(),
		clock:   testutil.NewFakeClock(testNow),
		logger:  &testutil.MockLogger{},
		metrics: testutil.NewMockMetrics(),
	}
}

func (f *trackerFixture) tracker(t *testing.T) *TrackerService {
	t.Helper()
	conf := &structures.Config{Tracker: structures.TrackerConfig{SleepLogLimit: models.MaxSleepEntries}}
	ts, ok := NewTrackerService(conf, f.store, f.clock, f.logger, f.metrics).(*TrackerService)
	require.True(t, ok)
	return ts
}

func decodeStored[T any](t *testing.T, store *testutil.MockStore, key string) T {
	t.Helper()
	raw, ok := store.Raw(key)
	require.True(t, ok, "key %s was not persisted", key)
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestTracker_FirstRunUsesSeeds(t *testing.T) {
	ts := newTrackerFixture().tracker(t)

	assert.Equal(t, models.DefaultProfile(), ts.Profile())
	assert.Equal(t, models.DefaultSleepEntries(), ts.SleepEntries())
	assert.Equal(t, models.DefaultWaterEntries(), ts.WaterEntries())
	assert.Equal(t, models.DefaultMeals(), ts.Meals())
	assert.Equal(t, models.DefaultWorkouts(), ts.Workouts())
}

func TestTracker_MalformedDocumentsFallBackToSeeds(t *testing.T) {
	f := newTrackerFixture()
	f.store.Put(KeyProfile, "{not json")
	f.store.Put(KeySleep, "null")
	f.store.Put(KeyWater, `{"date":"2024-01-01"}`)
	f.store.Put(KeyMeals, `[]`)

	ts := f.tracker(t)

	assert.Equal(t, models.DefaultProfile(), ts.Profile())
	assert.Equal(t, models.DefaultSleepEntries(), ts.SleepEntries())
	assert.Equal(t, models.DefaultWaterEntries(), ts.WaterEntries())
	assert.Empty(t, ts.Meals())
	assert.Equal(t, 2, f.logger.Count("warn"))
}

func TestTracker_ReadErrorFallsBackToSeeds(t *testing.T) {
	f := newTrackerFixture()
	f.store.GetErr = testutil.ErrInjected

	ts := f.tracker(t)

	assert.Equal(t, models.DefaultProfile(), ts.Profile())
	assert.Equal(t, 5, f.logger.Count("warn"))
}

func TestTracker_UpdateProfileMergesAndPersists(t *testing.T) {
	f := newTrackerFixture()
	ts := f.tracker(t)

	weight := "80"
	got := ts.UpdateProfile(models.ProfileUpdate{Weight: &weight})

	assert.Equal(t, "80", got.Weight)
	assert.Equal(t, "Alex", got.Name)
	assert.Equal(t, got, decodeStored[models.Profile](t, f.store, KeyProfile))
	assert.Equal(t, 1, f.metrics.Mutations["updateProfile"])
}

func TestTracker_AddWaterIntakeAccumulatesToday(t *testing.T) {
	f := newTrackerFixture()
	f.store.Put(KeyWater, `[]`)
	ts := f.tracker(t)

	ts.AddWaterIntake(0.5)
	entry := ts.AddWaterIntake(0.3)

	assert.Equal(t, "2024-03-01", entry.Date)
	assert.InDelta(t, 0.8, entry.Amount, 1e-9)
	entries := ts.WaterEntries()
	require.Len(t, entries, 1)
	assert.InDelta(t, 0.8, entries[0].Amount, 1e-9)
	assert.Equal(t, entries, decodeStored[[]models.WaterEntry](t, f.store, KeyWater))
}

func TestTracker_AddWaterIntakeNewDayKeepsHistory(t *testing.T) {
	f := newTrackerFixture()
	ts := f.tracker(t)
	before := ts.WaterEntries()

	ts.AddWaterIntake(0.25)

	entries := ts.WaterEntries()
	require.Len(t, entries, len(before)+1)
	assert.Equal(t, models.WaterEntry{Date: "2024-03-01", Amount: 0.25}, entries[0])
	assert.Equal(t, before, entries[1:])

	f.clock.Advance(24 * time.Hour)
	ts.AddWaterIntake(1)
	entries = ts.WaterEntries()
	assert.Equal(t, "2024-03-02", entries[0].Date)
	assert.Equal(t, 0.25, entries[1].Amount)
}

func TestTracker_SleepLogEvictsOldest(t *testing.T) {
	f := newTrackerFixture()
	f.store.Put(KeySleep, `[]`)
	ts := f.tracker(t)

	for i := 1; i <= 31; i++ {
		ts.AddSleepEntry(models.SleepEntry{Date: fmt.Sprintf("day-%02d", i), HoursSlept: 7})
	}

	entries := ts.SleepEntries()
	require.Len(t, entries, models.MaxSleepEntries)
	assert.Equal(t, "day-31", entries[0].Date)
	assert.Equal(t, "day-02", entries[len(entries)-1].Date)
	assert.Len(t, decodeStored[[]models.SleepEntry](t, f.store, KeySleep), models.MaxSleepEntries)
}

func TestTracker_SleepLogOrderedByInsertion(t *testing.T) {
	ts := newTrackerFixture().tracker(t)

	ts.AddSleepEntry(models.SleepEntry{Date: "2020-01-01", HoursSlept: 5})

	assert.Equal(t, "2020-01-01", ts.SleepEntries()[0].Date)
}

func TestTracker_OversizedSleepLogIsTrimmedOnLoad(t *testing.T) {
	f := newTrackerFixture()
	entries := make([]models.SleepEntry, 40)
	raw, err := json.Marshal(entries)
	require.NoError(t, err)
	f.store.Put(KeySleep, string(raw))

	assert.Len(t, f.tracker(t).SleepEntries(), models.MaxSleepEntries)
}

func TestTracker_AddMealStampsIDAndDate(t *testing.T) {
	f := newTrackerFixture()
	ts := f.tracker(t)
	ts.newID = func() string { return "meal-1" }

	meal := ts.AddMeal(models.MealInput{Name: "Porridge", Calories: 350, Carbs: 60, Protein: 12, Fat: 7, MealType: models.MealBreakfast})

	assert.Equal(t, "meal-1", meal.ID)
	assert.Equal(t, "2024-03-01", meal.Date)
	assert.Equal(t, meal, ts.Meals()[0])
	assert.Equal(t, ts.Meals(), decodeStored[[]models.Meal](t, f.store, KeyMeals))
}

func TestTracker_IDsAreUnique(t *testing.T) {
	ts := newTrackerFixture().tracker(t)

	a := ts.AddMeal(models.MealInput{Name: "A", MealType: models.MealSnack})
	b := ts.AddMeal(models.MealInput{Name: "B", MealType: models.MealSnack})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTracker_AddWorkoutDoesNotAliasInput(t *testing.T) {
	f := newTrackerFixture()
	ts := f.tracker(t)
	groups := []string{"legs", "glutes"}

	w := ts.AddWorkout(models.WorkoutInput{Name: "Squats", Duration: 30, Intensity: models.IntensityHigh, MuscleGroups: groups})
	groups[0] = "chest"
	w.MuscleGroups[1] = "abs"

	stored := ts.Workouts()[0]
	assert.Equal(t, []string{"legs", "glutes"}, stored.MuscleGroups)
	assert.Equal(t, "2024-03-01", stored.Date)
	assert.Equal(t, ts.Workouts(), decodeStored[[]models.Workout](t, f.store, KeyWorkouts))
}

func TestTracker_ReloadRestoresState(t *testing.T) {
	f := newTrackerFixture()
	ts := f.tracker(t)

	name := "Jordan"
	ts.UpdateProfile(models.ProfileUpdate{Name: &name})
	ts.AddWaterIntake(1.2)
	ts.AddSleepEntry(models.SleepEntry{Date: "2024-03-01", HoursSlept: 6.5, RestTime: "00:00", WakeUpTime: "06:30"})
	ts.AddMeal(models.MealInput{Name: "Salad", Calories: 200, MealType: models.MealLunch})
	ts.AddWorkout(models.WorkoutInput{Name: "Run", Duration: 25, Intensity: models.IntensityMedium, MuscleGroups: []string{"cardiovascular"}})

	reloaded := f.tracker(t)

	assert.Equal(t, ts.Profile(), reloaded.Profile())
	assert.Equal(t, ts.SleepEntries(), reloaded.SleepEntries())
	assert.Equal(t, ts.WaterEntries(), reloaded.WaterEntries())
	assert.Equal(t, ts.Meals(), reloaded.Meals())
	assert.Equal(t, ts.Workouts(), reloaded.Workouts())
}

func TestTracker_WriteFailureKeepsMemoryState(t *testing.T) {
	f := newTrackerFixture()
	ts := f.tracker(t)
	f.store.SetErr = testutil.ErrInjected

	entry := ts.AddWaterIntake(0.4)

	assert.Equal(t, 0.4, entry.Amount)
	assert.Equal(t, entry, ts.WaterEntries()[0])
	assert.Equal(t, 1, f.logger.Count("error"))
}

func TestTracker_Summary(t *testing.T) {
	f := newTrackerFixture()
	ts := f.tracker(t)

	ts.AddWaterIntake(1)
	s := ts.Summary()

	assert.Equal(t, "2024-03-01", s.Date)
	assert.Equal(t, models.BMINormal, s.BMICategory)
	assert.Equal(t, 1.0, s.WaterToday)
	assert.InDelta(t, 73.2*0.033, s.WaterTarget, 1e-9)
}

func TestTracker_CorruptDocumentDoesNotStopPersistence(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Storage: structures.StorageConfig{Driver: "file", Dir: dir, Compress: true},
		Tracker: structures.TrackerConfig{SleepLogLimit: models.MaxSleepEntries},
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyMeals+".dat"), []byte("garbage"), 0644))
	clock := testutil.NewFakeClock(testNow)

	open := func() (TrackerServiceInterface, func()) {
		compressor, err := storage.NewCompressor(conf)
		require.NoError(t, err)
		store, cleanup, err := storage.NewStoreProvider(conf, compressor, testutil.NewMockCache(), &testutil.MockLogger{}, testutil.NewMockMetrics())
		require.NoError(t, err)
		return NewTrackerService(conf, store, clock, &testutil.MockLogger{}, testutil.NewMockMetrics()), cleanup
	}

	ts, cleanup := open()
	assert.Equal(t, models.DefaultMeals(), ts.Meals())
	ts.AddWaterIntake(0.5)
	cleanup()

	reloaded, cleanup := open()
	defer cleanup()
	assert.Equal(t, models.WaterEntry{Date: "2024-03-01", Amount: 0.5}, reloaded.WaterEntries()[0])
}
