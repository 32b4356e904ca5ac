package services

import (
	"bytes"
	"fitviz/internal/providers"
	"fitviz/internal/storage/interfaces"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Durable storage keys, one JSON document each.
const (
	KeyProfile       = "userProfile"
	KeySleep         = "sleepData"
	KeyWater         = "waterIntake"
	KeyMeals         = "meals"
	KeyWorkouts      = "workouts"
	KeyNotifications = "fitviz-notifications"
)

var jsonNull = []byte("null")

func newID() string {
	return uuid.NewString()
}

// loadDocument decodes key into a T. A missing, unreadable, malformed or
// null document yields seed() instead; the failure is logged, never returned.
func loadDocument[T any](store interfaces.StoreInterface, logger providers.Logger, key string, seed func() T) T {
	raw, ok, err := store.Get(key)
	if err != nil {
		logger.Warnf(providers.TypeStorage, "Read %s failed: %s; using defaults", key, err)
		return seed()
	}
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return seed()
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warnf(providers.TypeStorage, "Malformed %s document: %s; using defaults", key, err)
		return seed()
	}
	return v
}

func saveDocument(store interfaces.StoreInterface, logger providers.Logger, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorf(providers.TypeStorage, "Encode %s: %s", key, err)
		return
	}
	if err := store.Set(key, data); err != nil {
		logger.Errorf(providers.TypeStorage, "Persist %s: %s", key, err)
	}
}
