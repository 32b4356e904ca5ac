package controllers

import (
	"fitviz/internal/reminders"
	"fitviz/internal/reminders/interfaces"
	"fitviz/internal/services"
	"fitviz/internal/structures"
	"fitviz/internal/testutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

type env struct {
	store         *testutil.MockStore
	clock         *testutil.FakeClock
	tracker       services.TrackerServiceInterface
	notifications services.NotificationServiceInterface
	scheduler     interfaces.SchedulerInterface
}

func newEnv() *env {
	store := testutil.NewMockStore()
	clock := testutil.NewFakeClock(testNow)
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	conf := &structures.Config{}

	ns := services.NewNotificationService(store, clock, logger, metrics)
	return &env{
		store:         store,
		clock:         clock,
		tracker:       services.NewTrackerService(conf, store, clock, logger, metrics),
		notifications: ns,
		scheduler:     reminders.NewScheduler(conf, clock, logger, metrics, ns),
	}
}

func do(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
