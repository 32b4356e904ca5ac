package controllers

import (
	"fitviz/internal/providers"
	"fitviz/internal/services"
	"net/http"
)

type TrackerController struct {
	logger  providers.Logger
	service services.TrackerServiceInterface
}

func NewTrackerController(logger providers.Logger, service services.TrackerServiceInterface) *TrackerController {
	return &TrackerController{
		logger:  logger,
		service: service,
	}
}

func (tc *TrackerController) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tc.service.Profile())
}

func (tc *TrackerController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	update, err := req.toUpdate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, tc.service.UpdateProfile(update))
}

func (tc *TrackerController) GetSleep(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tc.service.SleepEntries())
}

func (tc *TrackerController) AddSleep(w http.ResponseWriter, r *http.Request) {
	var req sleepRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entry, err := req.toEntry()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tc.service.AddSleepEntry(entry)
	tc.logger.Infof(providers.TypePost, "Sleep entry for %s added", entry.Date)
	writeJSON(w, http.StatusCreated, entry)
}

func (tc *TrackerController) GetWater(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tc.service.WaterEntries())
}

func (tc *TrackerController) AddWater(w http.ResponseWriter, r *http.Request) {
	var req waterRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateStruct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, tc.service.AddWaterIntake(req.Amount))
}

func (tc *TrackerController) GetMeals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tc.service.Meals())
}

func (tc *TrackerController) AddMeal(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, tc.service.AddMeal(input))
}

func (tc *TrackerController) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tc.service.Workouts())
}

func (tc *TrackerController) AddWorkout(w http.ResponseWriter, r *http.Request) {
	var req workoutRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, tc.service.AddWorkout(input))
}

func (tc *TrackerController) GetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tc.service.Summary())
}
