package controllers

import (
	"errors"
	"fitviz/internal/models"
	"fitviz/internal/providers"
	"fitviz/internal/reminders/interfaces"
	"net/http"
	"time"
)

type ReminderController struct {
	logger    providers.Logger
	scheduler interfaces.SchedulerInterface
}

func NewReminderController(logger providers.Logger, scheduler interfaces.SchedulerInterface) *ReminderController {
	return &ReminderController{
		logger:    logger,
		scheduler: scheduler,
	}
}

func (rc *ReminderController) GetReminders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rc.scheduler.List())
}

func (rc *ReminderController) AddReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.check(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	info, err := rc.schedule(&req)
	if err != nil {
		rc.logger.Warnf(providers.TypeReminder, "Reminder %q rejected: %s", req.Title, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, info)
}

func (rc *ReminderController) schedule(req *reminderRequest) (models.ReminderInfo, error) {
	if req.At != "" {
		return rc.scheduler.ScheduleDaily(req.At, req.reminder())
	}
	return rc.scheduler.ScheduleEvery(time.Duration(req.IntervalMinutes)*time.Minute, req.reminder())
}

func (rc *ReminderController) CancelReminder(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, errors.New("id is required"))
		return
	}
	if !rc.scheduler.Cancel(id) {
		writeError(w, http.StatusNotFound, errors.New("reminder not found"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
