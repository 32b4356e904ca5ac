package models

import "time"

// Reminder is the notification a scheduled reminder posts when it fires.
type Reminder struct {
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}

// ReminderInfo describes a live schedule. Exactly one of At and Interval is set.
type ReminderInfo struct {
	ID       string        `json:"id"`
	Reminder Reminder      `json:"reminder"`
	At       string        `json:"at,omitempty"`
	Interval time.Duration `json:"interval,omitempty"`
	NextFire time.Time     `json:"nextFire"`
}
