package models

type NotificationType string

const (
	NotificationWater     NotificationType = "water"
	NotificationSleep     NotificationType = "sleep"
	NotificationWorkout   NotificationType = "workout"
	NotificationNutrition NotificationType = "nutrition"
	NotificationGeneral   NotificationType = "general"
)

type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	// Timestamp is the creation time in Unix milliseconds.
	Timestamp int64            `json:"timestamp"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
}
