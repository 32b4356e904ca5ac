package controllers

import (
	"fitviz/internal/services"
	"fitviz/internal/storage/interfaces"
	"fmt"
	"net/http"
	"time"
)

type HealthController struct {
	notifications services.NotificationServiceInterface
	store         interfaces.StoreInterface
	startTime     time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Storage       string  `json:"storage"`
	Unread        int     `json:"unread_notifications"`
}

// degradable is implemented by stores that can fall back to memory.
type degradable interface {
	Degraded() bool
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Storage:       "durable",
		Unread:        hc.notifications.UnreadCount(),
	}
	if d, ok := hc.store.(degradable); ok && d.Degraded() {
		resp.Status = "degraded"
		resp.Storage = "memory"
	}

	writeJSON(w, http.StatusOK, resp)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(notifications services.NotificationServiceInterface, store interfaces.StoreInterface) *HealthController {
	return &HealthController{
		notifications: notifications,
		store:         store,
		startTime:     time.Now(),
	}
}
