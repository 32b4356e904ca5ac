package internal

import (
	"fitviz/internal/controllers"
	"fitviz/internal/providers"
	"net/http"
)

func InitRoutes(trackerController *controllers.TrackerController, notificationController *controllers.NotificationController, reminderController *controllers.ReminderController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/profile", http.HandlerFunc(trackerController.GetProfile))
	routers.Post("/profile", http.HandlerFunc(trackerController.UpdateProfile))
	routers.Get("/sleep", http.HandlerFunc(trackerController.GetSleep))
	routers.Post("/sleep", http.HandlerFunc(trackerController.AddSleep))
	routers.Get("/water", http.HandlerFunc(trackerController.GetWater))
	routers.Post("/water", http.HandlerFunc(trackerController.AddWater))
	routers.Get("/meals", http.HandlerFunc(trackerController.GetMeals))
	routers.Post("/meals", http.HandlerFunc(trackerController.AddMeal))
	routers.Get("/workouts", http.HandlerFunc(trackerController.GetWorkouts))
	routers.Post("/workouts", http.HandlerFunc(trackerController.AddWorkout))
	routers.Get("/summary", http.HandlerFunc(trackerController.GetSummary))

	routers.Get("/notifications", http.HandlerFunc(notificationController.GetNotifications))
	routers.Post("/notifications", http.HandlerFunc(notificationController.AddNotification))
	routers.Post("/notifications/read", http.HandlerFunc(notificationController.MarkRead))
	routers.Post("/notifications/clear", http.HandlerFunc(notificationController.Clear))

	routers.Get("/reminders", http.HandlerFunc(reminderController.GetReminders))
	routers.Post("/reminders", http.HandlerFunc(reminderController.AddReminder))
	routers.Post("/reminders/cancel", http.HandlerFunc(reminderController.CancelReminder))
	return routers
}
