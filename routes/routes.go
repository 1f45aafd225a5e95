package routes

import (
	"alwafi_go/controllers"
	"alwafi_go/middleware"
	"alwafi_go/models"
	"alwafi_go/services"
	"alwafi_go/storage"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, st *storage.StorageService, archive *services.LogArchiveService, health *services.HealthService) {
	authController := &controllers.AuthController{}
	programController := &controllers.ProgramController{}
	userController := controllers.NewUserController()
	fineController := controllers.NewFineController()
	levelController := controllers.NewLevelController(st)
	classController := controllers.NewClassController(st)
	homeworkController := controllers.NewHomeworkController(st)
	announcementController := controllers.NewAnnouncementController(st)
	notificationController := controllers.NewNotificationController()
	logController := controllers.NewLogController(archive)
	healthController := controllers.NewHealthController(health)

	api := app.Group("/api")

	// Health (no auth)
	api.Get("/health", healthController.GetHealthStatus)

	// Public program pages
	public := api.Group("/public")
	public.Get("/program", programController.GetProgramInfo)
	public.Get("/program/schedules", programController.GetSchedules)
	public.Get("/program/calendar", programController.GetCalendar)

	// Authentication routes (no middleware)
	auth := api.Group("/auth")
	auth.Post("/login", authController.Login)
	auth.Post("/signup", authController.SignUp)
	auth.Get("/profile", middleware.JWTMiddleware(), authController.GetProfile)

	// Protected routes (require authentication)
	protected := api.Group("/", middleware.JWTMiddleware())

	protected.Get("/profile", authController.GetProfile)
	protected.Put("/profile", authController.UpdateProfile)
	protected.Put("/profile/password", authController.ChangePassword)
	protected.Post("/auth/logout", authController.Logout)

	// Onboarding: a student picks their level once
	protected.Post("/onboarding/level", userController.SelectLevel)

	// Program pages for signed-in users
	program := protected.Group("/program")
	program.Get("/", programController.GetProgramInfo)
	program.Get("/schedules", programController.GetSchedules)
	program.Get("/calendar", programController.GetCalendar)

	// Level catalog with admin overrides applied
	levels := protected.Group("/levels")
	levels.Get("/", levelController.GetLevels)
	levels.Get("/:levelId", levelController.GetLevel)
	levels.Put("/:levelId/config", middleware.RequireAdminOrDev(), levelController.SaveLevelOverride)
	levels.Delete("/:levelId/config", middleware.RequireAdminOrDev(), levelController.ResetLevelOverride)

	// Announcements per level+subject
	levels.Get("/:levelId/announcements", announcementController.GetAnnouncements)
	levels.Post("/:levelId/announcements", middleware.RequireRole(models.RoleTeacher, models.RoleAdmin, models.RoleDev), announcementController.PostAnnouncement)
	levels.Delete("/:levelId/announcements/:announcementId", middleware.RequireRole(models.RoleTeacher, models.RoleAdmin, models.RoleDev), announcementController.DeleteAnnouncement)

	// Class rosters for staff
	classes := protected.Group("/classes", middleware.RequireStaff())
	classes.Get("/my", classController.GetMyClasses)
	classes.Get("/:levelId/roster", classController.GetRoster)

	// Teacher display filters
	protected.Put("/teacher/filters", middleware.RequireRole(models.RoleTeacher), userController.UpdateTeacherFilters)

	// User management (admin pages)
	users := protected.Group("/users", middleware.RequireAdminOrDev())
	users.Get("/", userController.GetUsers)
	users.Get("/:id", userController.GetUser)
	users.Patch("/:id/role", userController.UpdateUserRole)
	users.Patch("/:id/level", userController.UpdateUserLevel)
	users.Patch("/:id/department", userController.UpdateUserDepartment)
	users.Delete("/:id", userController.DeleteUser)

	// Fines
	fines := protected.Group("/fines")
	fines.Get("/my", fineController.GetMyFines)
	fines.Get("/overview", middleware.RequireAdminOrDev(), fineController.GetFinesOverview)
	fines.Get("/export", middleware.RequireAdminOrDev(), fineController.ExportFines)
	fines.Get("/student/:id", middleware.RequireAdminOrDev(), fineController.GetStudentFines)
	fines.Post("/student/:id", middleware.RequireStaff(), fineController.IssueFine)
	fines.Patch("/student/:id/:fineId/paid", middleware.RequireAdminOrDev(), fineController.ToggleFinePaid)
	fines.Delete("/student/:id/:fineId", middleware.RequireAdminOrDev(), fineController.RemoveFine)

	// Homework submissions (students)
	homework := protected.Group("/homework")
	homework.Get("/my", homeworkController.GetMyHomework)
	homework.Post("/", homeworkController.SubmitHomework)
	homework.Delete("/:submissionId", homeworkController.DeleteHomework)

	// Notifications
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationController.GetNotifications)
	notifications.Get("/unread-count", notificationController.GetUnreadCount)
	notifications.Post("/", middleware.RequireAdminOrDev(), notificationController.CreateNotification)
	notifications.Patch("/mark-all-read", notificationController.MarkAllAsRead)
	notifications.Patch("/:id/read", notificationController.MarkAsRead)
	notifications.Delete("/:id", notificationController.DeleteNotification)

	// Audit action logs (bag-backed)
	protected.Get("/action-log", middleware.RequireAdminOrDev(), logController.GetMyActionLog)
	protected.Get("/action-log/:id", middleware.RequireRole(models.RoleDev), logController.GetUserActionLog)

	// Activity log management
	logs := protected.Group("/logs", middleware.RequireAdminOrDev())
	logs.Get("/", logController.GetLogs)
	logs.Get("/export", logController.ExportLogs)
	logs.Get("/archives", logController.GetArchives)
	logs.Get("/archives/:id/download", logController.DownloadArchive)
	logs.Post("/flush-cache", logController.FlushCachedLogs)
	logs.Delete("/old", logController.DeleteOldLogs)
	logs.Get("/:id", logController.GetLog)
}
