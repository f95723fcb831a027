package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/washera/carwash-scheduler/internal/audit"
	"github.com/washera/carwash-scheduler/internal/cache"
	"github.com/washera/carwash-scheduler/internal/clock"
	"github.com/washera/carwash-scheduler/internal/config"
	domain "github.com/washera/carwash-scheduler/internal/domain/schedule"
	"github.com/washera/carwash-scheduler/internal/handlers"
	infraRepo "github.com/washera/carwash-scheduler/internal/infra/repository"
	"github.com/washera/carwash-scheduler/internal/jobs"
	"github.com/washera/carwash-scheduler/internal/middleware"
	ucSchedule "github.com/washera/carwash-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store cache.Cache,
	clk clock.Clock,
	scheduler *cron.Cron,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewScheduleGormRepository(db)
	engine := domain.NewEngine(scheduleSettings(cfg))

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — SCHEDULE
	// ======================================================
	generateUC := ucSchedule.NewGenerateCustomerSchedule(
		repo,
		engine,
		store,
		auditDispatcher,
	)

	bulkGenerateUC := ucSchedule.NewBulkGenerateSchedules(
		repo,
		engine,
		store,
		auditDispatcher,
	)

	rescheduleUC := ucSchedule.NewRescheduleAppointment(
		repo,
		engine,
		store,
		auditDispatcher,
	)

	rescheduleMissedUC := ucSchedule.NewBulkRescheduleMissed(
		repo,
		engine,
		store,
		auditDispatcher,
	)

	completeUC := ucSchedule.NewCompleteAppointment(
		repo,
		store,
		clk,
		auditDispatcher,
	)

	markMissedUC := ucSchedule.NewMarkAppointmentMissed(
		repo,
		store,
		auditDispatcher,
	)

	cancelUC := ucSchedule.NewCancelAppointment(
		repo,
		store,
		clk,
		auditDispatcher,
	)

	startUC := ucSchedule.NewStartAppointment(
		repo,
		auditDispatcher,
	)

	listByMonthUC := ucSchedule.NewListAppointmentsByMonth(
		repo,
	)

	// ======================================================
	// ⏰ JOBS
	// ======================================================
	if scheduler != nil {
		sweep := jobs.NewMissedSweep(repo, markMissedUC, rescheduleMissedUC, clk, auditDispatcher)
		if err := sweep.Register(scheduler); err != nil {
			log.Fatalf("failed to register missed sweep: %v", err)
		}
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	customerHandler := handlers.NewCustomerHandler(db, repo, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		repo,
		listByMonthUC,
		completeUC,
		markMissedUC,
		cancelUC,
		startUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		generateUC,
		bulkGenerateUC,
		rescheduleUC,
		rescheduleMissedUC,
	)

	capacityHandler := handlers.NewCapacityHandler(repo, engine, store)
	waitListHandler := handlers.NewWaitListHandler(repo, engine, clk, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CUSTOMERS
			// ------------------------------
			secured.GET("/customers", customerHandler.List)
			secured.POST("/customers", customerHandler.Create)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.PATCH("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/miss", appointmentHandler.MarkMissed)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// SCHEDULE (motor)
			// ------------------------------
			secured.POST("/schedule/customers/:id/generate", scheduleHandler.GenerateForCustomer)
			secured.GET("/schedule/customers/:id/feasibility", capacityHandler.Feasibility)
			secured.POST("/schedule/bulk", scheduleHandler.BulkGenerate)
			secured.POST("/schedule/appointments/:id/reschedule", scheduleHandler.Reschedule)
			secured.POST("/schedule/reschedule-missed", scheduleHandler.RescheduleMissed)
			secured.GET("/schedule/integrity", capacityHandler.Integrity)

			// ------------------------------
			// CAPACITY
			// ------------------------------
			secured.GET("/capacity/day/:date", capacityHandler.Day)
			secured.GET("/capacity/day/:date/slots", capacityHandler.DaySlots)
			secured.GET("/capacity/month", capacityHandler.Month)

			// ------------------------------
			// WAIT LIST
			// ------------------------------
			secured.GET("/waitlist", waitListHandler.List)
			secured.POST("/waitlist", waitListHandler.Join)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

// scheduleSettings aplica as sobrescritas de configuração sobre os
// padrões do motor.
func scheduleSettings(cfg *config.Config) domain.Settings {
	s := domain.DefaultSettings()

	if cfg.TotalWashes > 0 {
		s.TotalWashes = cfg.TotalWashes
	}
	if cfg.MinGapDays > 0 {
		s.MinGapDays = cfg.MinGapDays
	}
	if cfg.RescheduleWindowDays > 0 {
		s.RescheduleWindowDays = cfg.RescheduleWindowDays
	}

	return s
}
