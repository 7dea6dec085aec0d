package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pureHeartAPI/handlers"
	"pureHeartAPI/internal/repository"
	"pureHeartAPI/internal/repository/memory"
	"pureHeartAPI/internal/repository/postgres"
	"pureHeartAPI/middleware"
	"pureHeartAPI/services"
)

// recordStore is what both store backends provide: one repository per record
// family.
type recordStore interface {
	Users() repository.UserRepository
	UrgeLogs() repository.UrgeLogRepository
	Tasks() repository.TaskRepository
	Partnerships() repository.PartnershipRepository
	DailyContent() repository.DailyContentRepository
}

var (
	dbPool              *pgxpool.Pool
	userService         *services.UserService
	streakService       *services.StreakService
	urgeLogService      *services.UrgeLogService
	taskService         *services.TaskService
	partnershipService  *services.PartnershipService
	dailyContentService *services.DailyContentService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	store := openStore()

	locks := services.NewEntityLocks()
	userService = services.NewUserService(store.Users(), store.Partnerships(), locks)
	streakService = services.NewStreakService(store.Users(), store.UrgeLogs(), locks)
	urgeLogService = services.NewUrgeLogService(store.UrgeLogs(), store.Users())
	taskService = services.NewTaskService(store.Tasks(), store.Users(), locks)
	partnershipService = services.NewPartnershipService(store.Partnerships(), store.Users(), locks)
	dailyContentService = services.NewDailyContentService(store.DailyContent())

	middleware.InitPrometheus()
}

// openStore picks the backend: Postgres when DATABASE_URL is set, otherwise
// the seeded in-memory store with its artificial latency.
func openStore() recordStore {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		latency := 250 * time.Millisecond
		if raw := os.Getenv("STORE_LATENCY_MS"); raw != "" {
			ms, err := strconv.Atoi(raw)
			if err != nil {
				log.Fatal("Invalid STORE_LATENCY_MS:", raw)
			}
			latency = time.Duration(ms) * time.Millisecond
		}

		store := memory.NewStore(latency)
		if err := store.Seed(); err != nil {
			log.Fatal("Failed to seed in-memory store:", err)
		}
		log.Printf("Using in-memory store (latency %s)", latency)
		return store
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	store := postgres.NewStore(dbPool)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}

	log.Println("Successfully connected to Postgres")
	return store
}

func main() {
	defer func() {
		if dbPool != nil {
			log.Println("Closing database connection pool...")
			dbPool.Close()
		}
	}()

	userHandler := handlers.NewUserHandler(userService, streakService)
	urgeLogHandler := handlers.NewUrgeLogHandler(streakService, urgeLogService)
	taskHandler := handlers.NewTaskHandler(taskService)
	partnershipHandler := handlers.NewPartnershipHandler(partnershipService)
	progressHandler := handlers.NewProgressHandler(userService, urgeLogService)
	dailyContentHandler := handlers.NewDailyContentHandler(dailyContentService)

	r := mux.NewRouter()

	limiterCtx, limiterCancel := context.WithCancel(context.Background())
	defer limiterCancel()

	limiter := middleware.NewRateLimiter(5, 30)
	go limiter.CleanupLoop(limiterCtx)

	r.Use(limiter.Middleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if dbPool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := dbPool.Ping(ctx); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "pureHeart-api"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/users", userHandler.ListUsers).Methods("GET")
	api.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.GetUser).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/points", userHandler.AddPoints).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/streak/advance", userHandler.AdvanceDailyStreak).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/streak/reset", userHandler.ResetStreak).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/available-partners", userHandler.GetAvailablePartners).Methods("GET")

	api.HandleFunc("/urge-logs", urgeLogHandler.CreateUrgeLog).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/urge-logs", urgeLogHandler.ListUserLogs).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/urge-logs/summary", urgeLogHandler.SummarizeUserLogs).Methods("GET")

	api.HandleFunc("/users/{id:[0-9]+}/progress", progressHandler.GetProgress).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/milestones", progressHandler.GetMilestones).Methods("GET")

	api.HandleFunc("/tasks", taskHandler.ListTasks).Methods("GET")
	api.HandleFunc("/tasks/{id:[0-9]+}/complete", taskHandler.CompleteTask).Methods("POST")

	api.HandleFunc("/partnerships/current", partnershipHandler.GetCurrent).Methods("GET")
	api.HandleFunc("/partnerships/request", partnershipHandler.RequestPartnership).Methods("POST")
	api.HandleFunc("/partnerships/{id:[0-9]+}/accept", partnershipHandler.AcceptPartnership).Methods("POST")
	api.HandleFunc("/partnerships/check-in", partnershipHandler.CheckIn).Methods("POST")
	api.HandleFunc("/partnerships/end", partnershipHandler.EndPartnership).Methods("POST")
	api.HandleFunc("/partnerships/messages", partnershipHandler.SendMessage).Methods("POST")
	api.HandleFunc("/partnerships/messages", partnershipHandler.GetMessages).Methods("GET")

	api.HandleFunc("/daily-content/today", dailyContentHandler.GetTodayContent).Methods("GET")
	api.HandleFunc("/daily-content/random", dailyContentHandler.GetRandomContent).Methods("GET")
	api.HandleFunc("/daily-content/{id:[0-9]+}", dailyContentHandler.GetContent).Methods("GET")
	api.HandleFunc("/daily-content", dailyContentHandler.ListContent).Methods("GET")

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorillaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3333"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
