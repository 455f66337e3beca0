package main

import (
	"context"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"github.com/bighasbula/ITEENS/internal/api"
	"github.com/bighasbula/ITEENS/internal/database"
	"github.com/bighasbula/ITEENS/internal/service"
	"github.com/bighasbula/ITEENS/internal/service/judge_service"
	"github.com/bighasbula/ITEENS/internal/service/leaderboard_service"
	"github.com/bighasbula/ITEENS/internal/service/problem_service"
	"github.com/bighasbula/ITEENS/internal/service/submission_service"
	"github.com/bighasbula/ITEENS/internal/service/user_service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var (
	apiConfig *api.Api
)

func initDatabasePool() *pgxpool.Pool {
	// get the database url
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		panic("dbURL not found")
	}

	// create a connection pool to the database
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		panic(err)
	}

	return pool
}

func initRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Warn("redis address not found in environment. leaderboard disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warnf("cannot reach redis at %s, leaderboard disabled, %v", addr, err)
		return nil
	}
	return rdb
}

func initUserService(db *database.Queries) *user_service.UserService {
	log.Info("initializing user service")
	us := user_service.UserService{
		DB: db,
	}
	err := us.InitializeUserService()
	if err != nil {
		panic(err)
	}
	return &us
}

func initSubmissionService(
	db *database.Queries,
	us *user_service.UserService,
	lb *leaderboard_service.LeaderboardService,
) *submission_service.SubmissionService {
	log.Info("initializing submission service")
	return &submission_service.SubmissionService{
		DB:                db,
		UserConfig:        us,
		LeaderboardConfig: lb,
	}
}

func initApi(db *database.Queries, rdb *redis.Client) *api.Api {
	log.Info("initializing api config")
	us := initUserService(db)
	log.Info("user service created")

	var lb *leaderboard_service.LeaderboardService
	if rdb != nil {
		lb = &leaderboard_service.LeaderboardService{RDB: rdb}
		log.Info("leaderboard service created")
	}

	ss := initSubmissionService(db, us, lb)
	log.Info("submission service created")

	js := judge_service.NewJudgeService()
	log.Info("judge service created")

	a := api.Api{
		JudgeServiceConfig:       js,
		ProblemServiceConfig:     &problem_service.ProblemService{},
		UserServiceConfig:        us,
		SubmissionServiceConfig:  ss,
		LeaderboardServiceConfig: lb,
	}
	return &a
}

func setup() {
	godotenv.Load()
	pool := initDatabasePool()
	service.InitializeServices(pool)
	rdb := initRedis()
	apiConfig = initApi(database.New(pool), rdb)
}

func setCors(router *chi.Mux) {
	router.Use(
		cors.Handler(
			cors.Options{
				AllowedOrigins:   []string{"https://*", "http://*"},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
				AllowCredentials: false,
				ExposedHeaders:   []string{"Link"},
				MaxAge:           300,
			},
		),
	)
	log.Info("cors options has been set")
}

func main() {
	setup()

	// initialize a new router
	router := chi.NewRouter()
	setCors(router)

	// mount v1 router
	v1router := NewV1Router()
	router.Mount("/v1", v1router)
	log.Info("v1 router has been mounted")

	// find port for the server to start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Warnf("port not found in environment. using default port %s", port)
	}

	// find the address to start the server
	apiAddress := os.Getenv("API_URL") + ":" + port

	log.Info("starting server")
	// create a server object to listen to all requests
	srv := http.Server{
		Handler: router,
		Addr:    apiAddress,
	}
	err := srv.ListenAndServe()
	if err != nil {
		log.Fatalf("Server cannot be started. Error: %v", err)
		return
	}
}
