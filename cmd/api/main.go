// @title Cadence API
// @description API for the N-day challenge app "Cadence"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"time"

	"github.com/limbo/cadence/internal/api"
	"github.com/limbo/cadence/internal/events"
	"github.com/limbo/cadence/internal/repository"
	"github.com/limbo/cadence/internal/service"
	"github.com/limbo/cadence/pkg/cleanup"
	"github.com/limbo/cadence/pkg/config"
	jwtservice "github.com/limbo/cadence/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	challengeCfg := service.ChallengeConfig{
		TotalDays:    cfg.GetInt("CHALLENGE_TOTAL_DAYS", 30),
		Cooldown:     cfg.GetDuration("CHALLENGE_COOLDOWN", time.Hour*20),
		StreakWindow: cfg.GetDuration("STREAK_WINDOW", time.Hour*36),
	}
	publisher := events.NewRedisPublisher(events.RedisCfg{
		Addr:     cfg.GetString("REDIS_ADDR"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	challengeService := service.NewChallengeService(repository.NewChallengeRepo(&dbCfg), publisher, challengeCfg)
	serv := api.New(&api.ServicesList{
		UserService:      userService,
		ChallengeService: challengeService,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
		RateLimiter:      api.NewRateLimiter(cfg.GetInt("RATE_LIMIT_PER_MINUTE", 120), 120),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
