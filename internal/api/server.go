package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/cadence/internal/service"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	challengeService service.ChallengeServiceI
	jwtService       JWTServiceI
	rateLimiter      *RateLimiter
}

type ServicesList struct {
	UserService      service.UserServiceI
	ChallengeService service.ChallengeServiceI
	JwtService       JWTServiceI
	RateLimiter      *RateLimiter
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		challengeService: servicesOptions.ChallengeService,
		jwtService:       servicesOptions.JwtService,
		rateLimiter:      servicesOptions.RateLimiter,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			if s.rateLimiter != nil {
				r.Use(s.rateLimiter.Middleware)
			}
			r.Delete("/auth/account", s.DeleteAccount)
			r.Get("/challenge/next", s.NextDay)
			r.Get("/challenge/days", s.Days)
			r.Get("/challenge/summary", s.Summary)
			r.Post("/challenge/days/{dayNumber}/complete", s.CompleteDay)
		})
	})
	return http.ListenAndServe(address, s.mx)
}
