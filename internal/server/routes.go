package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Init swagger doc
	_ "github.com/prateekh777/AIInterviewV4-0/docs"

	"github.com/prateekh777/AIInterviewV4-0/internal/auth"
	"github.com/prateekh777/AIInterviewV4-0/internal/controller/application"
	"github.com/prateekh777/AIInterviewV4-0/internal/controller/job"
	"github.com/prateekh777/AIInterviewV4-0/internal/controller/savedjob"
	"github.com/prateekh777/AIInterviewV4-0/internal/controller/user"
	"github.com/prateekh777/AIInterviewV4-0/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	registerValidations()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(s.Log))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(s.Cfg.RateLimitRPS))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.Cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	authHandler := auth.NewLocalAuthHandler(s.Store, s.Log)
	jobController := job.NewJobController(s.Store)
	applicationController := application.NewApplicationController(s.Store)
	savedJobController := savedjob.NewSavedJobController(s.Store)
	userController := user.NewUserController(s.Store)

	r.GET("/", s.helloHandler)
	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		authRoute := api.Group("/auth")
		{
			authRoute.POST("register", authHandler.RegisterHandler)
			authRoute.POST("login", authHandler.LoginHandler)
		}

		api.GET("/user", authHandler.CurrentUserHandler)

		jobRoute := api.Group("/jobs")
		{
			jobRoute.GET("", jobController.GetJobs)
			jobRoute.POST("", jobController.CreateJobHandler)
			jobRoute.GET(":id", jobController.GetJobByID)
			jobRoute.PATCH(":id", jobController.EditJobHandler)

			jobRoute.POST(":id/apply", applicationController.ApplyHandler)
			jobRoute.GET(":id/applications", applicationController.ListByJobHandler)

			jobRoute.POST(":id/save", savedJobController.SaveHandler)
			jobRoute.DELETE(":id/save", savedJobController.UnsaveHandler)
			jobRoute.GET(":id/saved", savedJobController.IsSavedHandler)
		}

		userRoute := api.Group("/users")
		{
			userRoute.PATCH(":id", userController.EditProfileHandler)
			userRoute.GET(":id/saved-jobs", savedJobController.ListHandler)
			userRoute.GET(":id/applications", applicationController.ListByUserHandler)
		}

		api.PATCH("/applications/:id/status", applicationController.UpdateStatusHandler)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// helloHandler handle request by return service banner message
func (s *Server) helloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Job board API"})
}

func (s *Server) healthHandler(c *gin.Context) {
	health := s.Store.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}
