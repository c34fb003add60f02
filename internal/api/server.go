package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/giveplus/giveplus-api/docs"
	v1 "github.com/giveplus/giveplus-api/internal/api/handler/v1"
	"github.com/giveplus/giveplus-api/internal/api/middleware"
	"github.com/giveplus/giveplus-api/internal/config"
	"github.com/giveplus/giveplus-api/internal/repository"
	"github.com/giveplus/giveplus-api/internal/repository/dao"
	"github.com/giveplus/giveplus-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	associationHandler := s.initAssociationHandler(db)
	campaignHandler := s.initCampaignHandler(db)
	donorHandler := s.initDonorHandler(db)
	donationHandler := s.initDonationHandler(db)
	statsHandler := s.initStatsHandler(db)
	eventHandler := s.initEventHandler(db)
	communicationHandler := s.initCommunicationHandler(db)
	aiCopyHandler := s.initAICopyHandler(db)

	s.MountHandlers(
		authHandler,
		userHandler,
		associationHandler,
		campaignHandler,
		donorHandler,
		donationHandler,
		statsHandler,
		eventHandler,
		communicationHandler,
		aiCopyHandler,
	)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewUserService(repo)

	return v1.NewUserHandler(svc)
}

func (s *Server) initAssociationHandler(db *gorm.DB) *v1.AssociationHandler {
	repo := repository.NewAssociationRepository(dao.NewAssociationDAO(db))
	svc := service.NewAssociationService(repo)

	return v1.NewAssociationHandler(svc)
}

func (s *Server) initCampaignHandler(db *gorm.DB) *v1.CampaignHandler {
	repo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	associationRepo := repository.NewAssociationRepository(dao.NewAssociationDAO(db))
	svc := service.NewCampaignService(repo, associationRepo)

	return v1.NewCampaignHandler(svc)
}

func (s *Server) initDonorHandler(db *gorm.DB) *v1.DonorHandler {
	repo := repository.NewDonorRepository(dao.NewDonorDAO(db))
	svc := service.NewDonorService(repo)

	return v1.NewDonorHandler(svc)
}

func (s *Server) initDonationHandler(db *gorm.DB) *v1.DonationHandler {
	repo := repository.NewDonationRepository(dao.NewDonationDAO(db))
	donorRepo := repository.NewDonorRepository(dao.NewDonorDAO(db))
	svc := service.NewDonationService(repo, donorRepo)

	return v1.NewDonationHandler(svc)
}

func (s *Server) initStatsHandler(db *gorm.DB) *v1.StatsHandler {
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	donorRepo := repository.NewDonorRepository(dao.NewDonorDAO(db))
	donationRepo := repository.NewDonationRepository(dao.NewDonationDAO(db))
	svc := service.NewStatsService(campaignRepo, donorRepo, donationRepo)

	return v1.NewStatsHandler(svc)
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	associationRepo := repository.NewAssociationRepository(dao.NewAssociationDAO(db))
	svc := service.NewEventService(repo, associationRepo)

	return v1.NewEventHandler(svc)
}

func (s *Server) initCommunicationHandler(db *gorm.DB) *v1.CommunicationHandler {
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	svc := service.NewCommunicationService(campaignRepo, service.LogSender{}, s.Config.Communications)

	return v1.NewCommunicationHandler(svc)
}

func (s *Server) initAICopyHandler(db *gorm.DB) *v1.AICopyHandler {
	repo := repository.NewAIPromptRepository(dao.NewAIPromptDAO(db))
	svc := service.NewAICopyService(repo, service.CannedGenerator{})

	return v1.NewAICopyHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	associationHandler *v1.AssociationHandler,
	campaignHandler *v1.CampaignHandler,
	donorHandler *v1.DonorHandler,
	donationHandler *v1.DonationHandler,
	statsHandler *v1.StatsHandler,
	eventHandler *v1.EventHandler,
	communicationHandler *v1.CommunicationHandler,
	aiCopyHandler *v1.AICopyHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.POST("/associations", associationHandler.HandleCreateAssociation)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/users/me", userHandler.HandleGetCurrentUser)

		authed.GET("/associations", associationHandler.HandleListAssociations)
		authed.GET("/associations/:associationID", associationHandler.HandleGetAssociation)

		authed.POST("/campaigns", campaignHandler.HandleCreateCampaign)
		authed.GET("/campaigns", campaignHandler.HandleListCampaigns)
		authed.GET("/campaigns/:campaignID", campaignHandler.HandleGetCampaign)
		authed.GET("/campaigns/:campaignID/progress", campaignHandler.HandleGetCampaignProgress)

		authed.POST("/donors", donorHandler.HandleCreateDonor)
		authed.GET("/donors", donorHandler.HandleListDonors)

		authed.POST("/donations", donationHandler.HandleCreateDonation)
		authed.GET("/donations/campaign/:campaignID", donationHandler.HandleGetCampaignDonations)
		authed.GET("/donations/recent", donationHandler.HandleGetRecentDonations)

		authed.GET("/stats", statsHandler.HandleGetStats)

		authed.POST("/events", eventHandler.HandleCreateEvent)
		authed.GET("/events", eventHandler.HandleListEvents)
		authed.POST("/events/:eventID/participants", eventHandler.HandleRegisterParticipant)
		authed.GET("/events/:eventID/participants", eventHandler.HandleListParticipants)

		authed.POST("/communications/sms", communicationHandler.HandleSendSMS)
		authed.POST("/communications/email", communicationHandler.HandleSendEmail)

		authed.POST("/ai/generate", aiCopyHandler.HandleGenerateCopy)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Give Plus API"
	docs.SwaggerInfo.Description = "Donor and campaign management API for nonprofit associations."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
