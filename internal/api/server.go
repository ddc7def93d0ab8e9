package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"cafeteria-api/docs"
	v1 "cafeteria-api/internal/api/handler/v1"
	"cafeteria-api/internal/api/middleware"
	"cafeteria-api/internal/config"
	"cafeteria-api/internal/repository"
	"cafeteria-api/internal/repository/dao"
	"cafeteria-api/internal/service"
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

	userSvc := s.initUserService(db)
	authHandler := s.initAuthHandler(db, userSvc)
	userHandler := v1.NewUserHandler(userSvc)
	menuHandler := s.initMenuHandler(db)
	bookingHandler := s.initBookingHandler(db, userSvc)
	salesHandler := s.initSalesHandler(db)
	s.MountHandlers(userSvc, authHandler, userHandler, menuHandler, bookingHandler, salesHandler)

	return s
}

func (s *Server) initUserService(db *gorm.DB) *service.UserService {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)

	return service.NewUserService(repo)
}

func (s *Server) initAuthHandler(db *gorm.DB, userSvc *service.UserService) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(s.Config.API, svc, userSvc)
}

func (s *Server) initMenuHandler(db *gorm.DB) *v1.MenuHandler {
	menuDAO := dao.NewMenuDAO(db)
	repo := repository.NewMenuRepository(menuDAO)
	svc := service.NewMenuService(repo)

	return v1.NewMenuHandler(svc)
}

func (s *Server) initBookingHandler(db *gorm.DB, userSvc *service.UserService) *v1.BookingHandler {
	tokenDAO := dao.NewTokenDAO(db)
	repo := repository.NewTokenRepository(tokenDAO)
	svc := service.NewBookingService(repo)

	return v1.NewBookingHandler(svc, userSvc)
}

func (s *Server) initSalesHandler(db *gorm.DB) *v1.SalesHandler {
	salesDAO := dao.NewSalesDAO(db)
	repo := repository.NewSalesRepository(salesDAO)
	svc := service.NewSalesService(repo)

	return v1.NewSalesHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	userSvc *service.UserService,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	menuHandler *v1.MenuHandler,
	bookingHandler *v1.BookingHandler,
	salesHandler *v1.SalesHandler,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, verifyJWT)
	{
		users.GET("/auth/admin", authHandler.HandleAdminCheck)
		users.GET("/users/:userID", userHandler.HandleGetUser)
		users.GET("/menus/active", menuHandler.HandleGetActiveMenu)
		users.POST("/bookings", bookingHandler.HandleBookMeal)
		users.GET("/bookings", bookingHandler.HandleGetMyTokens)
	}

	admins := s.Router.Group(basePath, verifyJWT, middleware.RequireAdmin(userSvc))
	{
		admins.GET("/menus", menuHandler.HandleGetMenus)
		admins.POST("/menus", menuHandler.HandleScheduleMenu)
		admins.POST("/menus/:menuID/activate", menuHandler.HandleActivateMenu)
		admins.GET("/menus/:menuID/reuse", menuHandler.HandleReuseMenu)
		admins.GET("/menus/:menuID/tokens", bookingHandler.HandleGetMenuTokens)
		admins.GET("/items", menuHandler.HandleListMenuItems)
		admins.POST("/sales/offline", salesHandler.HandleRecordOfflineSale)
		admins.GET("/sales/today", salesHandler.HandleTodaysSales)
		admins.GET("/sales/analytics", salesHandler.HandleAnalytics)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Cafeteria API"
	docs.SwaggerInfo.Description = "Cafeteria ordering and management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
