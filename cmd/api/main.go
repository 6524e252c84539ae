package main

import (
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/db"
	httpadapter "github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/handlers"
	httpmiddleware "github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/middleware"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/app/service"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/app/token"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	userRepository := dbadapter.NewUserRepository(db)
	boardRepository := dbadapter.NewBoardRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	commentRepository := dbadapter.NewCommentRepository(db)

	authService := service.NewAuthService(userRepository, tokens)
	boardService := service.NewBoardService(boardRepository, taskRepository, userRepository)
	taskService := service.NewTaskService(taskRepository, boardRepository, userRepository)
	commentService := service.NewCommentService(commentRepository, taskRepository, boardRepository)
	dashboardService := service.NewDashboardService(taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, tokens, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(db),
		Auth:      handlers.NewAuthHandler(authService),
		Boards:    handlers.NewBoardHandler(boardService),
		Tasks:     handlers.NewTaskHandler(taskService),
		Comments:  handlers.NewCommentHandler(commentService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
