package server

import (
	"sentiment-service/internal/handler"
	"sentiment-service/internal/health"
	"sentiment-service/internal/metrics"
	"sentiment-service/internal/repository"
	"sentiment-service/internal/sentiment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceVersion = "1.0.0"

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

// NewServer wires the router: CORS and metrics middleware, then the item,
// predict and health handlers over the given store and model holder.
func NewServer(itemRepo repository.ItemRepository, model *sentiment.Holder, logger *zap.Logger) *Server {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(metrics.Middleware())

	s := &Server{
		router: router,
		logger: logger,
	}

	s.setupRoutes(itemRepo, model)

	return s
}

func (s *Server) setupRoutes(itemRepo repository.ItemRepository, model *sentiment.Holder) {
	checker := health.NewChecker(itemRepo, model, s.logger)
	healthHandler := handler.NewHealthHandler(checker, serviceVersion)
	itemHandler := handler.NewItemHandler(itemRepo, s.logger)
	predictHandler := handler.NewPredictHandler(model, s.logger)

	s.router.GET("/", healthHandler.Root)
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/metrics", metrics.Handler())

	s.router.POST("/items", itemHandler.CreateItem)
	s.router.GET("/items", itemHandler.ListItems)
	s.router.GET("/items/:id", itemHandler.GetItemByID)

	s.router.POST("/predict", predictHandler.Predict)
	s.router.GET("/model/info", predictHandler.ModelInfo)
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
