package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Pravhesh/GrievAI/internal/adapter/forwarder"
	"github.com/Pravhesh/GrievAI/internal/adapter/http/handler"
	"github.com/Pravhesh/GrievAI/internal/adapter/http/middleware"
	"github.com/Pravhesh/GrievAI/internal/usecase"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	ClassifyUC     usecase.ClassifyUsecase
	Notifier       handler.NotificationSender
	RPCForwarder   *forwarder.RPCForwarder
	RedisClient    *redis.Client
	AllowedOrigins []string
	Logger         *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps Deps) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS(deps.AllowedOrigins))

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.RedisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Classification endpoints
	classifyHandler := handler.NewClassifyHandler(deps.ClassifyUC)
	router.POST("/classify", classifyHandler.ClassifyText)
	router.POST("/classify_image", classifyHandler.ClassifyImage)

	// Notification dispatch
	notifyHandler := handler.NewNotifyHandler(deps.Notifier)
	router.POST("/notify", notifyHandler.Notify)

	// JSON-RPC passthrough
	rpcHandler := handler.NewRPCHandler(deps.RPCForwarder, deps.Logger)
	router.POST("/rpc", rpcHandler.Forward)

	return router
}
