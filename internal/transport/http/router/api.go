package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayhub/internal/facade"
	"stayhub/internal/transport/http/handler"
	mdw "stayhub/internal/transport/http/middleware"
)

// NewAPIEngine wires the middleware stack and mounts every resource under
// /api/v1.
func NewAPIEngine(l *zap.Logger, db *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	f := facade.New(db, l)

	api := r.Group("/api/v1")
	handler.NewUserHandler(f).Mount(api)
	handler.NewPlaceHandler(f).Mount(api)
	handler.NewReviewHandler(f).Mount(api)
	handler.NewAmenityHandler(f).Mount(api)

	return r
}
