package router

import (
	"net/http"
	"time"

	"github.com/kamrul397/m10-payBill-server/internal/config"
	"github.com/kamrul397/m10-payBill-server/internal/handler"
	"github.com/kamrul397/m10-payBill-server/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine, middleware chain and all routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestLogger(),
		gin.Recovery(),
		middleware.Metrics(),
	)

	// trusted caller origins come from configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "PayBill server running")
	})

	billHandler := handler.NewBillHandler(db)
	r.GET("/bills", billHandler.ListBills)
	r.GET("/bills/:id", billHandler.GetBill)
	r.GET("/categories", billHandler.ListCategories)

	paymentHandler := handler.NewPaymentHandler(db)
	r.POST("/my-bills", paymentHandler.CreatePayment)
	r.GET("/my-bills", paymentHandler.ListPayments)
	r.GET("/my-bills/export", paymentHandler.ExportPayments)
	r.PATCH("/my-bills/:id", paymentHandler.UpdatePayment)
	r.DELETE("/my-bills/:id", paymentHandler.DeletePayment)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
