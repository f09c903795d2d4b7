package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the health check and the Telegram webhook endpoint.
func NewRouter(webhook *TelegramWebhook) *gin.Engine {
	router := gin.Default()

	router.Use(requestid.New())
	// Allow CORS for all origins
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	router.GET("/", HealthCheck)
	router.POST("/telegram/webhook", webhook.VerifySecret, webhook.TelegramWebhook)

	return router
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
