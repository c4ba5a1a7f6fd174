package routes

import (
	"engclin_tse/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProfiles   = "/profiles"
	PathStandards  = "/standards"
	PathExecutions = "/executions"
	PathOrders     = "/orders"
)

func addProfileRoutes(rg *gin.RouterGroup, h *handlers.ProfileHandler) {
	profiles := rg.Group(PathProfiles)
	{
		profiles.GET("", h.ListProfiles)
		profiles.POST("", h.CreateProfile)
		profiles.GET("/:id", h.GetProfile)
		profiles.PUT("/:id", h.UpdateProfile)
	}
}

func addStandardRoutes(rg *gin.RouterGroup, h *handlers.StandardHandler) {
	standards := rg.Group(PathStandards)
	{
		standards.GET("", h.ListStandards)
		standards.POST("", h.CreateStandard)
		standards.GET("/:id", h.GetStandard)
		standards.PUT("/:id", h.UpdateStandard)
	}
}

func addExecutionRoutes(rg *gin.RouterGroup, h *handlers.ExecutionHandler, ch *handlers.CertificateHandler) {
	executions := rg.Group(PathExecutions)
	{
		executions.POST("/draft", h.CreateDraft)
		executions.POST("/evaluate", h.Evaluate)
		executions.POST("", h.SaveExecution)
		executions.GET("/:id", h.GetExecution)
		executions.GET("/:id/certificate", ch.GetExecutionCertificate)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.ExecutionHandler, ch *handlers.CertificateHandler) {
	orders := rg.Group(PathOrders + "/:order_id")
	{
		orders.GET("/executions", h.ListOrderExecutions)
		orders.GET("/executions/latest", h.GetLatestOrderExecution)
		orders.GET("/certificate", ch.GetOrderCertificate)
		orders.GET("/certificate/document", ch.DownloadOrderCertificate)
	}
}
