package routes

import (
	"insurance_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuoteRequests = "/quote-requests"
)

func addCustomerQuoteRoutes(rg *gin.RouterGroup, h *handlers.CustomerQuoteHandler) {
	requests := rg.Group(PathQuoteRequests)
	{
		requests.POST("", h.SubmitRequest)
		requests.GET("/:id", h.GetRequest)
		requests.PATCH("/:id/accept", h.AcceptQuote)
		requests.PATCH("/:id/reject", h.RejectQuote)
	}
}
