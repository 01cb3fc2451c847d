package routes

import (
	"insurance_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPolicies = "/policies"
)

func addUnderwritingRoutes(rg *gin.RouterGroup, h *handlers.UnderwritingHandler) {
	requests := rg.Group(PathQuoteRequests)
	{
		requests.GET("", h.ListRequests)
		requests.GET("/:id", h.GetRequest)
		requests.PATCH("/:id/response", h.RespondToRequest)
	}

	policies := rg.Group(PathPolicies)
	{
		policies.GET("/:id", h.GetPolicy)
	}
}
