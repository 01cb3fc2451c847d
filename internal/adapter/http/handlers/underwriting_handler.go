package handlers

import (
	"net/http"

	request "insurance_quotes/internal/adapter/http/dto/request"
	response "insurance_quotes/internal/adapter/http/dto/response"
	"insurance_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UnderwritingHandler serves the policy-management REST API used by underwriters.
type UnderwritingHandler struct {
	usecase usecase.IUnderwritingUseCase
}

func NewUnderwritingHandler(uc usecase.IUnderwritingUseCase) *UnderwritingHandler {
	return &UnderwritingHandler{usecase: uc}
}

// ListRequests godoc
// @Summary      List quote requests
// @Description  Lists every request, or only those whose current status matches.
// @Tags         underwriting
// @Produce      json
// @Param        status  query     string  false  "Current status, e.g. REQUEST_SUBMITTED"
// @Success      200     {array}   response.QuoteRequestResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /quote-requests [get]
func (h *UnderwritingHandler) ListRequests(c *gin.Context) {
	qs, err := h.usecase.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequests(qs))
}

// GetRequest godoc
// @Summary      Get a quote request
// @Tags         underwriting
// @Produce      json
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quote-requests/{id} [get]
func (h *UnderwritingHandler) GetRequest(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// RespondToRequest godoc
// @Summary      Accept or reject a submitted request
// @Description  Accepting requires the quote terms.
// @Tags         underwriting
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Request id"
// @Param        body  body      request.QuoteResponseRequest  true  "Underwriter response"
// @Success      200   {object}  response.QuoteRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/response [patch]
func (h *UnderwritingHandler) RespondToRequest(c *gin.Context) {
	var payload request.QuoteResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	quote, err := payload.ResolveQuote()
	if err != nil {
		abortWith(c, errMissingTerms)
		return
	}

	q, err := h.usecase.RespondToRequest(c.Request.Context(), c.Param("id"), *payload.Accepted, quote)
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// GetPolicy godoc
// @Summary      Get a policy
// @Tags         policies
// @Produce      json
// @Param        id   path      string  true  "Policy id"
// @Success      200  {object}  response.PolicyResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /policies/{id} [get]
func (h *UnderwritingHandler) GetPolicy(c *gin.Context) {
	p, err := h.usecase.GetPolicy(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(p))
}
