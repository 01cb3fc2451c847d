package handlers

import (
	"net/http"

	request "insurance_quotes/internal/adapter/http/dto/request"
	response "insurance_quotes/internal/adapter/http/dto/response"
	"insurance_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerQuoteHandler serves the customer-core REST API.
type CustomerQuoteHandler struct {
	usecase usecase.ICustomerQuoteUseCase
}

func NewCustomerQuoteHandler(uc usecase.ICustomerQuoteUseCase) *CustomerQuoteHandler {
	return &CustomerQuoteHandler{usecase: uc}
}

// SubmitRequest godoc
// @Summary      Submit a quote request
// @Tags         quote-requests
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubmitQuoteRequest  true  "Customer and insurance options"
// @Success      201   {object}  response.QuoteRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quote-requests [post]
func (h *CustomerQuoteHandler) SubmitRequest(c *gin.Context) {
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	q, err := h.usecase.SubmitRequest(c.Request.Context(), payload.ToCustomer(), payload.ToOptions())
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRequest(q))
}

// GetRequest godoc
// @Summary      Get a quote request
// @Tags         quote-requests
// @Produce      json
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quote-requests/{id} [get]
func (h *CustomerQuoteHandler) GetRequest(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// AcceptQuote godoc
// @Summary      Accept the received quote
// @Tags         quote-requests
// @Produce      json
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/accept [patch]
func (h *CustomerQuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchDecision(c, true)
}

// RejectQuote godoc
// @Summary      Reject the received quote
// @Tags         quote-requests
// @Produce      json
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  response.QuoteRequestResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quote-requests/{id}/reject [patch]
func (h *CustomerQuoteHandler) RejectQuote(c *gin.Context) {
	h.patchDecision(c, false)
}

func (h *CustomerQuoteHandler) patchDecision(c *gin.Context, accepted bool) {
	q, err := h.usecase.RecordDecision(c.Request.Context(), c.Param("id"), accepted)
	if err != nil {
		abortWith(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}
