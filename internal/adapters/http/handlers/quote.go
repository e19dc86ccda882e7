package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-quote-service/internal/domain"
)

// Response messages for the quote routes.
const (
	msgFetchQuotesFailed     = "Failed to fetch quotes"
	msgNoQuotes              = "No quotes available"
	msgFetchRandomFailed     = "Failed to fetch random quote"
	msgFetchByCategoryFailed = "Failed to fetch quotes by category"
	msgInvalidID             = "Invalid quote ID"
	msgQuoteNotFound         = "Quote not found"
	msgFetchQuoteFailed      = "Failed to fetch quote"
	msgInvalidQuoteData      = "Invalid quote data"
	msgCreateFailed          = "Failed to create quote"
)

// QuoteService is the application surface the quote routes need.
type QuoteService interface {
	ListQuotes(ctx context.Context) ([]domain.Quote, error)
	RandomQuote(ctx context.Context) (*domain.Quote, error)
	QuotesByCategory(ctx context.Context, category string) ([]domain.Quote, error)
	GetQuote(ctx context.Context, id int) (*domain.Quote, error)
	CreateQuote(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error)
}

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /api/quotes.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err, msgFetchQuotesFailed)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotes(quotes))
}

// RandomQuote handles GET /api/quotes/random.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes/random [get]
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	quote, err := h.service.RandomQuote(c.Request.Context())
	if err != nil {
		if domain.IsNotFound(err) {
			dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, msgNoQuotes)
			return
		}

		dto.HandleError(c, err, msgFetchRandomFailed)

		return
	}

	c.JSON(http.StatusOK, dto.FromQuote(*quote))
}

// QuotesByCategory handles GET /api/quotes/category/:category.
// An unknown category yields an empty list, not a 404.
//
// @Summary List quotes in a category
// @Tags quotes
// @Produce json
// @Param category path string true "Category, matched case-insensitively"
// @Success 200 {array} dto.QuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes/category/{category} [get]
func (h *QuoteHandler) QuotesByCategory(c *gin.Context) {
	quotes, err := h.service.QuotesByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		dto.HandleError(c, err, msgFetchByCategoryFailed)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotes(quotes))
}

// GetQuote handles GET /api/quotes/:id.
//
// @Summary Get a quote by id
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, msgInvalidID)
		return
	}

	quote, err := h.service.GetQuote(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, msgQuoteNotFound)
			return
		}

		dto.HandleError(c, err, msgFetchQuoteFailed)

		return
	}

	c.JSON(http.StatusOK, dto.FromQuote(*quote))
}

// CreateQuote handles POST /api/quotes.
//
// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.CreateQuoteRequest true "New quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		dto.RespondWithValidationErrors(c, msgInvalidQuoteData, []dto.FieldError{{
			Code:    domain.CodeInvalid,
			Message: "request body could not be read",
		}})

		return
	}

	draft, fields := dto.ValidateCreateQuote(body)
	if len(fields) > 0 {
		dto.RespondWithValidationErrors(c, msgInvalidQuoteData, fields)
		return
	}

	quote, err := h.service.CreateQuote(c.Request.Context(), draft)
	if err != nil {
		if domain.IsValidation(err) {
			_, resp := dto.MapDomainError(err)
			dto.RespondWithValidationErrors(c, msgInvalidQuoteData, resp.Errors)

			return
		}

		dto.HandleError(c, err, msgCreateFailed)

		return
	}

	c.JSON(http.StatusCreated, dto.FromQuote(*quote))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
// Static segments are registered alongside :id; gin matches them first.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.POST("", h.CreateQuote)
	quotes.GET("/random", h.RandomQuote)
	quotes.GET("/category/:category", h.QuotesByCategory)
	quotes.GET("/:id", h.GetQuote)
}
