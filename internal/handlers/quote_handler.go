package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"quotes-api/internal/services"
	"quotes-api/pkg/lambda"
)

// QuoteHandler handles quote-related HTTP requests on both the Gin and
// the Lambda surface
type QuoteHandler struct {
	quoteService services.QuoteService
	logger       *logrus.Logger
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		logger:       logrus.StandardLogger(),
	}
}

// @Summary Create a new quote
// @Description Insert a quote; the storage-assigned id is returned
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body services.CreateQuoteRequest true "Quote data"
// @Success 201 {object} models.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req services.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Message: err.Error(),
			})
			return
		}
		h.logStorageError("POST", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create quote",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, quote)
}

// @Summary List quotes
// @Description Get up to 20 quotes ordered by episode ascending
// @Tags quotes
// @Produce json
// @Success 200 {array} models.Quote
// @Failure 500 {object} ErrorResponse
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.quoteService.ListQuotes(c.Request.Context())
	if err != nil {
		h.logStorageError("GET", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list quotes",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// @Summary Get a quote by ID
// @Description Returns the quote, or a JSON null body when no quote has that ID
// @Tags quotes
// @Produce json
// @Param id path int true "Quote ID"
// @Success 200 {object} models.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid quote ID",
			Message: "id must be an integer",
		})
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), id)
	if err != nil {
		if isNotFoundError(err) {
			// Absent rows answer 200 with a null body, not 404
			c.JSON(http.StatusOK, nil)
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid quote ID",
				Message: err.Error(),
			})
			return
		}
		h.logStorageError("GET", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get quote",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// @Summary Update a quote
// @Description Sparse update: only fields present in the body overwrite stored values
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param quote body services.UpdateQuoteRequest true "Fields to update"
// @Success 200 {object} models.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid quote ID",
			Message: "id must be an integer",
		})
		return
	}

	var req services.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), id, &req)
	if err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Validation failed",
				Message: err.Error(),
			})
			return
		}
		h.logStorageError("PUT", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update quote",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// @Summary Delete a quote
// @Description Removes the quote. Deleting an absent quote still answers 204.
// @Tags quotes
// @Param id path int true "Quote ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid quote ID",
			Message: "id must be an integer",
		})
		return
	}

	if _, err := h.quoteService.DeleteQuote(c.Request.Context(), id); err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid quote ID",
				Message: err.Error(),
			})
			return
		}
		h.logStorageError("DELETE", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to delete quote",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Lambda handler methods. Responses carry no custom headers; the
// API-gateway contract leaves the header maps empty.

// Route dispatches a serverless request on its HTTP method. Exactly one
// storage operation runs per call.
func (h *QuoteHandler) Route(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	switch req.Method {
	case http.MethodGet:
		if _, present, _ := rowID(req); present {
			return h.HandleGet(ctx, req)
		}
		return h.HandleList(ctx, req)
	case http.MethodPost:
		return h.HandleCreate(ctx, req)
	case http.MethodPut:
		return h.HandleUpdate(ctx, req)
	case http.MethodDelete:
		return h.HandleDelete(ctx, req)
	default:
		return lambda.TextResponse(http.StatusMethodNotAllowed, "Method Not Allowed"), nil
	}
}

// HandleList serves GET without a rowid
func (h *QuoteHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	quotes, err := h.quoteService.ListQuotes(ctx)
	if err != nil {
		return h.storageFailure(req.Method, err), nil
	}

	return jsonResponse(http.StatusOK, quotes)
}

// HandleGet serves GET with a rowid
func (h *QuoteHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id, ok, err := rowID(req)
	if !ok {
		return lambda.TextResponse(http.StatusBadRequest, "rowid is required"), nil
	}
	if err != nil {
		return lambda.TextResponse(http.StatusBadRequest, "rowid must be an integer"), nil
	}

	quote, err := h.quoteService.GetQuote(ctx, id)
	if err != nil {
		if isNotFoundError(err) {
			return lambda.TextResponse(http.StatusOK, "null"), nil
		}
		return h.storageFailure(req.Method, err), nil
	}

	return jsonResponse(http.StatusOK, quote)
}

// HandleCreate serves POST
func (h *QuoteHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var createReq services.CreateQuoteRequest
	if err := json.Unmarshal(req.Body, &createReq); err != nil {
		return lambda.TextResponse(http.StatusBadRequest, "request body must be valid JSON"), nil
	}

	quote, err := h.quoteService.CreateQuote(ctx, &createReq)
	if err != nil {
		if isValidationError(err) {
			return lambda.TextResponse(http.StatusBadRequest, err.Error()), nil
		}
		return h.storageFailure(req.Method, err), nil
	}

	return jsonResponse(http.StatusCreated, quote)
}

// HandleUpdate serves PUT
func (h *QuoteHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id, ok, err := rowID(req)
	if !ok {
		return lambda.TextResponse(http.StatusBadRequest, "rowid is required"), nil
	}
	if err != nil {
		return lambda.TextResponse(http.StatusBadRequest, "rowid must be an integer"), nil
	}

	var updateReq services.UpdateQuoteRequest
	if err := json.Unmarshal(req.Body, &updateReq); err != nil {
		return lambda.TextResponse(http.StatusBadRequest, "request body must be valid JSON"), nil
	}

	quote, err := h.quoteService.UpdateQuote(ctx, id, &updateReq)
	if err != nil {
		if isNotFoundError(err) {
			// No matching row: 200 with a null body, same as GET
			return lambda.TextResponse(http.StatusOK, "null"), nil
		}
		if isValidationError(err) {
			return lambda.TextResponse(http.StatusBadRequest, err.Error()), nil
		}
		return h.storageFailure(req.Method, err), nil
	}

	return jsonResponse(http.StatusOK, quote)
}

// HandleDelete serves DELETE
func (h *QuoteHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id, ok, err := rowID(req)
	if !ok {
		return lambda.TextResponse(http.StatusBadRequest, "rowid is required"), nil
	}
	if err != nil {
		return lambda.TextResponse(http.StatusBadRequest, "rowid must be an integer"), nil
	}

	// A second delete of the same id is a no-op, not an error
	if _, err := h.quoteService.DeleteQuote(ctx, id); err != nil {
		if isValidationError(err) {
			return lambda.TextResponse(http.StatusBadRequest, err.Error()), nil
		}
		return h.storageFailure(req.Method, err), nil
	}

	return lambda.TextResponse(http.StatusNoContent, ""), nil
}

// rowID extracts the rowid query parameter ("id" accepted as alias).
// ok reports presence; err reports an unparseable value.
func rowID(req *lambda.Request) (id int64, ok bool, err error) {
	raw, present := req.QueryParams["rowid"]
	if !present {
		raw, present = req.QueryParams["id"]
	}
	if !present || raw == "" {
		return 0, false, nil
	}

	id, err = strconv.ParseInt(raw, 10, 64)
	return id, true, err
}

// storageFailure logs the failure with its request method and produces
// the opaque 500 response
func (h *QuoteHandler) storageFailure(method string, err error) *lambda.Response {
	h.logStorageError(method, err)
	return lambda.TextResponse(http.StatusInternalServerError, "Internal Server Error")
}

func (h *QuoteHandler) logStorageError(method string, err error) {
	h.logger.WithFields(logrus.Fields{
		"method": method,
		"error":  err.Error(),
	}).Error("Storage operation failed")
}

// jsonResponse marshals v into a headerless JSON response
func jsonResponse(status int, v interface{}) (*lambda.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return lambda.TextResponse(http.StatusInternalServerError, "Internal Server Error"), nil
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{},
		Body:       body,
	}, nil
}
