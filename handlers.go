package main

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"kakeibo/models"

	"github.com/gin-gonic/gin"
)

func setupRoutes(r *gin.Engine, h *transactionHandler) {
	r.Use(corsMiddleware())
	// /api/expenses is the legacy path; same handlers, same table.
	for _, base := range []string{"/api/transactions", "/api/expenses"} {
		g := r.Group(base)
		g.POST("", h.create)
		g.GET("", h.list)
		g.GET("/:id", h.get)
		g.PUT("/:id", h.update)
		g.DELETE("/:id", h.remove)
	}
}

// corsMiddleware lets the browser frontend (one configured origin) call the API.
func corsMiddleware() gin.HandlerFunc {
	origin := os.Getenv("ALLOWED_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

type transactionHandler struct {
	service TransactionService
}

func newTransactionHandler(service TransactionService) *transactionHandler {
	return &transactionHandler{service: service}
}

// parseID reads the :id path parameter. A non-numeric id identifies nothing,
// so callers treat a false return as not found.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// create handles POST: validates the submitted fields and persists a new record.
func (h *transactionHandler) create(c *gin.Context) {
	var t models.Transaction
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.ID = 0 // ids are store-assigned; ignore whatever the client sent
	if errs := t.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	saved, err := h.service.SaveTransaction(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *transactionHandler) list(c *gin.Context) {
	items, err := h.service.FindAllTransactions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if items == nil {
		items = []models.Transaction{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *transactionHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	t, err := h.service.FindTransactionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// update handles PUT: validation runs before the lookup, so an invalid body is
// rejected even when the id does not exist.
func (h *transactionHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	var t models.Transaction
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := t.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	updated, err := h.service.UpdateTransaction(c.Request.Context(), id, t)
	if err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *transactionHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	if err := h.service.DeleteTransaction(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
