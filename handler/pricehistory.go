package handler

import (
	"net/http"
	"strconv"

	"github.com/Aiosol/ccf-bakery-sub001/controller"

	"github.com/gin-gonic/gin"
)

type PriceHistoryHandler interface {
	GetPriceHistory(c *gin.Context)
}

type priceHistoryHandler struct {
	history controller.PriceHistoryController
}

func NewPriceHistoryHandler(history controller.PriceHistoryController) PriceHistoryHandler {
	return &priceHistoryHandler{history: history}
}

// GetPriceHistory serves the price-history view of one recipe over a
// trailing window (?days=N, default 30).
func (h *priceHistoryHandler) GetPriceHistory(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative integer"})
			return
		}
	}

	history, err := h.history.GetPriceHistory(c.Request.Context(), id, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
