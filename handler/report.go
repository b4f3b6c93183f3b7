package handler

import (
	"net/http"

	"github.com/Aiosol/ccf-bakery-sub001/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	RecipeCostSheet(c *gin.Context)
}

type reportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) ReportHandler {
	return &reportHandler{reports: reports}
}

// RecipeCostSheet streams the recipe cost workbook as a download.
func (h *reportHandler) RecipeCostSheet(c *gin.Context) {
	buf, err := h.reports.RecipeCostSheet(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="recipe-costs.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
