package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Aiosol/ccf-bakery-sub001/controller"

	"github.com/xuri/excelize/v2"
)

const costSheetName = "Recipe Costs"

// ReportService builds management exports.
type ReportService interface {
	RecipeCostSheet(ctx context.Context) (*bytes.Buffer, error)
}

type reportService struct {
	recipes controller.RecipeController
}

func NewReportService(recipes controller.RecipeController) ReportService {
	return &reportService{recipes: recipes}
}

// RecipeCostSheet renders every recipe's current total and unit cost into an
// xlsx workbook. Costs are the live-priced values at generation time.
func (s *reportService) RecipeCostSheet(ctx context.Context) (*bytes.Buffer, error) {
	recipes, err := s.recipes.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(costSheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Recipe", "Category", "Yield", "Ingredients", "Total Cost", "Unit Cost"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(costSheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for row, r := range recipes {
		values := []interface{}{
			r.Name,
			r.Category,
			fmt.Sprintf("%g %s", r.YieldQuantity, r.YieldUnit),
			len(r.Ingredients),
			r.TotalCost,
			r.UnitCost,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(costSheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
