package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/Aiosol/ccf-bakery-sub001/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubRecipes struct {
	recipes []entity.Recipe
}

func (s *stubRecipes) GetRecipe(_ context.Context, id uint) (*entity.Recipe, error) {
	return &s.recipes[0], nil
}

func (s *stubRecipes) ListRecipes(_ context.Context) ([]entity.Recipe, error) {
	return s.recipes, nil
}

func (s *stubRecipes) CreateRecipe(_ context.Context, _ *entity.Recipe) error { return nil }
func (s *stubRecipes) UpdateRecipe(_ context.Context, _ *entity.Recipe) error { return nil }
func (s *stubRecipes) DeleteRecipe(_ context.Context, _ uint) error           { return nil }

func TestRecipeCostSheet(t *testing.T) {
	svc := NewReportService(&stubRecipes{recipes: []entity.Recipe{
		{
			Name:          "Sourdough",
			Category:      "Bread",
			YieldQuantity: 2,
			YieldUnit:     "loaves",
			TotalCost:     12.5,
			UnitCost:      6.25,
			Ingredients:   []entity.RecipeIngredient{{Quantity: 1}, {Quantity: 2}},
		},
	}})

	buf, err := svc.RecipeCostSheet(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Recipe Costs", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Sourdough", name)

	total, err := f.GetCellValue("Recipe Costs", "E2")
	require.NoError(t, err)
	assert.Equal(t, "12.5", total)

	unit, err := f.GetCellValue("Recipe Costs", "F2")
	require.NoError(t, err)
	assert.Equal(t, "6.25", unit)
}
