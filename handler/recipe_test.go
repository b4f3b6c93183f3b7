package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Aiosol/ccf-bakery-sub001/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecipeController struct {
	created *entity.Recipe
	err     error
}

func (s *stubRecipeController) GetRecipe(_ context.Context, _ uint) (*entity.Recipe, error) {
	return nil, s.err
}

func (s *stubRecipeController) ListRecipes(_ context.Context) ([]entity.Recipe, error) {
	return nil, s.err
}

func (s *stubRecipeController) CreateRecipe(_ context.Context, recipe *entity.Recipe) error {
	s.created = recipe
	return s.err
}

func (s *stubRecipeController) UpdateRecipe(_ context.Context, recipe *entity.Recipe) error {
	return s.err
}

func (s *stubRecipeController) DeleteRecipe(_ context.Context, _ uint) error {
	return s.err
}

func postRecipe(t *testing.T, ctl *stubRecipeController, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/recipes", NewRecipeHandler(ctl).Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recipes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRecipeNormalizesLegacyIngredientFields(t *testing.T) {
	ctl := &stubRecipeController{}
	w := postRecipe(t, ctl, `{
		"name": "Baguette",
		"yield_quantity": 4,
		"ingredients": [
			{"itemId": 1, "ItemName": "Flour", "qty": 2, "unit": "kg"},
			{"inventory_item_id": 2, "name": "Salt", "quantity": 0.1, "unit": "kg"}
		]
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, ctl.created)
	require.Len(t, ctl.created.Ingredients, 2)
	assert.Equal(t, uint(1), ctl.created.Ingredients[0].InventoryItemID)
	assert.Equal(t, "Flour", ctl.created.Ingredients[0].Name)
	assert.Equal(t, 2.0, ctl.created.Ingredients[0].Quantity)
	assert.Equal(t, uint(2), ctl.created.Ingredients[1].InventoryItemID)
}

func TestCreateRecipeValidationErrorsArePerField(t *testing.T) {
	ctl := &stubRecipeController{err: entity.ValidationErrors{
		"name":        "name is required",
		"ingredients": "ingredient quantities must be positive",
	}}
	w := postRecipe(t, ctl, `{"yield_quantity": 1, "ingredients": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "name is required", body.Errors["name"])
	assert.Equal(t, "ingredient quantities must be positive", body.Errors["ingredients"])
}

func TestCreateRecipeMalformedBody(t *testing.T) {
	w := postRecipe(t, &stubRecipeController{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
