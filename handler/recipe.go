package handler

import (
	"net/http"

	"github.com/Aiosol/ccf-bakery-sub001/controller"
	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/mapper"

	"github.com/gin-gonic/gin"
)

// RecipeRequest is the inbound recipe shape. Ingredient lines pass through
// the mapper's normalization step, which collapses the historical field
// spellings.
type RecipeRequest struct {
	Name            string                     `json:"name"`
	Category        string                     `json:"category"`
	YieldQuantity   float64                    `json:"yield_quantity"`
	YieldUnit       string                     `json:"yield_unit"`
	PrepTimeMinutes int                        `json:"prep_time_minutes"`
	CookTimeMinutes int                        `json:"cook_time_minutes"`
	Instructions    string                     `json:"instructions"`
	Ingredients     []mapper.IngredientPayload `json:"ingredients"`
}

func (r *RecipeRequest) entity() *entity.Recipe {
	lines := make([]entity.RecipeIngredient, 0, len(r.Ingredients))
	for i := range r.Ingredients {
		lines = append(lines, r.Ingredients[i].Entity())
	}
	return &entity.Recipe{
		Name:            r.Name,
		Category:        r.Category,
		YieldQuantity:   r.YieldQuantity,
		YieldUnit:       r.YieldUnit,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Instructions:    r.Instructions,
		Ingredients:     lines,
	}
}

type RecipeHandler interface {
	Create(c *gin.Context)
	GetRecipe(c *gin.Context)
	ListRecipes(c *gin.Context)
	UpdateRecipe(c *gin.Context)
	DeleteRecipe(c *gin.Context)
}

type recipeHandler struct {
	recipes controller.RecipeController
}

func NewRecipeHandler(recipes controller.RecipeController) RecipeHandler {
	return &recipeHandler{recipes: recipes}
}

func (h *recipeHandler) Create(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe := req.entity()
	if err := h.recipes.CreateRecipe(c.Request.Context(), recipe); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *recipeHandler) GetRecipe(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *recipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *recipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe := req.entity()
	recipe.ID = id
	if err := h.recipes.UpdateRecipe(c.Request.Context(), recipe); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (h *recipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}
