package v1

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/internal/suggest"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategories)
	r.GET("", co.GetCategories)

	r.OPTIONS("/suggest", co.OptionsCategorySuggest)
	r.GET("/suggest", co.GetCategorySuggest)
}

// Category is the representation of a category in API v1.
//
// The category set is fixed, categories cannot be created or deleted.
type Category struct {
	Name         string          `json:"name" example:"Food & Groceries"` // Name of the category
	Type         ledger.Type     `json:"type" example:"expense"`          // Whether the category is for income or expenses
	DefaultLimit decimal.Decimal `json:"defaultLimit" example:"12000"`    // The default monthly budget limit, 0 when there is none
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                   // List of categories
	Error *string    `json:"error" example:"an error that occurred"` // The error, if any occurred
}

// CategorySuggestion is a category suggestion for a transaction description.
type CategorySuggestion struct {
	Category string `json:"category" example:"Food & Groceries"` // The suggested category
	Matched  bool   `json:"matched" example:"true"`              // Whether a keyword rule matched the text
}

type CategorySuggestionResponse struct {
	Data  *CategorySuggestion `json:"data"`                                                 // The suggestion
	Error *string             `json:"error" example:"the text query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the fixed list of categories with their type and default budget limit
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	definitions := ledger.Categories()

	data := make([]Category, 0, len(definitions))
	for _, definition := range definitions {
		data = append(data, Category{
			Name:         definition.Name,
			Type:         definition.Type,
			DefaultLimit: definition.DefaultLimit,
		})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/suggest [options]
func (co Controller) OptionsCategorySuggest(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Suggest a category
// @Description	Suggests an expense category for a transaction description
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategorySuggestionResponse
// @Failure		400		{object}	CategorySuggestionResponse
// @Param			text	query		string	true	"The transaction description to suggest a category for"
// @Router			/v1/categories/suggest [get]
func (co Controller) GetCategorySuggest(c *gin.Context) {
	text, ok := c.GetQuery("text")
	if !ok || text == "" {
		s := errTextNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, CategorySuggestionResponse{
			Error: &s,
		})
		return
	}

	category, matched := suggest.Category(text)
	c.JSON(http.StatusOK, CategorySuggestionResponse{
		Data: &CategorySuggestion{
			Category: category,
			Matched:  matched,
		},
	})
}
