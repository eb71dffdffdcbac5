package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/backend/internal/application/usecase/category"
	"github.com/spendtrack/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listCategoriesUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listCategoriesUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{
		listCategoriesUseCase: listCategoriesUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listCategoriesUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		Type: ctx.Query("type"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToCategoryListResponse(output)))
}
