package admin

import (
	"github.com/gin-gonic/gin"

	"megacitycab/internal/middleware"
	"megacitycab/internal/models"
	"megacitycab/internal/utils"
)

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponseWithMeta(c, "Categories retrieved successfully", categories, &utils.Meta{Total: len(categories)})
}

func (h *AdminHandler) AddCategory(c *gin.Context) {
	var form models.CategoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	category, err := h.categoryService.Add(c.Request.Context(), middleware.CurrentSession(c), &form)
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.CreatedResponse(c, "Category added successfully", category)
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var form models.CategoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), &form)
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Category updated successfully", category)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Category deleted successfully", nil)
}
