package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
	"github.com/restobar-app/backend/utils"
)

type CategoriaController struct {
	DB *gorm.DB
}

func NewCategoriaController(db *gorm.DB) *CategoriaController {
	return &CategoriaController{DB: db}
}

// MostrarCategorias -> GET /categorias/mostrarCategorias
func (cc *CategoriaController) MostrarCategorias(c *gin.Context) {
	var categorias []models.MenuCategory
	if err := cc.DB.Where("active = ?", true).Order("code asc").Find(&categorias).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Lista de categorías", categorias)
}

// AgregarCategoria -> POST /categorias/agregarCategoria
func (cc *CategoriaController) AgregarCategoria(c *gin.Context) {
	var req struct {
		CategoriaNombre      string `json:"CategoriaNombre" binding:"required"`
		CategoriaDescripcion string `json:"CategoriaDescripcion" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("los campos CategoriaNombre y CategoriaDescripcion son obligatorios"))
		return
	}

	var categoria models.MenuCategory
	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.NextCode(tx, "categorias", "code", models.CodePrefixCategory)
		if err != nil {
			return err
		}
		categoria = models.MenuCategory{
			Code:        code,
			Name:        req.CategoriaNombre,
			Description: req.CategoriaDescripcion,
			Active:      true,
		}
		return tx.Create(&categoria).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Categoría agregada correctamente", categoria)
}

// ActualizarCategoria -> PUT /categorias/actualizar/:CategoriaCodigo
func (cc *CategoriaController) ActualizarCategoria(c *gin.Context) {
	categoriaCodigo := c.Param("CategoriaCodigo")

	var req struct {
		CategoriaNombre      *string `json:"CategoriaNombre"`
		CategoriaDescripcion *string `json:"CategoriaDescripcion"`
		CategoriaEstado      *bool   `json:"CategoriaEstado"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if req.CategoriaNombre != nil {
		updates["name"] = *req.CategoriaNombre
	}
	if req.CategoriaDescripcion != nil {
		updates["description"] = *req.CategoriaDescripcion
	}
	if req.CategoriaEstado != nil {
		updates["active"] = *req.CategoriaEstado
	}
	if len(updates) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("nada que actualizar"))
		return
	}

	res := cc.DB.Model(&models.MenuCategory{}).Where("code = ?", categoriaCodigo).Updates(updates)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("categoría no encontrada"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Categoría actualizada correctamente", nil)
}
