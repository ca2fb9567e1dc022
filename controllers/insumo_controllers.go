package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
	"github.com/restobar-app/backend/utils"
)

type InsumoController struct {
	DB *gorm.DB
}

func NewInsumoController(db *gorm.DB) *InsumoController {
	return &InsumoController{DB: db}
}

// AgregarInsumo -> POST /insumos/agregarInsumo
func (ic *InsumoController) AgregarInsumo(c *gin.Context) {
	var req struct {
		InsumoNombre       string   `json:"InsumoNombre" binding:"required"`
		InsumoUnidadMedida string   `json:"InsumoUnidadMedida" binding:"required"`
		InsumoStockActual  *float64 `json:"InsumoStockActual" binding:"required"`
		InsumoCompraUnidad *float64 `json:"InsumoCompraUnidad" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("faltan campos"))
		return
	}
	if *req.InsumoStockActual < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("el stock inicial no puede ser negativo"))
		return
	}

	var insumo models.Ingredient
	err := ic.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.NextCode(tx, "insumos", "code", models.CodePrefixIngredient)
		if err != nil {
			return err
		}
		insumo = models.Ingredient{
			Code:     code,
			Name:     req.InsumoNombre,
			Unit:     req.InsumoUnidadMedida,
			Stock:    *req.InsumoStockActual,
			UnitCost: *req.InsumoCompraUnidad,
		}
		return tx.Create(&insumo).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Insumo agregado correctamente", insumo)
}

// ListaInsumos -> GET /insumos/ListaInsumos
func (ic *InsumoController) ListaInsumos(c *gin.Context) {
	var insumos []models.Ingredient
	if err := ic.DB.Order("code asc").Find(&insumos).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Lista de insumos", insumos)
}

// ActualizarInsumo -> PUT /insumos/actualizarInsumo
// Stock set here is an administrative correction; order-driven stock movement
// only ever goes through the conditional updates in services.StockService.
func (ic *InsumoController) ActualizarInsumo(c *gin.Context) {
	var req struct {
		InsumoCodigo       string   `json:"InsumoCodigo" binding:"required"`
		InsumoNombre       string   `json:"InsumoNombre" binding:"required"`
		InsumoUnidadMedida string   `json:"InsumoUnidadMedida" binding:"required"`
		InsumoStockActual  *float64 `json:"InsumoStockActual" binding:"required"`
		InsumoCompraUnidad *float64 `json:"InsumoCompraUnidad" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("faltan campos"))
		return
	}
	if *req.InsumoStockActual < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("el stock no puede ser negativo"))
		return
	}

	res := ic.DB.Model(&models.Ingredient{}).
		Where("code = ?", req.InsumoCodigo).
		Updates(map[string]interface{}{
			"name":      req.InsumoNombre,
			"unit":      req.InsumoUnidadMedida,
			"stock":     *req.InsumoStockActual,
			"unit_cost": *req.InsumoCompraUnidad,
		})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("insumo no encontrado"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Insumo actualizado correctamente", nil)
}
