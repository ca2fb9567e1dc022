package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
	"github.com/restobar-app/backend/services"
	"github.com/restobar-app/backend/utils"
)

type MesaController struct {
	DB       *gorm.DB
	Notifier services.Notifier
}

func NewMesaController(db *gorm.DB, notifier services.Notifier) *MesaController {
	if notifier == nil {
		notifier = services.NoopNotifier{}
	}
	return &MesaController{DB: db, Notifier: notifier}
}

// ObtenerMesas -> GET /mesas/obtener
func (mc *MesaController) ObtenerMesas(c *gin.Context) {
	var mesas []models.Table
	if err := mc.DB.Order("number asc").Find(&mesas).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Lista de mesas", mesas)
}

// CrearMesa -> POST /mesas/crear
func (mc *MesaController) CrearMesa(c *gin.Context) {
	var req struct {
		MesaNumero    int    `json:"MesaNumero" binding:"required"`
		MesaCapacidad int    `json:"MesaCapacidad"`
		MesaEstado    string `json:"MesaEstado"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := models.TableAvailable
	if req.MesaEstado != "" {
		if !models.IsValidTableStatus(req.MesaEstado) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("estado inválido: %s", req.MesaEstado))
			return
		}
		status = req.MesaEstado
	}
	capacity := req.MesaCapacidad
	if capacity <= 0 {
		capacity = 4
	}

	var mesa models.Table
	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.NextCode(tx, "mesas", "code", models.CodePrefixTable)
		if err != nil {
			return err
		}
		mesa = models.Table{
			Code:     code,
			Number:   req.MesaNumero,
			Capacity: capacity,
			Status:   status,
		}
		return tx.Create(&mesa).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	mc.Notifier.TablesChanged()
	utils.RespondJSON(c, http.StatusCreated, "Mesa creada correctamente", mesa)
}

// ActualizarEstadoMesa -> PUT /mesas/actualizar
func (mc *MesaController) ActualizarEstadoMesa(c *gin.Context) {
	var req struct {
		MesaCodigo  string `json:"MesaCodigo" binding:"required"`
		NuevoEstado string `json:"nuevoEstado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("parámetros incompletos"))
		return
	}

	if !models.IsValidTableStatus(req.NuevoEstado) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("estado inválido: %s. Valores permitidos: disponible, ocupada, sucia, reservada", req.NuevoEstado))
		return
	}

	res := mc.DB.Model(&models.Table{}).
		Where("code = ?", req.MesaCodigo).
		Update("status", req.NuevoEstado)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("mesa no encontrada"))
		return
	}

	mc.Notifier.TablesChanged()
	utils.RespondJSON(c, http.StatusOK, "Estado actualizado correctamente", nil)
}
