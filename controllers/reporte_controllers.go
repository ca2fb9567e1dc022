package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/models"
	"github.com/restobar-app/backend/services"
	"github.com/restobar-app/backend/utils"
)

// ReporteController serves the read-side sales aggregations the dashboard
// charts consume.
type ReporteController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewReporteController(db *gorm.DB) *ReporteController {
	return &ReporteController{
		DB:     db,
		Orders: services.NewOrderService(db, services.NoopNotifier{}),
	}
}

// VentasHoy -> GET /reportes/ventasHoy
// Total and count of today's orders (Lima day, cancelled excluded).
func (rc *ReporteController) VentasHoy(c *gin.Context) {
	pedidos, err := rc.Orders.ListOrdersForToday()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var total float64
	for _, p := range pedidos {
		total += p.Total
	}

	utils.RespondJSON(c, http.StatusOK, "Ventas de hoy", gin.H{
		"TotalVentas": total,
		"CantidadHoy": len(pedidos),
	})
}

// ResumenAnual -> GET /reportes/resumenAnual
// Daily revenue of served orders grouped by calendar date.
func (rc *ReporteController) ResumenAnual(c *gin.Context) {
	var resumen []struct {
		Fecha   string  `json:"Fecha"`
		Total   float64 `json:"Total"`
		Pedidos int64   `json:"Pedidos"`
	}

	err := rc.DB.Model(&models.Order{}).
		Select("DATE(created_at) as fecha, SUM(total) as total, COUNT(*) as pedidos").
		Where("status = ?", models.OrderServed).
		Group("DATE(created_at)").
		Order("fecha asc").
		Scan(&resumen).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Resumen diario del año", resumen)
}
