package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/controllers"
	"github.com/restobar-app/backend/models"
)

func setupInsumoRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth("USR0000001", "admin"))
	insumoCtrl := controllers.NewInsumoController(db)
	router.POST("/insumos/agregarInsumo", insumoCtrl.AgregarInsumo)
	router.GET("/insumos/ListaInsumos", insumoCtrl.ListaInsumos)
	router.PUT("/insumos/actualizarInsumo", insumoCtrl.ActualizarInsumo)
	return router
}

func TestAgregarYListarInsumos(t *testing.T) {
	db := openTestDB(t)
	router := setupInsumoRouter(db)

	w := doJSON(t, router, "POST", "/insumos/agregarInsumo", map[string]interface{}{
		"InsumoNombre":       "Arroz",
		"InsumoUnidadMedida": "kg",
		"InsumoStockActual":  25.5,
		"InsumoCompraUnidad": 4.2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "INS0000001", data["InsumoCodigo"])

	// stock negativo rechazado
	w = doJSON(t, router, "POST", "/insumos/agregarInsumo", map[string]interface{}{
		"InsumoNombre":       "Aceite",
		"InsumoUnidadMedida": "lt",
		"InsumoStockActual":  -1,
		"InsumoCompraUnidad": 8.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/insumos/ListaInsumos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeEnvelope(t, w)
	insumos := resp["data"].([]interface{})
	assert.Len(t, insumos, 1)
}

func TestActualizarInsumo(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Ingredient{
		Code: "INS0000001", Name: "Arroz", Unit: "kg", Stock: 10, UnitCost: 4,
	}).Error)
	router := setupInsumoRouter(db)

	w := doJSON(t, router, "PUT", "/insumos/actualizarInsumo", map[string]interface{}{
		"InsumoCodigo":       "INS0000001",
		"InsumoNombre":       "Arroz extra",
		"InsumoUnidadMedida": "kg",
		"InsumoStockActual":  30.0,
		"InsumoCompraUnidad": 4.5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var insumo models.Ingredient
	require.NoError(t, db.First(&insumo, "code = ?", "INS0000001").Error)
	assert.Equal(t, "Arroz extra", insumo.Name)
	assert.Equal(t, 30.0, insumo.Stock)

	w = doJSON(t, router, "PUT", "/insumos/actualizarInsumo", map[string]interface{}{
		"InsumoCodigo":       "INS9999999",
		"InsumoNombre":       "Fantasma",
		"InsumoUnidadMedida": "kg",
		"InsumoStockActual":  1.0,
		"InsumoCompraUnidad": 1.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
