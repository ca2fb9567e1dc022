package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/services"
	"github.com/restobar-app/backend/utils"
)

type PedidoController struct {
	Service *services.OrderService
}

func NewPedidoController(db *gorm.DB, notifier services.Notifier) *PedidoController {
	return &PedidoController{Service: services.NewOrderService(db, notifier)}
}

// currentUserCode returns the authenticated user's code, or nil when the
// request came in without a token (public ordering flow).
func currentUserCode(c *gin.Context) *string {
	v, exists := c.Get("user_code")
	if !exists {
		return nil
	}
	code, ok := v.(string)
	if !ok || code == "" {
		return nil
	}
	return &code
}

// respondServiceError maps the coordinator's error taxonomy onto status
// codes: 404 for unresolved codes, 400 for validation, 409 for rejected
// state transitions. Everything else, insufficient stock included, is a 500
// with the underlying message — the client must resubmit with adjusted
// quantities or after restock.
func respondServiceError(c *gin.Context, err error) {
	var transition *services.InvalidTransitionError
	var noIngredient *services.NoIngredientError
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrOrderLineNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrMenuItemNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrUnknownStatus),
		errors.Is(err, services.ErrPaymentMethodRequired),
		errors.As(err, &noIngredient):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.As(err, &transition):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// CrearPedido -> POST /pedidos/crearPedido
func (pc *PedidoController) CrearPedido(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	code, err := pc.Service.CreateOrder(req, currentUserCode(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Pedido %s creado en mesa %s (%d detalles)", code, req.MesaCodigo, len(req.Detalles))
	utils.RespondJSON(c, http.StatusCreated, "Pedido creado y stock actualizado correctamente", gin.H{
		"PedidoCodigo": code,
	})
}

// EliminarPedido -> DELETE /pedidos/eliminar/:PedidoCodigo
func (pc *PedidoController) EliminarPedido(c *gin.Context) {
	pedidoCodigo := c.Param("PedidoCodigo")
	if pedidoCodigo == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("se requiere PedidoCodigo para eliminar"))
		return
	}

	if err := pc.Service.DeleteOrder(pedidoCodigo); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pedido eliminado y stock restaurado correctamente", nil)
}

// ActualizarEstadoPedido -> PUT /pedidos/actualizarEstadoPedido/:PedidoCodigo
func (pc *PedidoController) ActualizarEstadoPedido(c *gin.Context) {
	pedidoCodigo := c.Param("PedidoCodigo")

	var body struct {
		NuevoEstado string `json:"nuevoEstado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := pc.Service.UpdateOrderStatus(pedidoCodigo, body.NuevoEstado, currentUserCode(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Estado del pedido actualizado", nil)
}

// ActualizarEstadoDetalle -> PUT /pedidos/actualizarEstadoDetalle/:DetalleCodigo
func (pc *PedidoController) ActualizarEstadoDetalle(c *gin.Context) {
	detalleCodigo := c.Param("DetalleCodigo")

	var body struct {
		NuevoEstado string `json:"nuevoEstado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := pc.Service.UpdateLineStatus(detalleCodigo, body.NuevoEstado); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Estado del detalle actualizado", nil)
}

// FinalizarPedido -> POST /pedidos/finalizar/:PedidoCodigo
func (pc *PedidoController) FinalizarPedido(c *gin.Context) {
	pedidoCodigo := c.Param("PedidoCodigo")

	var body struct {
		MetodoPagoCodigo string `json:"MetodoPagoCodigo"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := pc.Service.FinalizeOrder(pedidoCodigo, body.MetodoPagoCodigo, currentUserCode(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pedido "+pedidoCodigo+" finalizado", nil)
}

// ObtenerPorMesa -> GET /pedidos/obtenerPorMesas/:MesaCodigo
func (pc *PedidoController) ObtenerPorMesa(c *gin.Context) {
	mesaCodigo := c.Param("MesaCodigo")

	pedidos, err := pc.Service.GetOrdersForTable(mesaCodigo)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pedidos por mesa", pedidos)
}

// PedidosActivos -> GET /pedidos/activos
func (pc *PedidoController) PedidosActivos(c *gin.Context) {
	pedidos, err := pc.Service.ListActiveOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pedidos activos", pedidos)
}

// PedidosHoy -> GET /pedidos/hoy
func (pc *PedidoController) PedidosHoy(c *gin.Context) {
	pedidos, err := pc.Service.ListOrdersForToday()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pedidos de hoy", pedidos)
}

// TodosLosPedidos -> GET /pedidos/todos?page=&limit=
func (pc *PedidoController) TodosLosPedidos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	pedidos, err := pc.Service.ListAllOrders(page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Todos los pedidos", pedidos)
}
