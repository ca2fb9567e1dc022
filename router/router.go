package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restobar-app/backend/controllers"
	"github.com/restobar-app/backend/middlewares"
	"github.com/restobar-app/backend/ws"
)

// SetupRouter wires every HTTP surface. The hub doubles as the change
// notifier the write paths use.
func SetupRouter(db *gorm.DB, hub *ws.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	usuarioCtrl := controllers.NewUsuarioController(db)
	mesaCtrl := controllers.NewMesaController(db, hub)
	categoriaCtrl := controllers.NewCategoriaController(db)
	menuCtrl := controllers.NewMenuController(db, hub)
	insumoCtrl := controllers.NewInsumoController(db)
	pedidoCtrl := controllers.NewPedidoController(db, hub)
	reporteCtrl := controllers.NewReporteController(db)
	wsCtrl := controllers.NewWSController(hub)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", usuarioCtrl.Register)
		auth.POST("/login", usuarioCtrl.Login)
		auth.POST("/logout", usuarioCtrl.Logout)
	}

	// Carta pública: el cliente en mesa consulta sin token.
	r.GET("/categorias/mostrarCategorias", categoriaCtrl.MostrarCategorias)
	r.GET("/menus/lista", menuCtrl.ListaMenus)
	r.GET("/menus/obtener/:MenuCodigo", menuCtrl.ObtenerMenu)
	r.GET("/mesas/obtener", mesaCtrl.ObtenerMesas)

	// WebSocket con autenticación por query token.
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("", wsCtrl.Handler)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	priv := r.Group("/")
	priv.Use(middlewares.AuthMiddleware())

	// PEDIDOS
	pedidos := priv.Group("/pedidos")
	{
		pedidos.POST("/crearPedido", middlewares.RequireRoles("mesero"), pedidoCtrl.CrearPedido)
		pedidos.DELETE("/eliminar/:PedidoCodigo", middlewares.RequireRoles("mesero"), pedidoCtrl.EliminarPedido)
		pedidos.PUT("/actualizarEstadoPedido/:PedidoCodigo", middlewares.RequireRoles("mesero", "cocinero"), pedidoCtrl.ActualizarEstadoPedido)
		pedidos.PUT("/actualizarEstadoDetalle/:DetalleCodigo", middlewares.RequireRoles("mesero", "cocinero"), pedidoCtrl.ActualizarEstadoDetalle)
		pedidos.POST("/finalizar/:PedidoCodigo", middlewares.RequireRoles("mesero"), pedidoCtrl.FinalizarPedido)
		pedidos.GET("/obtenerPorMesas/:MesaCodigo", pedidoCtrl.ObtenerPorMesa)
		pedidos.GET("/activos", pedidoCtrl.PedidosActivos)
		pedidos.GET("/hoy", pedidoCtrl.PedidosHoy)
		pedidos.GET("/todos", pedidoCtrl.TodosLosPedidos)
	}

	// INSUMOS (inventario)
	insumos := priv.Group("/insumos")
	{
		insumos.POST("/agregarInsumo", insumoCtrl.AgregarInsumo)
		insumos.GET("/ListaInsumos", insumoCtrl.ListaInsumos)
		insumos.PUT("/actualizarInsumo", insumoCtrl.ActualizarInsumo)
	}

	// MENÚS (gestión, solo admin)
	menus := priv.Group("/menus")
	menus.Use(middlewares.RequireRoles())
	{
		menus.POST("/crear", menuCtrl.CrearMenu)
		menus.PUT("/actualizar/:MenuCodigo", menuCtrl.ActualizarMenu)
		menus.DELETE("/eliminar/:MenuCodigo", menuCtrl.EliminarMenu)
	}

	// CATEGORÍAS (gestión, solo admin)
	categorias := priv.Group("/categorias")
	categorias.Use(middlewares.RequireRoles())
	{
		categorias.POST("/agregarCategoria", categoriaCtrl.AgregarCategoria)
		categorias.PUT("/actualizar/:CategoriaCodigo", categoriaCtrl.ActualizarCategoria)
	}

	// MESAS
	mesas := priv.Group("/mesas")
	{
		mesas.POST("/crear", middlewares.RequireRoles(), mesaCtrl.CrearMesa)
		mesas.PUT("/actualizar", middlewares.RequireRoles("mesero"), mesaCtrl.ActualizarEstadoMesa)
	}

	// USUARIOS
	usuarios := priv.Group("/usuarios")
	{
		usuarios.GET("/infoUser", usuarioCtrl.InfoUser)
		usuarios.GET("/listarUsuarios", usuarioCtrl.ListarUsuarios)
	}

	// REPORTES (solo admin)
	reportes := priv.Group("/reportes")
	reportes.Use(middlewares.RequireRoles())
	{
		reportes.GET("/ventasHoy", reporteCtrl.VentasHoy)
		reportes.GET("/resumenAnual", reporteCtrl.ResumenAnual)
	}

	return r
}
