package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreplus/ferreteria-api/internal/application/analytics"
	"github.com/ferreplus/ferreteria-api/internal/application/auth"
	"github.com/ferreplus/ferreteria-api/internal/application/usecase"
	"github.com/ferreplus/ferreteria-api/internal/domain/entity"
	"github.com/ferreplus/ferreteria-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	FerreteriaUC  *usecase.FerreteriaUseCase
	CategoriaUC   *usecase.CategoriaUseCase
	ProductoUC    *usecase.ProductoUseCase
	PedidoUC      *usecase.PedidoUseCase
	PedidoPDFUC   *usecase.PedidoPDFUseCase
	ClienteUC     *usecase.ClienteUseCase
	SuscripcionUC *usecase.SuscripcionUseCase
	VentasUC      *analytics.VentasUseCase
	JWTChain      jwt.Chain
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Directorio de ferreterías (lectura pública); mutaciones solo admin
	ferreterias := api.Group("/ferreterias")
	ferreteriaHandler := NewFerreteriaHandler(deps.FerreteriaUC)
	ferreterias.Get("/", ferreteriaHandler.List)
	ferreterias.Get("/:id", ferreteriaHandler.GetByID)
	ferreterias.Post("/", AuthMiddleware(deps.JWTChain), RequireRole(entity.RolAdmin), ferreteriaHandler.Create)
	ferreterias.Put("/:id", AuthMiddleware(deps.JWTChain), RequireRole(entity.RolAdmin), ferreteriaHandler.Update)
	ferreterias.Delete("/:id", AuthMiddleware(deps.JWTChain), RequireRole(entity.RolAdmin), ferreteriaHandler.Delete)

	// Categorías (lectura pública; mutaciones autenticadas)
	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Post("/", AuthMiddleware(deps.JWTChain), RequireRole(entity.RolAdmin), categoriaHandler.Create)
	categorias.Put("/:id", AuthMiddleware(deps.JWTChain), RequireRole(entity.RolAdmin), categoriaHandler.Update)
	categorias.Delete("/:id", AuthMiddleware(deps.JWTChain), RequireRole(entity.RolAdmin), categoriaHandler.Delete)

	// Planes (lectura pública)
	suscripcionHandler := NewSuscripcionHandler(deps.SuscripcionUC)
	api.Get("/planes", suscripcionHandler.ListPlanes)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTChain))

	// Productos (protegido, acotado a la ferretería del token)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", RequireRole(entity.RolAdmin), productoHandler.Delete)

	// Pedidos (protegido)
	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.PedidoPDFUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Get("/:id/pdf", pedidoHandler.DownloadPDF)
	pedidos.Put("/:id/estado", pedidoHandler.UpdateEstado)
	pedidos.Delete("/:id", RequireRole(entity.RolAdmin), pedidoHandler.Delete)

	// Clientes (protegido, solo admin)
	clientes := protected.Group("/clientes", RequireRole(entity.RolAdmin))
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Suscripciones (protegido)
	suscripcion := protected.Group("/suscripcion")
	suscripcion.Post("/get", suscripcionHandler.GetActiva)
	suscripcion.Post("/", RequireRole(entity.RolAdmin), suscripcionHandler.Suscribir)

	// Analítica (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.VentasUC)
	analyticsGroup.Get("/ventas", analyticsHandler.Ventas)
	analyticsGroup.Get("/top-productos", analyticsHandler.TopProductos)
	analyticsGroup.Get("/horas", analyticsHandler.PedidosPorHora)
	analyticsGroup.Get("/resumen", analyticsHandler.Resumen)
}
