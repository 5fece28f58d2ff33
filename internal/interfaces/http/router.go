package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invenmovil/inventario-api/internal/application/auth"
	"github.com/invenmovil/inventario-api/internal/application/equipment"
	"github.com/invenmovil/inventario-api/internal/application/inventory"
	"github.com/invenmovil/inventario-api/internal/application/profile"
	"github.com/invenmovil/inventario-api/internal/application/report"
	"github.com/invenmovil/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProfileUC    *profile.ProfileUseCase
	InventarioUC *inventory.InventarioUseCase
	EquipoUC     *equipment.EquipoUseCase
	ReportUC     *report.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/reset-password/confirm", authHandler.ConfirmReset)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil propio (protegido)
	protected.Get("/auth/me", authHandler.Me)
	perfil := protected.Group("/perfil")
	perfilHandler := NewPerfilHandler(deps.ProfileUC)
	perfil.Put("/nombre", perfilHandler.UpdateName)
	perfil.Put("/password", perfilHandler.ChangePassword)
	perfil.Post("/verificar-password", perfilHandler.VerifyPassword)
	perfil.Put("/email", perfilHandler.UpdateEmail)

	// Inventarios (protegido; cada usuario ve los suyos)
	inventarios := protected.Group("/inventarios")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC, deps.AuthUC)
	inventarios.Post("/", inventarioHandler.Create)
	inventarios.Get("/", inventarioHandler.List)
	inventarios.Get("/:id", inventarioHandler.GetByID)

	// Equipos, anidados bajo su inventario (protegido)
	equipoHandler := NewEquipoHandler(deps.EquipoUC, deps.InventarioUC)
	inventarios.Get("/:id/equipos", equipoHandler.List)
	inventarios.Post("/:id/equipos", equipoHandler.Create)
	inventarios.Get("/:id/equipos/:equipoId", equipoHandler.Get)
	inventarios.Put("/:id/equipos/:equipoId", equipoHandler.Update)
	inventarios.Delete("/:id/equipos/:equipoId", equipoHandler.Delete)

	// Admin (protegido + rol admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/inventarios", inventarioHandler.ListAll)
	reporteHandler := NewReporteHandler(deps.ReportUC)
	admin.Get("/inventarios/:id/reporte", reporteHandler.Download)
}
