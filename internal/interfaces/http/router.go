package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sport-stock-api/internal/application/auth"
	"github.com/jhoicas/sport-stock-api/internal/application/stock"
	"github.com/jhoicas/sport-stock-api/internal/application/usecase"
	"github.com/jhoicas/sport-stock-api/internal/domain/entity"
	"github.com/jhoicas/sport-stock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC     *usecase.MaterialUseCase
	RecordMovement *stock.RecordMovementUseCase
	Ledger         *stock.LedgerUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Materials (protegido; eliminar solo admin)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.Log)
	materials.Get("/", materialHandler.List)
	materials.Post("/", materialHandler.Create)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", RequireRole(entity.RoleAdmin), materialHandler.Delete)

	// Movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RecordMovement, deps.Ledger, deps.Log)
	movements.Post("/", movementHandler.Record)
	movements.Get("/", movementHandler.List)
}
