package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	SubCategoryUC *usecase.SubCategoryUseCase
	ItemUC        *usecase.ItemUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:identifier", categoryHandler.GetByIdentifier)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	subcategories := api.Group("/subcategories")
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC)
	subcategories.Post("/", subCategoryHandler.Create)
	subcategories.Get("/", subCategoryHandler.List)
	subcategories.Get("/category/:categoryId", subCategoryHandler.ListByCategory)
	subcategories.Get("/:identifier", subCategoryHandler.GetByIdentifier)
	subcategories.Put("/:id", subCategoryHandler.Update)
	subcategories.Delete("/:id", subCategoryHandler.Delete)

	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	// /search va antes de /:identifier para que no lo capture la ruta genérica
	items.Get("/search", itemHandler.Search)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/category/:categoryId", itemHandler.ListByCategory)
	items.Get("/subcategory/:subCategoryId", itemHandler.ListBySubCategory)
	items.Get("/:identifier", itemHandler.GetByIdentifier)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
}
