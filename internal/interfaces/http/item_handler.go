package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP para Item.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ítem
// @Tags         items
// @Accept       multipart/form-data
// @Produce      json
// @Param        image           formData  file    true   "Imagen del ítem"
// @Param        name            formData  string  true   "Nombre"
// @Param        description     formData  string  true   "Descripción"
// @Param        category_id     formData  string  true   "Categoría"
// @Param        subcategory_id  formData  string  false  "Subcategoría (debe pertenecer a la categoría)"
// @Param        base_amount     formData  number  true   "Precio base"
// @Param        discount        formData  number  false  "Descuento (default 0)"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	image, closeImage, err := formImage(c)
	if err != nil {
		return respondError(c, err)
	}
	defer closeImage()

	in := dto.CreateItemRequest{
		Name:          c.FormValue("name"),
		Description:   c.FormValue("description"),
		CategoryID:    c.FormValue("category_id"),
		SubCategoryID: formStringPtr(c, "subcategory_id"),
		TaxType:       formTaxTypePtr(c, "tax_type"),
	}
	if in.TaxApplicability, err = formBoolPtr(c, "tax_applicability"); err != nil {
		return respondError(c, err)
	}
	if in.Tax, err = formDecimalPtr(c, "tax"); err != nil {
		return respondError(c, err)
	}
	if in.BaseAmount, err = formDecimalPtr(c, "base_amount"); err != nil {
		return respondError(c, err)
	}
	if in.Discount, err = formDecimalPtr(c, "discount"); err != nil {
		return respondError(c, err)
	}

	out, err := h.uc.Create(c.UserContext(), in, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ítems
// @Tags         items
// @Produce      json
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Listar ítems de una categoría
// @Tags         items
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/category/{categoryId} [get]
func (h *ItemHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBySubCategory godoc
// @Summary      Listar ítems de una subcategoría
// @Tags         items
// @Produce      json
// @Param        subCategoryId  path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/subcategory/{subCategoryId} [get]
func (h *ItemHandler) ListBySubCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListBySubCategory(c.UserContext(), c.Params("subCategoryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar ítems por nombre y descripción
// @Tags         items
// @Produce      json
// @Param        q  query  string  true  "Texto a buscar"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items/search [get]
func (h *ItemHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByIdentifier godoc
// @Summary      Obtener ítem por ID o nombre
// @Tags         items
// @Produce      json
// @Param        identifier  path  string  true  "UUID o nombre exacto"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{identifier} [get]
func (h *ItemHandler) GetByIdentifier(c *fiber.Ctx) error {
	out, err := h.uc.GetByIDOrName(c.UserContext(), c.Params("identifier"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem (parcial)
// @Tags         items
// @Accept       multipart/form-data
// @Produce      json
// @Param        id              path      string  true   "ID del ítem"
// @Param        image           formData  file    false  "Imagen nueva (reemplaza la anterior)"
// @Param        subcategory_id  formData  string  false  "Vacío = quitar subcategoría"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	image, closeImage, err := formImage(c)
	if err != nil {
		return respondError(c, err)
	}
	defer closeImage()

	in := dto.UpdateItemRequest{
		Name:          formStringPtr(c, "name"),
		Description:   formStringPtr(c, "description"),
		CategoryID:    formStringPtr(c, "category_id"),
		SubCategoryID: formStringPtr(c, "subcategory_id"),
		TaxType:       formTaxTypePtr(c, "tax_type"),
	}
	if in.TaxApplicability, err = formBoolPtr(c, "tax_applicability"); err != nil {
		return respondError(c, err)
	}
	if in.Tax, err = formDecimalPtr(c, "tax"); err != nil {
		return respondError(c, err)
	}
	if in.BaseAmount, err = formDecimalPtr(c, "base_amount"); err != nil {
		return respondError(c, err)
	}
	if in.Discount, err = formDecimalPtr(c, "discount"); err != nil {
		return respondError(c, err)
	}

	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ítem eliminado"})
}
