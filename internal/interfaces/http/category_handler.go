package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       multipart/form-data
// @Produce      json
// @Param        image              formData  file    true  "Imagen de la categoría"
// @Param        name               formData  string  true  "Nombre (único)"
// @Param        description        formData  string  true  "Descripción"
// @Param        tax_applicability  formData  bool    true  "Aplica impuesto"
// @Param        tax                formData  number  true  "Impuesto"
// @Param        tax_type           formData  string  true  "percentage | fixed | none"
// @Success      201  {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	image, closeImage, err := formImage(c)
	if err != nil {
		return respondError(c, err)
	}
	defer closeImage()

	in := dto.CreateCategoryRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		TaxType:     formTaxTypePtr(c, "tax_type"),
	}
	if in.TaxApplicability, err = formBoolPtr(c, "tax_applicability"); err != nil {
		return respondError(c, err)
	}
	if in.Tax, err = formDecimalPtr(c, "tax"); err != nil {
		return respondError(c, err)
	}

	out, err := h.uc.Create(c.UserContext(), in, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByIdentifier godoc
// @Summary      Obtener categoría por ID o nombre
// @Tags         categories
// @Produce      json
// @Param        identifier  path  string  true  "UUID o nombre exacto"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{identifier} [get]
func (h *CategoryHandler) GetByIdentifier(c *fiber.Ctx) error {
	out, err := h.uc.GetByIDOrName(c.UserContext(), c.Params("identifier"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría (parcial)
// @Tags         categories
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true   "ID de la categoría"
// @Param        image  formData  file    false  "Imagen nueva (reemplaza la anterior)"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	image, closeImage, err := formImage(c)
	if err != nil {
		return respondError(c, err)
	}
	defer closeImage()

	in := dto.UpdateCategoryRequest{
		Name:        formStringPtr(c, "name"),
		Description: formStringPtr(c, "description"),
		TaxType:     formTaxTypePtr(c, "tax_type"),
	}
	if in.TaxApplicability, err = formBoolPtr(c, "tax_applicability"); err != nil {
		return respondError(c, err)
	}
	if in.Tax, err = formDecimalPtr(c, "tax"); err != nil {
		return respondError(c, err)
	}

	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in, image)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "categoría eliminada"})
}
