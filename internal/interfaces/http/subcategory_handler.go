package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// SubCategoryHandler maneja las peticiones HTTP para SubCategory.
type SubCategoryHandler struct {
	uc *usecase.SubCategoryUseCase
}

// NewSubCategoryHandler construye el handler.
func NewSubCategoryHandler(uc *usecase.SubCategoryUseCase) *SubCategoryHandler {
	return &SubCategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategories
// @Accept       multipart/form-data
// @Produce      json
// @Param        image        formData  file    true  "Imagen de la subcategoría"
// @Param        name         formData  string  true  "Nombre"
// @Param        description  formData  string  true  "Descripción"
// @Param        category_id  formData  string  true  "Categoría padre"
// @Param        tax_applicability  formData  bool    false  "Omitido = heredado del padre"
// @Param        tax                formData  number  false  "Omitido = heredado del padre"
// @Param        tax_type           formData  string  false  "Omitido = heredado del padre"
// @Success      201  {object}  dto.SubCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories [post]
func (h *SubCategoryHandler) Create(c *fiber.Ctx) error {
	image, closeImage, err := formImage(c)
	if err != nil {
		return respondError(c, err)
	}
	defer closeImage()

	in := dto.CreateSubCategoryRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		CategoryID:  c.FormValue("category_id"),
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
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Produce      json
// @Success      200  {object}  dto.SubCategoryListResponse
// @Router       /api/subcategories [get]
func (h *SubCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Listar subcategorías de una categoría
// @Tags         subcategories
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.SubCategoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/category/{categoryId} [get]
func (h *SubCategoryHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByIdentifier godoc
// @Summary      Obtener subcategoría por ID o nombre
// @Tags         subcategories
// @Produce      json
// @Param        identifier  path  string  true  "UUID o nombre exacto"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{identifier} [get]
func (h *SubCategoryHandler) GetByIdentifier(c *fiber.Ctx) error {
	out, err := h.uc.GetByIDOrName(c.UserContext(), c.Params("identifier"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar subcategoría (parcial)
// @Tags         subcategories
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true   "ID de la subcategoría"
// @Param        image  formData  file    false  "Imagen nueva (reemplaza la anterior)"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [put]
func (h *SubCategoryHandler) Update(c *fiber.Ctx) error {
	image, closeImage, err := formImage(c)
	if err != nil {
		return respondError(c, err)
	}
	defer closeImage()

	in := dto.UpdateSubCategoryRequest{
		Name:        formStringPtr(c, "name"),
		Description: formStringPtr(c, "description"),
		CategoryID:  formStringPtr(c, "category_id"),
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
// @Summary      Eliminar subcategoría
// @Tags         subcategories
// @Produce      json
// @Param        id  path  string  true  "ID de la subcategoría"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [delete]
func (h *SubCategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "subcategoría eliminada"})
}
