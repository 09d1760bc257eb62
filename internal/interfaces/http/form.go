package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// Las peticiones de escritura del catálogo llegan como multipart (imagen +
// campos). La actualización es parcial: un campo cuenta solo si su clave
// vino en el formulario, de ahí los helpers de presencia -> puntero.

// formImage extrae la imagen de la petición. Devuelve (nil, noop, nil) si
// la petición no trae archivo; el cierre del archivo queda a cargo del
// closure devuelto.
func formImage(c *fiber.Ctx) (*ports.ImageUpload, func(), error) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("abrir imagen subida: %w", err)
	}
	up := &ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}
	return up, func() { _ = f.Close() }, nil
}

// formValue devuelve el valor de un campo y si la clave vino en la petición.
func formValue(c *fiber.Ctx, key string) (string, bool) {
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if vals, ok := form.Value[key]; ok && len(vals) > 0 {
			return vals[0], true
		}
		return "", false
	}
	if c.Request().PostArgs().Has(key) {
		return string(c.Request().PostArgs().Peek(key)), true
	}
	return "", false
}

func formStringPtr(c *fiber.Ctx, key string) *string {
	if v, ok := formValue(c, key); ok {
		return &v
	}
	return nil
}

func formBoolPtr(c *fiber.Ctx, key string) (*bool, error) {
	v, ok := formValue(c, key)
	if !ok {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser booleano", domain.ErrValidation, key)
	}
	return &b, nil
}

func formDecimalPtr(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	v, ok := formValue(c, key)
	if !ok {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser numérico", domain.ErrValidation, key)
	}
	return &d, nil
}

func formTaxTypePtr(c *fiber.Ctx, key string) *entity.TaxType {
	if v, ok := formValue(c, key); ok {
		t := entity.TaxType(v)
		return &t
	}
	return nil
}
