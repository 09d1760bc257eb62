package http

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
)

// La actualización parcial depende de distinguir "clave ausente" de "clave
// con valor vacío": estos tests fijan esa semántica sobre multipart real.

func multipartRequest(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		fw, err := w.CreateFormFile("image", "foto.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png!"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestFormStringPtr_PresenceSemantics(t *testing.T) {
	var name, description *string

	app := fiber.New()
	app.Post("/x", func(c *fiber.Ctx) error {
		name = formStringPtr(c, "name")
		description = formStringPtr(c, "description")
		return c.SendStatus(fiber.StatusOK)
	})

	// name viene vacío (presente), description no viene.
	body, contentType := multipartRequest(t, map[string]string{"name": ""}, false)
	req := httptest.NewRequest("POST", "/x", body)
	req.Header.Set("Content-Type", contentType)

	_, err := app.Test(req)
	require.NoError(t, err)

	require.NotNil(t, name, "clave presente con valor vacío produce puntero")
	assert.Empty(t, *name)
	assert.Nil(t, description, "clave ausente produce nil")
}

func TestFormBoolAndDecimalPtr(t *testing.T) {
	var (
		gotBool    *bool
		gotDecimal string
		gotErr     error
	)

	app := fiber.New()
	app.Post("/x", func(c *fiber.Ctx) error {
		b, err := formBoolPtr(c, "tax_applicability")
		if err != nil {
			gotErr = err
			return c.SendStatus(fiber.StatusOK)
		}
		d, err := formDecimalPtr(c, "tax")
		if err != nil {
			gotErr = err
			return c.SendStatus(fiber.StatusOK)
		}
		gotBool = b
		if d != nil {
			gotDecimal = d.String()
		}
		return c.SendStatus(fiber.StatusOK)
	})

	body, contentType := multipartRequest(t, map[string]string{
		"tax_applicability": "true",
		"tax":               "5.5",
	}, false)
	req := httptest.NewRequest("POST", "/x", body)
	req.Header.Set("Content-Type", contentType)

	_, err := app.Test(req)
	require.NoError(t, err)
	require.NoError(t, gotErr)
	require.NotNil(t, gotBool)
	assert.True(t, *gotBool)
	assert.Equal(t, "5.5", gotDecimal)
}

func TestFormImage(t *testing.T) {
	var got *ports.ImageUpload

	app := fiber.New()
	app.Post("/x", func(c *fiber.Ctx) error {
		up, closeImage, err := formImage(c)
		if err != nil {
			return err
		}
		defer closeImage()
		got = up
		return c.SendStatus(fiber.StatusOK)
	})

	body, contentType := multipartRequest(t, nil, true)
	req := httptest.NewRequest("POST", "/x", body)
	req.Header.Set("Content-Type", contentType)

	_, err := app.Test(req)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "foto.png", got.Filename)
	assert.EqualValues(t, 4, got.Size)
}

func TestFormImage_AbsentFileIsNil(t *testing.T) {
	var got *ports.ImageUpload

	app := fiber.New()
	app.Post("/x", func(c *fiber.Ctx) error {
		up, closeImage, err := formImage(c)
		if err != nil {
			return err
		}
		defer closeImage()
		got = up
		return c.SendStatus(fiber.StatusOK)
	})

	body, contentType := multipartRequest(t, map[string]string{"name": "x"}, false)
	req := httptest.NewRequest("POST", "/x", body)
	req.Header.Set("Content-Type", contentType)

	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Nil(t, got)
}
