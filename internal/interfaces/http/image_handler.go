package http

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/market-api/internal/application/dto"
)

// ImageHandler recibe imágenes de artículos y las deja en el directorio que
// sirve la capa estática. El nombre se prefija con un UUID para evitar
// colisiones entre vendedores que suben archivos con el mismo nombre.
type ImageHandler struct {
	uploadDir string
}

// NewImageHandler construye el handler. uploadDir es relativo al working dir
// (por defecto "uploads").
func NewImageHandler(uploadDir string) *ImageHandler {
	return &ImageHandler{uploadDir: uploadDir}
}

// Upload godoc
// @Summary      Subir imagen de un artículo
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Imagen del artículo"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /image [post]
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo image"})
	}

	name := fmt.Sprintf("%s-%s", uuid.New().String(), filepath.Base(file.Filename))
	dest := filepath.Join(h.uploadDir, name)
	if err := c.SaveFile(file, dest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar la imagen"})
	}

	// La URL devuelta es la referencia opaca que luego viaja en POST /products.
	return c.JSON(dto.UploadResponse{ImageURL: filepath.ToSlash(dest)})
}
