package ports

import (
	"context"
	"errors"
)

// Fallos tipados del clasificador. El gateway traduce cualquier error del
// proveedor a uno de estos valores; la capa de aplicación decide la política
// (reintento, degradar a categoría ausente) según el tipo.
var (
	// ErrClassifierUnavailable el servicio remoto no es alcanzable (red, DNS, 5xx).
	ErrClassifierUnavailable = errors.New("clasificador no disponible")
	// ErrClassifierTimeout el servicio no respondió dentro del plazo configurado.
	ErrClassifierTimeout = errors.New("clasificador excedió el tiempo de espera")
	// ErrUnrecognizedImage el modelo no pudo interpretar la imagen referenciada.
	ErrUnrecognizedImage = errors.New("imagen no reconocida por el clasificador")
	// ErrNoMatch el modelo respondió pero con confianza insuficiente.
	ErrNoMatch = errors.New("el clasificador no encontró categoría con confianza suficiente")
)

// ImageClassifier define el puerto de salida hacia el modelo de visión.
// Cualquier adaptador (Gemini, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la capa de
// aplicación solo conoce este contrato, no la implementación concreta.
type ImageClassifier interface {
	// Classify recibe la referencia de imagen de un artículo y devuelve la
	// etiqueta de categoría asignada por el modelo, o uno de los fallos
	// tipados de este paquete. No reintenta internamente y no tiene efectos
	// secundarios. El contexto debe llevar un timeout para evitar bloqueos
	// en llamadas externas.
	Classify(ctx context.Context, imageRef string) (string, error)
}
