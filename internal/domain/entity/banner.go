package entity

import "time"

// Banner imagen promocional del carrusel de la página principal.
// Solo lectura desde la API; el contenido lo administra otro proceso.
type Banner struct {
	ID        string
	ImageURL  string
	CreatedAt time.Time
}
