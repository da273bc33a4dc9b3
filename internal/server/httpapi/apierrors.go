package httpapi

import "github.com/gin-gonic/gin"

// APIError is the wire form of a single rejection. The title/description
// strings are part of the public contract and are asserted verbatim by the
// test-suite; do not edit them casually.
type APIError struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	errValidation         = APIError{Title: "Error !", Description: "Todos los campos son obligatorios."}
	errPasswordMismatch   = APIError{Title: "Error con Contraseñas!", Description: "Las Contraseñas no coinciden."}
	errEmailTaken         = APIError{Title: "Error !", Description: "El email ya está registrado."}
	errUserNotFound       = APIError{Title: "Error !", Description: "Usuario no encontrado."}
	errInvalidCredentials = APIError{Title: "Usuario y Contraseña invalidos !", Description: "El Usuario o la Contraseña no existen."}
	errNoTokenSupplied    = APIError{Title: "No autorizado !", Description: "Token no enviado."}
	errNotAuthorized      = APIError{Title: "No autorizado !", Description: "Por favor, inicie sesión."}
	errInternal           = APIError{Title: "Error !", Description: "Error interno del servidor."}
)

// fail writes the structured rejection payload and stops the handler chain.
func fail(c *gin.Context, status int, errs ...APIError) {
	c.AbortWithStatusJSON(status, gin.H{"errors": errs})
}
