package dto

// Response envoltorio uniforme de las respuestas exitosas.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// OK construye una respuesta exitosa.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// ErrorResponse cuerpo de error HTTP. Message es un texto estable; nunca el error interno.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
