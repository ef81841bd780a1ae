package dto

// Envelope uniforme de la API: los éxitos llevan {success: true, data: ...}
// (los listados añaden count) y los fallos {success: false, message: ...}.

// DataResponse respuesta exitosa con payload.
type DataResponse struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"` // detalle, solo en development
}

// OK arma una respuesta exitosa con data.
func OK(data interface{}) DataResponse {
	return DataResponse{Success: true, Data: data}
}

// OKCount arma una respuesta exitosa de listado con count.
func OKCount(count int, data interface{}) DataResponse {
	return DataResponse{Success: true, Count: &count, Data: data}
}

// OKMessage arma una respuesta exitosa solo con mensaje (ej. delete).
func OKMessage(message string) DataResponse {
	return DataResponse{Success: true, Message: message}
}

// Fail arma una respuesta de error con mensaje legible.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
