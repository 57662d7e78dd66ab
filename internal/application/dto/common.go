package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResultResponse respuesta de operaciones que solo confirman ejecución
// (compra). Mantiene la forma {"result": true} que esperan los clientes.
type ResultResponse struct {
	Result bool `json:"result"`
}
