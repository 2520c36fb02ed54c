package dto

// PageRequest paginación para listados (skip/take como en la API pública).
type PageRequest struct {
	Skip int `query:"skip" validate:"min=0"`
	Take int `query:"take" validate:"min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Skip/Take son cero o negativos.
func (p *PageRequest) DefaultPage(defaultTake int) {
	if p.Take <= 0 {
		p.Take = defaultTake
	}
	if p.Take > 100 {
		p.Take = 100
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// SuccessResponse envoltura estándar de respuesta: {"success":true,"data":...}.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   *int `json:"count,omitempty"`
}

// OK construye la envoltura de éxito.
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// OKCount construye la envoltura de éxito con total de elementos (listados de movimientos).
func OKCount(data any, count int) SuccessResponse {
	return SuccessResponse{Success: true, Data: data, Count: &count}
}

// ErrorResponse cuerpo de error HTTP: {"error":"mensaje"}.
type ErrorResponse struct {
	Error string `json:"error"`
}
