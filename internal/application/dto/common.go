package dto

// PageRequest paginación para listados (page basado en 1).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Clamp normaliza page y limit: page mínimo 1, limit dentro de [1, 100]
// con el valor por defecto indicado.
func (p *PageRequest) Clamp(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// PageInfo metadatos de página calculados a partir del total.
type PageInfo struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"total_pages"`
	Offset     int  `json:"offset"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Paginate calcula los metadatos de página. Función pura: sin efectos ni I/O.
// El llamador garantiza page >= 1 y limit >= 1 (PageRequest.Clamp).
// TotalPages es ceil(total/limit) y vale 0 cuando total es 0.
func Paginate(total, page, limit int) PageInfo {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PageInfo{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Offset:     (page - 1) * limit,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // errores de validación por campo
}

// MessageResponse aviso de éxito que la capa de vista puede encolar como flash.
type MessageResponse struct {
	Message string `json:"message"`
}
