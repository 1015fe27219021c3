package clientservice

// Client модель клиента из справочника CRM
type ClientInfo struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CompanyName *string `json:"company_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// DisplayName возвращает имя для отображения в отчетах о конфликтах
func (c *ClientInfo) DisplayName() string {
	if c.CompanyName != nil && *c.CompanyName != "" {
		return *c.CompanyName
	}
	return c.Name
}

// ErrorResponse модель ошибки от справочника клиентов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
