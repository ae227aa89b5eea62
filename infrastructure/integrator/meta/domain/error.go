package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

func (e *ErrorDetails) String() string {
	if e.ErrorSubcode != 0 {
		return fmt.Sprintf("%s (code %d, subcode %d): %s", e.Type, e.Code, e.ErrorSubcode, e.Message)
	}
	return fmt.Sprintf("%s (code %d): %s", e.Type, e.Code, e.Message)
}
