package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro do relatório de campanhas
const (
	// Erros de validação (2000-2999)
	ErrInvalidDateFormat = "VAL_001" // Formato de data inválido em since/until

	// Erros do servidor (5000-5999)
	ErrInternalServer       = "SRV_001" // Erro interno do servidor
	ErrMissingConfiguration = "SRV_002" // Credencial ou conta de anúncios ausente
	ErrUpstreamUnavailable  = "SRV_003" // Falha ao listar campanhas na API do Meta
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidDateFormat:    http.StatusBadRequest,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrMissingConfiguration: http.StatusInternalServerError,
	ErrUpstreamUnavailable:  http.StatusInternalServerError,
}

// APIError é o envelope de erro consumido pelo dashboard
type APIError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Success: false,
		Error:   message,
		Code:    code,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
