package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de autenticação (AUTH)
	ErrInvalidToken = "AUTH_001" // Token inválido
	ErrExpiredToken = "AUTH_002" // Token expirado

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNegativeValue       = "VAL_004" // Valor negativo não permitido

	// Erros de recurso (NF)
	ErrResourceNotFound = "NF_001" // Registro não encontrado

	// Erros de cálculo (CAL)
	ErrNoData = "CAL_001" // Dados insuficientes para calcular indicadores

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNegativeValue:       http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrNoData:              http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	WriteAPIError(w, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// WriteAPIError escreve um APIError já construído para a resposta HTTP
func WriteAPIError(w http.ResponseWriter, apiErr APIError) {
	status, exists := httpStatusMap[apiErr.Code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
