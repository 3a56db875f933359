package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string) string {
	t.Helper()

	token := jwt.New(jwt.SigningMethodHS256)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		secret         string
		path           string
		method         string
		authorization  string
		expectedStatus int
	}{
		{
			name:           "Secret vazio desabilita a verificação",
			secret:         "",
			path:           "/v1/indicators",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Healthcheck nunca exige token",
			secret:         "segredo",
			path:           "/healthcheck",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight OPTIONS passa sem token",
			secret:         "segredo",
			path:           "/v1/indicators",
			method:         http.MethodOptions,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem header Authorization",
			secret:         "segredo",
			path:           "/v1/indicators",
			method:         http.MethodGet,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token assinado com outro secret",
			secret:         "segredo",
			path:           "/v1/indicators",
			method:         http.MethodGet,
			authorization:  "Bearer token-invalido",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(tt.secret)(okHandler)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}

	t.Run("Token válido passa", func(t *testing.T) {
		handler := AuthMiddleware("segredo")(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/v1/indicators", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "segredo"))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
