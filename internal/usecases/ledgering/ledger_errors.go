package ledgering

import "github.com/pkg/errors"

// Erros específicos para o contexto do livro-razão
var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrNegativeValue       = errors.New("preço e prazo de pagamento não podem ser negativos")
	ErrMissingDate         = errors.New("data do lançamento é obrigatória")

	// Erros de recurso
	ErrEntryNotFound = errors.New("lançamento não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
