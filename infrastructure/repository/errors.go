package repository

import "github.com/pkg/errors"

// ErrNotFound indica que o registro referenciado não existe na coleção.
// Os casos de uso traduzem esse erro para o código apropriado da API.
var ErrNotFound = errors.New("registro não encontrado")
