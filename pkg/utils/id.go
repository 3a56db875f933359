package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID gera um identificador curto para correlacionar os logs de uma
// execução do agendador.
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
