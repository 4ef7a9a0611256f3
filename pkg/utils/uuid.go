package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "abcdefghijklmnopqrstuvwxyz0123456789"

	// idLength segue o tamanho dos nomes gerados por hash no ERP
	idLength = 10
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
