package utils

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/text/unicode/norm"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// IDLength é o tamanho dos IDs de vendedores, produtos e pedidos
const IDLength = 16

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, IDLength)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify gera o slug usado em URLs de produtos e categorias ("Camisa Básica" -> "camisa-basica")
func Slugify(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))

	var b strings.Builder
	for _, r := range decomposed {
		// descarta acentos (marcas combinantes)
		if r >= 0x0300 && r <= 0x036f {
			continue
		}
		b.WriteRune(r)
	}

	return strings.Trim(nonSlugChars.ReplaceAllString(b.String(), "-"), "-")
}
