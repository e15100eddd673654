package geo

import (
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// UnknownCountry é o nome devolvido para códigos vazios ou não mapeados
const UnknownCountry = "Unknown"

type Resolver struct {
	countries map[string]string
}

// NewResolver monta o resolver a partir de um mapa código -> país
func NewResolver(countries map[string]string) *Resolver {
	normalized := make(map[string]string, len(countries))
	for code, name := range countries {
		normalized[strings.ToUpper(strings.TrimSpace(code))] = name
	}
	return &Resolver{countries: normalized}
}

// LoadResolver lê o arquivo JSON de países. Um arquivo ausente ou inválido não
// impede a aplicação de subir: todos os códigos resolvem para Unknown.
func LoadResolver(path string) *Resolver {
	raw, err := os.ReadFile(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Warn("geo: country file not loaded, every geo resolves to Unknown")
		return NewResolver(nil)
	}

	var countries map[string]string
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &countries); err != nil {
		logrus.WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Warn("geo: invalid country file, every geo resolves to Unknown")
		return NewResolver(nil)
	}

	logrus.WithField("countries", len(countries)).Info("geo: country file loaded")
	return NewResolver(countries)
}

func (r *Resolver) CountryName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return UnknownCountry
	}
	if name, ok := r.countries[code]; ok {
		return name
	}
	return UnknownCountry
}
