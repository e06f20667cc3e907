package utils

import (
	"fmt"
	"time"
)

// DateLayout é o formato de data usado em todo o projeto ("YYYY-MM-DD")
const DateLayout = "2006-01-02"

// GetLocation retorna a localização configurada para a aplicação.
// Deve ser usada em todo o projeto para obter o fuso horário padrão,
// garantindo consistência em todas as operações relacionadas a data e hora.
func GetLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		// Fallback para UTC se não conseguir carregar a localização
		location = time.FixedZone("UTC", 0)
	}
	return location
}

// ParseDate converte uma string "YYYY-MM-DD" para time.Time (meia-noite UTC)
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

// FormatDate formata a data no padrão "YYYY-MM-DD"
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays soma n dias a uma data "YYYY-MM-DD"
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// Today retorna a data atual no fuso informado
func Today(loc *time.Location) string {
	return FormatDate(time.Now().In(loc))
}

// GenerateDateRange gera um array de strings de datas no formato "YYYY-MM-DD"
// para todas as datas no intervalo from até to (inclusive)
func GenerateDateRange(from, to time.Time) []string {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return []string{}
	}

	// Normalizar as datas para início do dia
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	result := []string{}
	for current := from; !current.After(to); current = current.AddDate(0, 0, 1) {
		result = append(result, current.Format(DateLayout))
	}

	return result
}

// DaysFrom retorna n datas consecutivas começando em start
func DaysFrom(start string, n int) ([]string, error) {
	if n < 1 {
		return []string{}, nil
	}
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	return GenerateDateRange(from, from.AddDate(0, 0, n-1)), nil
}
