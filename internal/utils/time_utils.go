package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTime é retornado (via errors.Is) para qualquer horário fora do formato "HH:MM"
var ErrMalformedTime = errors.New("malformed time")

// MalformedTimeError indica um horário que não pôde ser interpretado como "HH:MM"
type MalformedTimeError struct {
	Value  string
	Reason string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: %s", e.Value, e.Reason)
}

func (e *MalformedTimeError) Is(target error) bool {
	return target == ErrMalformedTime
}

// ParseClock interpreta "HH:MM" (ou "HH:MM:SS", como o Postgres devolve colunas time).
// A hora aceita um ou dois dígitos ("7:05"); minutos e segundos exigem dois.
// Os segundos são ignorados.
func ParseClock(value string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, &MalformedTimeError{Value: value, Reason: "expected HH:MM"}
	}

	hour, err := parseClockField(parts[0], 1)
	if err != nil || hour > 23 {
		return 0, 0, &MalformedTimeError{Value: value, Reason: "hour must be 00-23"}
	}

	minute, err := parseClockField(parts[1], 2)
	if err != nil || minute > 59 {
		return 0, 0, &MalformedTimeError{Value: value, Reason: "minute must be 00-59"}
	}

	if len(parts) == 3 {
		second, err := parseClockField(parts[2], 2)
		if err != nil || second > 59 {
			return 0, 0, &MalformedTimeError{Value: value, Reason: "second must be 00-59"}
		}
	}

	return hour, minute, nil
}

// parseClockField aceita só dígitos ASCII, entre minDigits e 2
func parseClockField(field string, minDigits int) (int, error) {
	if len(field) < minDigits || len(field) > 2 {
		return 0, fmt.Errorf("bad field %q", field)
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, fmt.Errorf("bad field %q", field)
		}
	}
	return strconv.Atoi(field)
}

// ToHourFraction converte "HH:MM" para hora do dia arredondada para meia hora:
// minutos >= 30 viram 0.5, abaixo disso são descartados.
func ToHourFraction(value string) (float64, error) {
	hour, minute, err := ParseClock(value)
	if err != nil {
		return 0, err
	}
	fraction := float64(hour)
	if minute >= 30 {
		fraction += 0.5
	}
	return fraction, nil
}

// ClockMinutes retorna os minutos desde a meia-noite, sem arredondamento
func ClockMinutes(value string) (int, error) {
	hour, minute, err := ParseClock(value)
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// FormatClock formata hora e minuto como "HH:MM"
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
