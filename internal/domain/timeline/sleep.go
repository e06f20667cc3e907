package timeline

import (
	"fmt"

	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
)

// SleepEventType é o tipo de evento registrado no diário de sono
type SleepEventType string

const (
	FallAsleep SleepEventType = "fall_asleep"
	WakeUp     SleepEventType = "wake_up"
)

// Valid informa se o tipo é conhecido
func (t SleepEventType) Valid() bool {
	return t == FallAsleep || t == WakeUp
}

// SleepEvent é um evento do diário ("HH:MM")
type SleepEvent struct {
	Type SleepEventType `json:"type"`
	Time string         `json:"time"`
}

// SleepInterval é um período de sono em horas do dia do registro (End pode passar de 24)
type SleepInterval struct {
	Date      string  `json:"date"`
	StartHour float64 `json:"start_hour"`
	EndHour   float64 `json:"end_hour"`
}

// Hours retorna a duração do intervalo
func (i SleepInterval) Hours() float64 {
	return i.EndHour - i.StartHour
}

// ValidateEvents verifica tipo e horário de cada evento
func ValidateEvents(events []SleepEvent) error {
	for i, e := range events {
		if !e.Type.Valid() {
			return fmt.Errorf("event %d: unknown type %q", i, e.Type)
		}
		if _, _, err := utils.ParseClock(e.Time); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

// SleepIntervals pareia cada fall_asleep com o wake_up seguinte, na ordem
// em que o usuário registrou. Eventos sem par são ignorados. Usa a mesma
// regra de virada de dia dos turnos: fim <= início soma 24h.
func SleepIntervals(date string, events []SleepEvent) ([]SleepInterval, error) {
	if err := ValidateEvents(events); err != nil {
		return nil, err
	}

	intervals := []SleepInterval{}
	var open *SleepEvent
	for i := range events {
		event := events[i]
		switch event.Type {
		case FallAsleep:
			open = &event
		case WakeUp:
			if open == nil {
				continue
			}
			start, _ := minutesAsHours(open.Time)
			end, _ := minutesAsHours(event.Time)
			if end <= start {
				end += HoursPerDay
			}
			intervals = append(intervals, SleepInterval{Date: date, StartHour: start, EndHour: end})
			open = nil
		}
	}
	return intervals, nil
}

// TotalSleepHours soma as horas de sono registradas em events
func TotalSleepHours(events []SleepEvent) (float64, error) {
	intervals, err := SleepIntervals("", events)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, i := range intervals {
		total += i.Hours()
	}
	return total, nil
}

func minutesAsHours(clock string) (float64, error) {
	minutes, err := utils.ClockMinutes(clock)
	if err != nil {
		return 0, err
	}
	return float64(minutes) / 60, nil
}
