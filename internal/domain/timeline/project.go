package timeline

import (
	"fmt"

	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
)

// span é um bloco ainda não recortado, ancorado na data de origem
type span struct {
	Type     BlockType
	Date     string
	Row      int
	Start    float64
	End      float64
	IsCircle bool
}

// shiftSpan converte um turno em um bloco da linha 5. Horários são
// arredondados para meia hora; fim <= início vira fim + 24 (turno noturno).
func shiftSpan(shift ShiftInterval, row int) (span, error) {
	start, err := utils.ToHourFraction(shift.StartTime)
	if err != nil {
		return span{}, fmt.Errorf("shift on %s: %w", shift.Date, err)
	}
	end, err := utils.ToHourFraction(shift.EndTime)
	if err != nil {
		return span{}, fmt.Errorf("shift on %s: %w", shift.Date, err)
	}
	if end <= start {
		end += HoursPerDay
	}
	return span{Type: BlockShift, Date: shift.Date, Row: row, Start: start, End: end}, nil
}

// spansFor monta os blocos originados em date: faixas primeiro, turnos depois
func spansFor(date string, shifts []ShiftInterval, bands []Band, shiftRow int) ([]span, error) {
	spans := make([]span, 0, len(bands)+len(shifts))
	for _, b := range bands {
		spans = append(spans, span{
			Type:     b.Type,
			Date:     date,
			Row:      b.Row,
			Start:    b.StartHour,
			End:      b.EndHour,
			IsCircle: b.IsCircle,
		})
	}

	for _, shift := range shifts {
		if shift.Date != date {
			continue
		}
		s, err := shiftSpan(shift, shiftRow)
		if err != nil {
			return nil, err
		}
		spans = append(spans, s)
	}

	return spans, nil
}

// ProjectDay retorna os blocos visíveis em date: os que começam no dia
// (recortados em 24h) seguidos dos pedaços que vêm do dia anterior.
// shifts pode conter turnos de qualquer data; só date e date-1 são usados.
// Turnos sobrepostos nunca são mesclados.
func ProjectDay(date string, shifts []ShiftInterval, bands []Band) ([]Block, error) {
	return projectDay(date, shifts, bands, DefaultLayout().Row(BlockShift))
}

func projectDay(date string, shifts []ShiftInterval, bands []Band, shiftRow int) ([]Block, error) {
	previous, err := utils.AddDays(date, -1)
	if err != nil {
		return nil, err
	}

	today, err := spansFor(date, shifts, bands, shiftRow)
	if err != nil {
		return nil, err
	}
	yesterday, err := spansFor(previous, shifts, bands, shiftRow)
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, 0, len(today)+len(yesterday))
	for _, s := range today {
		block := Block{
			Type:      s.Type,
			Date:      date,
			Row:       s.Row,
			StartHour: s.Start,
			EndHour:   s.End,
			IsCircle:  s.IsCircle,
		}
		if s.End > HoursPerDay {
			block.EndHour = HoursPerDay
			block.ContinuesToNextDay = true
		}
		blocks = append(blocks, block)
	}

	for _, s := range yesterday {
		if s.End <= HoursPerDay {
			continue
		}
		blocks = append(blocks, Block{
			Type:                     s.Type,
			Date:                     date,
			Row:                      s.Row,
			StartHour:                0,
			EndHour:                  s.End - HoursPerDay,
			IsCircle:                 s.IsCircle,
			ContinuesFromPreviousDay: true,
		})
	}

	return blocks, nil
}

// ProjectRange projeta days dias consecutivos a partir de start
func ProjectRange(start string, days int, shifts []ShiftInterval, bands []Band) ([]Day, error) {
	return ProjectRangeWithLayout(start, days, shifts, bands, DefaultLayout())
}

// ProjectRangeWithLayout é ProjectRange com linhas configuráveis
func ProjectRangeWithLayout(start string, days int, shifts []ShiftInterval, bands []Band, layout RowLayout) ([]Day, error) {
	dates, err := utils.DaysFrom(start, days)
	if err != nil {
		return nil, err
	}

	shiftRow := layout.Row(BlockShift)
	if shiftRow == 0 {
		shiftRow = DefaultLayout().Row(BlockShift)
	}
	bands = WithLayout(bands, layout)

	result := make([]Day, 0, len(dates))
	for _, date := range dates {
		blocks, err := projectDay(date, shifts, bands, shiftRow)
		if err != nil {
			return nil, err
		}
		result = append(result, Day{Date: date, Blocks: blocks})
	}
	return result, nil
}
