package timeline

import (
	"math"

	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
)

// DefaultBands são as janelas fixas exibidas para todos os usuários
func DefaultBands() []Band {
	return []Band{
		{Type: BlockMelatonin, Row: 1, StartHour: 20, EndHour: 20, IsCircle: true},
		{Type: BlockSleep, Row: 2, StartHour: 22, EndHour: 30},
		{Type: BlockLight, Row: 3, StartHour: 6, EndHour: 8},
		{Type: BlockNoLight, Row: 3, StartHour: 20, EndHour: 22},
		{Type: BlockCaffeine, Row: 4, StartHour: 7, EndHour: 14},
		{Type: BlockNoCaffeine, Row: 4, StartHour: 16, EndHour: 24},
	}
}

// WithLayout devolve uma cópia das faixas com as linhas do layout informado.
// Tipos ausentes no layout mantêm a linha original.
func WithLayout(bands []Band, layout RowLayout) []Band {
	out := make([]Band, len(bands))
	for i, b := range bands {
		if row := layout.Row(b.Type); row > 0 {
			b.Row = row
		}
		out[i] = b
	}
	return out
}

// Schedule é a rotina de dias de folga do usuário
type Schedule struct {
	SleepStart   string
	WakeTime     string
	UseMelatonin bool
}

// BandsFor deriva as janelas a partir da rotina do usuário. Para 22:00/06:00
// com melatonina o resultado é igual a DefaultBands.
func BandsFor(s Schedule) ([]Band, error) {
	sleep, err := utils.ToHourFraction(s.SleepStart)
	if err != nil {
		return nil, err
	}
	wake, err := utils.ToHourFraction(s.WakeTime)
	if err != nil {
		return nil, err
	}

	sleepLength := wake - sleep
	if sleepLength <= 0 {
		sleepLength += HoursPerDay
	}
	awake := HoursPerDay - sleepLength

	layout := DefaultLayout()
	bands := []Band{}

	if s.UseMelatonin {
		at := normalizeHour(sleep - 2)
		bands = append(bands, Band{Type: BlockMelatonin, Row: layout.Row(BlockMelatonin), StartHour: at, EndHour: at, IsCircle: true})
	}

	bands = append(bands,
		window(BlockSleep, layout, sleep, sleepLength),
		window(BlockLight, layout, wake, 2),
		window(BlockNoLight, layout, sleep-2, 2),
	)

	// cafeína de 1h após acordar até 8h antes de dormir
	if caffeine := awake - 9; caffeine > 0 {
		bands = append(bands, window(BlockCaffeine, layout, wake+1, caffeine))
	}
	bands = append(bands, window(BlockNoCaffeine, layout, sleep-6, 8))

	return bands, nil
}

func window(t BlockType, layout RowLayout, start, length float64) Band {
	start = normalizeHour(start)
	return Band{Type: t, Row: layout.Row(t), StartHour: start, EndHour: start + length}
}

// normalizeHour leva a hora para [0,24)
func normalizeHour(h float64) float64 {
	h = math.Mod(h, HoursPerDay)
	if h < 0 {
		h += HoursPerDay
	}
	return h
}
