// Package timeline projeta turnos e janelas de recomendação em uma grade
// horária por dia, separando blocos que atravessam a meia-noite.
package timeline

// BlockType identifica a categoria de um bloco
type BlockType string

const (
	BlockMelatonin  BlockType = "melatonin"
	BlockSleep      BlockType = "sleep"
	BlockLight      BlockType = "light"
	BlockNoLight    BlockType = "no-light"
	BlockCaffeine   BlockType = "caffeine"
	BlockNoCaffeine BlockType = "no-caffeine"
	BlockShift      BlockType = "shift"
)

// HoursPerDay é a largura de um dia na grade
const HoursPerDay = 24.0

// Band é uma janela de recomendação que se repete todos os dias.
// EndHour pode passar de 24 (ex.: sono de 22 a 30 = 6h do dia seguinte).
type Band struct {
	Type      BlockType `json:"type"`
	Row       int       `json:"row"`
	StartHour float64   `json:"start_hour"`
	EndHour   float64   `json:"end_hour"`
	IsCircle  bool      `json:"is_circle,omitempty"`
}

// ShiftInterval é um turno de trabalho. EndTime <= StartTime significa que
// o turno termina no dia seguinte.
type ShiftInterval struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Block é a unidade de saída, já recortada para a janela [0,24] de Date
type Block struct {
	Type                     BlockType `json:"type"`
	Date                     string    `json:"date"`
	Row                      int       `json:"row"`
	StartHour                float64   `json:"start_hour"`
	EndHour                  float64   `json:"end_hour"`
	IsCircle                 bool      `json:"is_circle"`
	ContinuesFromPreviousDay bool      `json:"continues_from_previous_day"`
	ContinuesToNextDay       bool      `json:"continues_to_next_day"`
}

// Day agrupa os blocos de uma data
type Day struct {
	Date   string  `json:"date"`
	Blocks []Block `json:"blocks"`
}

// RowLayout define a linha de cada tipo de bloco
type RowLayout map[BlockType]int

// DefaultLayout: 1 melatonina, 2 sono, 3 luz, 4 cafeína, 5 turnos
func DefaultLayout() RowLayout {
	return RowLayout{
		BlockMelatonin:  1,
		BlockSleep:      2,
		BlockLight:      3,
		BlockNoLight:    3,
		BlockCaffeine:   4,
		BlockNoCaffeine: 4,
		BlockShift:      5,
	}
}

// Row retorna a linha do tipo, ou 0 se o tipo não estiver no layout
func (l RowLayout) Row(t BlockType) int {
	return l[t]
}
