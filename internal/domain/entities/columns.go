package entities

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
)

// Date é uma coluna date exposta como "YYYY-MM-DD".
// O driver do Postgres devolve time.Time; o SQLite pode devolver texto.
type Date string

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(utils.DateLayout))
	case string:
		*d = Date(trimDate(v))
	case []byte:
		*d = Date(trimDate(string(v)))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d Date) String() string { return string(d) }

func trimDate(v string) string {
	if len(v) >= len(utils.DateLayout) {
		return v[:len(utils.DateLayout)]
	}
	return v
}

// Clock é uma coluna time exposta como "HH:MM"
type Clock string

func (c *Clock) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = ""
	case time.Time:
		*c = Clock(v.Format("15:04"))
	case string:
		*c = normalizeClock(v)
	case []byte:
		*c = normalizeClock(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Clock", src)
	}
	return nil
}

func (c Clock) Value() (driver.Value, error) {
	if c == "" {
		return nil, nil
	}
	return string(c), nil
}

func (c Clock) String() string { return string(c) }

// normalizeClock converte "09:00:00" em "09:00"; valores inválidos ficam como estão
func normalizeClock(v string) Clock {
	hour, minute, err := utils.ParseClock(v)
	if err != nil {
		return Clock(v)
	}
	return Clock(utils.FormatClock(hour, minute))
}
