package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время дня в формате HH:MM ("09:00", "16:30")
// Используется для хранения времени визита без привязки к дате и таймзоне
type TimeString string

const layout = "15:04"

var (
	// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")
)

// NewTimeString создает TimeString из time.Time (обрезая секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString парсит строку HH:MM в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return TimeString(t.Format(layout)), nil
}

// String возвращает строковое представление HH:MM
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет формат HH:MM
func (ts TimeString) Validate() error {
	if _, err := time.Parse(layout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(ts))
	}
	return nil
}

// parse возвращает time.Time на нулевой дате
func (ts TimeString) parse() (time.Time, error) {
	t, err := time.Parse(layout, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, string(ts))
	}
	return t, nil
}

// Hour возвращает час (0-23)
func (ts TimeString) Hour() (int, error) {
	t, err := ts.parse()
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}

// Minute возвращает минуты (0-59)
func (ts TimeString) Minute() (int, error) {
	t, err := ts.parse()
	if err != nil {
		return 0, err
	}
	return t.Minute(), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// AddMinutes возвращает новое время со сдвигом на m минут вперед
// Выход за пределы суток не поддерживается (визиты укладываются в рабочий день)
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	t, err := ts.parse()
	if err != nil {
		return "", err
	}
	return TimeString(t.Add(time.Duration(m) * time.Minute).Format(layout)), nil
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Postgres колонка time отдается драйвером как time.Time или строка HH:MM:SS
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// Обрезаем секунды, если пришло HH:MM:SS
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
