package scheduling

import (
	"fmt"
	"time"
)

// Interval полуоткрытый временной интервал [Start, End).
// Допускается Start == End - такой вырожденный интервал используется
// как запрос доступности "в момент времени".
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал с валидацией границ.
// Конец раньше начала и нулевые метки отклоняются.
func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, fmt.Errorf("%w: zero timestamp", ErrInvalidInterval)
	}
	if end.Before(start) {
		return Interval{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidInterval, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return Interval{Start: start, End: end}, nil
}

// At возвращает вырожденный интервал "в момент t"
func At(t time.Time) Interval {
	return Interval{Start: t, End: t}
}
