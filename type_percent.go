package dashboard

import "fmt"

// Percent is a share in percent, 12.5 means 12.5%.
type Percent float64

// Share returns the share of part in total, 0 when total is not positive.
func Share(part, total Money) Percent {
	if !total.IsPositive() {
		return 0
	}
	return Percent(part.value.Div(total.value).Shift(2).InexactFloat64())
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
