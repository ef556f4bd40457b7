package types

// Enum values for score trend classification
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

func (t Trend) String() string {
	return string(t)
}
