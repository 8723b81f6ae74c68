package models

// Series is one plotted line. X and Y have equal length.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Marker is a vertical reference line at X.
type Marker struct {
	Label string
	X     float64
}

// Chart is a line chart over a shared, evenly spaced X grid.
type Chart struct {
	Title   string
	XLabel  string
	YLabel  string
	Series  []Series
	Markers []Marker
}

// XRange returns the first and last X value of the first series.
func (c *Chart) XRange() (lo, hi float64) {
	if c == nil || len(c.Series) == 0 || len(c.Series[0].X) == 0 {
		return 0, 0
	}
	xs := c.Series[0].X
	return xs[0], xs[len(xs)-1]
}

// Bar is a single labelled value in a bar chart.
type Bar struct {
	Label string
	Value float64
}

// BarChart compares a handful of quantities.
type BarChart struct {
	Title  string
	YLabel string
	Bars   []Bar
}

// Max returns the largest bar value, or 0 for an empty chart.
func (b *BarChart) Max() float64 {
	if b == nil {
		return 0
	}
	max := 0.0
	for _, bar := range b.Bars {
		if bar.Value > max {
			max = bar.Value
		}
	}
	return max
}
