package stats

import "gonum.org/v1/gonum/stat"

// Whisker is the fence multiplier applied to the interquartile range.
const Whisker = 1.5

// BoxSummary is the five-number summary of a distribution together with the
// Tukey fences used to flag outliers.
type BoxSummary struct {
	Count    int
	Mean     float64
	Std      float64
	Min      float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64
	Lower    float64 // lowest value inside the lower fence
	Upper    float64 // highest value inside the upper fence
	Outliers int
}

// IQR returns the interquartile range.
func (b BoxSummary) IQR() float64 { return b.Q3 - b.Q1 }

// Summarize computes the box summary of x. NaN values are ignored; ok is
// false when nothing is left.
func Summarize(x []float64) (b BoxSummary, ok bool) {
	x = DropNaN(x)
	if len(x) == 0 {
		return b, false
	}
	b.Count = len(x)
	b.Mean, b.Std = stat.MeanStdDev(x, nil)
	b.Min, b.Max = MinMax(x)
	b.Q1 = Percentile(x, 25)
	b.Median = Median(x)
	b.Q3 = Percentile(x, 75)

	lo := b.Q1 - Whisker*b.IQR()
	hi := b.Q3 + Whisker*b.IQR()
	b.Lower, b.Upper = b.Max, b.Min
	for _, v := range x {
		if v < lo || v > hi {
			b.Outliers++
			continue
		}
		if v < b.Lower {
			b.Lower = v
		}
		if v > b.Upper {
			b.Upper = v
		}
	}
	return b, true
}
