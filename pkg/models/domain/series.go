package domain

// ParallelSeries holds three sequences drawn from one record whose indices are meant to
// line up by date. Their lengths are not guaranteed to match.
type ParallelSeries struct {
	Dates    []string
	Actual   []string
	Expected []string
}

// Len is the length of the longest sequence.
func (s ParallelSeries) Len() int {
	n := len(s.Dates)
	if len(s.Actual) > n {
		n = len(s.Actual)
	}
	if len(s.Expected) > n {
		n = len(s.Expected)
	}
	return n
}

func (s ParallelSeries) Date(i int) (string, bool) {
	return at(s.Dates, i)
}

func (s ParallelSeries) ActualAt(i int) (string, bool) {
	return at(s.Actual, i)
}

func (s ParallelSeries) ExpectedAt(i int) (string, bool) {
	return at(s.Expected, i)
}

func at(values []string, i int) (string, bool) {
	if i < 0 || i >= len(values) {
		return "", false
	}
	return values[i], true
}
