package data

// InputRecord is the single row handed to a predictor for one submission.
// Only the six ratings are included; traveller type and cabin are not.
type InputRecord struct {
	ratings [len(dimensionColumns)]int
}

func NewInputRecord(ratings map[Dimension]int) InputRecord {
	var r InputRecord
	for d, v := range ratings {
		if d.Valid() {
			r.ratings[d] = v
		}
	}
	return r
}

func (r InputRecord) Rating(d Dimension) int {
	if !d.Valid() {
		return 0
	}
	return r.ratings[d]
}

func (r InputRecord) Columns() []string {
	columns := make([]string, len(dimensionColumns))
	copy(columns, dimensionColumns[:])
	return columns
}

func (r InputRecord) Values() []float64 {
	values := make([]float64, len(r.ratings))
	for i, v := range r.ratings {
		values[i] = float64(v)
	}
	return values
}

func (r InputRecord) Frame() Frame {
	return Frame{
		Columns: r.Columns(),
		Rows:    [][]float64{r.Values()},
	}
}

// Frame is tabular predictor input with named columns.
type Frame struct {
	Columns []string
	Rows    [][]float64
}
