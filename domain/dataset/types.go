package dataset

// ColumnKind classifies a column's statistical type. The tag is decided once
// by the ingestion layer; the engine never re-derives it from the values.
type ColumnKind string

const (
	KindCategorical ColumnKind = "categorical"
	KindOrdinal     ColumnKind = "ordinal"
	KindNumeric     ColumnKind = "numeric"
)

// Column is a named, ordered sample of values. Categorical columns carry their
// values in Labels; ordinal and numeric columns carry them in Values. The
// engine never mutates a column.
type Column struct {
	Name   string     `json:"name"`
	Kind   ColumnKind `json:"kind"`
	Labels []string   `json:"labels,omitempty"`
	Values []float64  `json:"values,omitempty"`
}

// Categorical builds a categorical column from labels.
func Categorical(name string, labels []string) Column {
	return Column{Name: name, Kind: KindCategorical, Labels: labels}
}

// Numeric builds a numeric column from values.
func Numeric(name string, values []float64) Column {
	return Column{Name: name, Kind: KindNumeric, Values: values}
}

// Ordinal builds an ordinal column from already-encoded values.
func Ordinal(name string, values []float64) Column {
	return Column{Name: name, Kind: KindOrdinal, Values: values}
}

// Len returns the sample size of the column.
func (c Column) Len() int {
	if c.Kind == KindCategorical {
		return len(c.Labels)
	}
	return len(c.Values)
}

// IsCategorical reports whether the column carries label-valued data.
func (c Column) IsCategorical() bool {
	return c.Kind == KindCategorical
}
