package tree

// Label is an optional class label. The zero value is NoLabel.
type Label struct {
	Value string
	Valid bool
}

// NoLabel marks the absence of a prediction.
var NoLabel = Label{}

// NewLabel returns a valid label holding value.
func NewLabel(value string) Label {
	return Label{Value: value, Valid: true}
}

// Is reports whether l is a valid label equal to value.
func (l Label) Is(value string) bool {
	return l.Valid && l.Value == value
}

func (l Label) String() string {
	if !l.Valid {
		return "<none>"
	}
	return l.Value
}
