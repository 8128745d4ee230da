package prompt

// Answer is the option chosen by the user: its index in the original option
// list and its label.
type Answer struct {
	Index int
	Value string
}

// NewAnswer builds an Answer.
func NewAnswer(index int, value string) Answer {
	return Answer{Index: index, Value: value}
}

func (a Answer) String() string {
	return a.Value
}
