package prompt

// Formatter renders the submitted answer on the final prompt line.
type Formatter func(answer Answer) string

// DefaultFormatter prints the selected label.
func DefaultFormatter(answer Answer) string {
	return answer.Value
}
