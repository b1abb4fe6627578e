package gateway

// Document is the payload the gateway echoes back. It exists to exercise
// the JSON provider with a realistic structured type.
type Document struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Body    string   `json:"body,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Score   float64  `json:"score"`
	Starred bool     `json:"starred"`
}

// SampleDocument returns a canned document for the sample endpoint
func SampleDocument() Document {
	return Document{
		ID:      "doc-0001",
		Title:   "hello",
		Body:    "a <b>sample</b> body",
		Tags:    []string{"sample", "json"},
		Score:   4.5,
		Starred: true,
	}
}
