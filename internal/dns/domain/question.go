package domain

// Question represents one entry of a DNS question section.
//
// Name is the dot-joined form of the wire labels ("." denotes the root).
// Type and Class carry the raw wire codes: unknown codes are legal on the
// wire and pass through untouched, so no validation happens here.
type Question struct {
	Name  string
	Type  RRType
	Class RRClass
}

// NewQuestion constructs a Question for the given name, type, and class.
func NewQuestion(name string, rrtype RRType, class RRClass) Question {
	return Question{
		Name:  name,
		Type:  rrtype,
		Class: class,
	}
}
