package extractor

// Kind classifies an extracted entity.
type Kind string

const (
	KindPerson     Kind = "person"
	KindDateExpr   Kind = "date_expr"
	KindTimeExpr   Kind = "time_expr"
	KindRecurrence Kind = "recurrence"
)

// Entity is a typed fragment of the utterance. Span is the [start, end) byte
// range of RawText inside the lowercased utterance. A single span can yield
// entities of more than one Kind when the token is ambiguous; the dialogue
// manager disambiguates by slot context.
type Entity struct {
	Kind    Kind
	RawText string
	Span    [2]int
}
