package model

// RecordColumns are the serialized column names, in output order.
var RecordColumns = []string{"Delegation", "Honorific", "Person_Name", "Affiliation"}

// Record is one extracted participant row.
type Record struct {
	// Delegation is the delegation or country heading the participant
	// appears under, empty when no heading precedes the entry
	Delegation string

	// Honorific is the title prefix split from the name line (e.g. "Mr.",
	// "H.E. Ms."), empty when the name line carries none
	Honorific string

	// PersonName is the name line with any honorific removed
	PersonName string

	// Affiliation is the joined text of the lines following the name
	Affiliation string
}

// Fields returns the record's values in RecordColumns order.
func (r Record) Fields() []string {
	return []string{r.Delegation, r.Honorific, r.PersonName, r.Affiliation}
}
