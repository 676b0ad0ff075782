package assemble

import (
	"testing"

	"github.com/tsawler/roster/model"
)

// charLine builds one line's worth of character tokens at the given top
func charLine(text string, top float64, bold bool) []model.Token {
	var tokens []model.Token
	x := 40.0
	for _, r := range text {
		tokens = append(tokens, model.Token{
			Text: string(r),
			X0:   x,
			Top:  top,
			Bold: bold,
		})
		x += 6
	}
	return tokens
}

func makePage(lines ...[]model.Token) []model.Token {
	var page []model.Token
	for _, ln := range lines {
		page = append(page, ln...)
	}
	return page
}

func checkRecords(t *testing.T, got, want []model.Record) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d records, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Record %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSingleColumn_DelegationAndPerson(t *testing.T) {
	page := makePage(
		charLine("BAHAMAS / BAHAMAS", 50, true),
		charLine("Mr. John Smith", 70, false),
		charLine("Ministry of Finance", 85, false),
		charLine("Nassau", 100, false),
	)

	records := NewSingleColumn().Assemble(page)

	checkRecords(t, records, []model.Record{
		{
			Delegation:  "BAHAMAS",
			Honorific:   "Mr.",
			PersonName:  "John Smith",
			Affiliation: "Ministry of Finance Nassau",
		},
	})
}

func TestSingleColumn_MultiplePersonsUnderOneDelegation(t *testing.T) {
	page := makePage(
		charLine("FIJI", 40, true),
		charLine("Ms. Mere Falemaka", 60, false),
		charLine("Ministry of Foreign Affairs", 75, false),
		charLine(" ", 90, false),
		charLine("Mr. Deo Saran", 105, false),
		charLine("Climate Change Division", 120, false),
	)

	records := NewSingleColumn().Assemble(page)

	checkRecords(t, records, []model.Record{
		{
			Delegation:  "FIJI",
			Honorific:   "Ms.",
			PersonName:  "Mere Falemaka",
			Affiliation: "Ministry of Foreign Affairs",
		},
		{
			Delegation:  "FIJI",
			Honorific:   "Mr.",
			PersonName:  "Deo Saran",
			Affiliation: "Climate Change Division",
		},
	})
}

func TestSingleColumn_SkipsTextBeforeFirstDelegation(t *testing.T) {
	page := makePage(
		charLine("List of Participants", 30, false),
		charLine("KENYA", 60, true),
		charLine("Dr. Alice Kaudia", 80, false),
	)

	records := NewSingleColumn().Assemble(page)

	checkRecords(t, records, []model.Record{
		{
			Delegation: "KENYA",
			Honorific:  "Dr.",
			PersonName: "Alice Kaudia",
		},
	})
}

func TestSingleColumn_NewDelegationEndsAffiliation(t *testing.T) {
	page := makePage(
		charLine("GHANA", 40, true),
		charLine("Mr. Kwame Mensah", 60, false),
		charLine("GREECE", 80, true),
		charLine("Ms. Eleni Papadopoulou", 100, false),
	)

	records := NewSingleColumn().Assemble(page)

	checkRecords(t, records, []model.Record{
		{
			Delegation: "GHANA",
			Honorific:  "Mr.",
			PersonName: "Kwame Mensah",
		},
		{
			Delegation: "GREECE",
			Honorific:  "Ms.",
			PersonName: "Eleni Papadopoulou",
		},
	})
}

func TestSingleColumn_BoldBlankLineKeepsDelegation(t *testing.T) {
	page := makePage(
		charLine("MALTA", 40, true),
		charLine(" ", 55, true),
		charLine("Mr. Joseph Borg", 70, false),
	)

	records := NewSingleColumn().Assemble(page)

	checkRecords(t, records, []model.Record{
		{
			Delegation: "MALTA",
			Honorific:  "Mr.",
			PersonName: "Joseph Borg",
		},
	})
}

func TestSingleColumn_EmptyTokens(t *testing.T) {
	records := NewSingleColumn().Assemble(nil)
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}
