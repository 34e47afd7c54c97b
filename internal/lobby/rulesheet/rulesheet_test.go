package rulesheet

import "testing"

const sampleHTML = `
<table>
<tr><th>Name</th><th>Text</th></tr>
<tr><td class="card-name">Temple</td><td class="card-text">A simple  Religious
district.</td></tr>
<tr><td class="card-name">Watchtower</td><td class="card-text">A simple Military district.</td></tr>
</table>
`

func TestParseExtractsNameAndDescription(t *testing.T) {
	entries, err := Parse(sampleHTML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Temple" {
		t.Fatalf("entries[0].Name = %q, want Temple", entries[0].Name)
	}
	if entries[0].Description != "A simple Religious district." {
		t.Fatalf("entries[0].Description = %q, want collapsed whitespace", entries[0].Description)
	}
}

func TestParseRejectsPageWithNoRows(t *testing.T) {
	if _, err := Parse(`<table><tr><th>Name</th></tr></table>`); err == nil {
		t.Fatalf("expected an error for a page with no card rows")
	}
}
