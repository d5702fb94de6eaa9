package lines

import (
	"reflect"
	"testing"
)

func TestIsZip(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"five digits", "20515", true},
		{"five plus four", "20515-6789", true},
		{"four digits", "2051", false},
		{"nine digits no hyphen", "205156789", false},
		{"letters", "ABCDE", false},
		{"empty", "", false},
		{"embedded", "DC 20515", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZip(tt.line); got != tt.want {
				t.Errorf("IsZip(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestEndsWith5Digits(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"bare zip", "30474", true},
		{"city state zip", "SYRACUSE, NY 13202", true},
		{"zip plus four", "WASHINGTON, DC 20515-0001", false},
		{"short", "3047", false},
		{"trailing letter", "SUITE 150A", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EndsWith5Digits(tt.line); got != tt.want {
				t.Errorf("EndsWith5Digits(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCountZips(t *testing.T) {
	in := []string{"1022 LONGWORTH HOB", "WASHINGTON", "DC", "20515", "SYRACUSE", "NY", "13202"}
	if got := CountZips(in); got != 2 {
		t.Errorf("CountZips = %d, want 2", got)
	}
	if !HasZip(in) {
		t.Error("HasZip = false, want true")
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"address line", "440 SOUTH WARREN STREET", true},
		{"empty", "", false},
		{"iframe residue", "IFRAME SRC=HTTPS://EXAMPLE", false},
		{"script residue", "FUNCTION () { RETURN; }", false},
		{"style residue", "DISPLAY: NONE !IMPORTANT;", false},
		{"phone label", "PHONE: (202) 225-3121", false},
		{"fax label", "FAX: (202) 225-3120", false},
		{"office of heading", "OFFICE OF SENATOR EXAMPLE", false},
		{"bare phone", "(202) 225-3121", false},
		{"office hours", "9:00 AM TO 5:00 PM", false},
		{"map coordinate", "46.86551919465073", false},
		{"zip plus four kept", "WASHINGTON, DC 20515-6789", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filter(tt.line); got != tt.want {
				t.Errorf("Filter(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSplitBar(t *testing.T) {
	in := []string{"WELLS FARGO PLAZA | 221 N KANSAS STREET | SUITE 1500"}
	want := []string{"WELLS FARGO PLAZA", "221 N KANSAS STREET", "SUITE 1500"}
	if got := SplitBar(in); !reflect.DeepEqual(got, want) {
		t.Errorf("SplitBar = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"nbsp", "221\u00a0N KANSAS", "221 N KANSAS"},
		{"zero width", "SUITE\u200b 150", "SUITE 150"},
		{"half glyph", "150\u00bd MAIN ST", "150 1/2 MAIN ST"},
		{"leading hash", "#204 FEDERAL PLAZA", "204 FEDERAL PLAZA"},
		{"trailing comma", "SYRACUSE,", "SYRACUSE"},
		{"whitespace runs", "  440   SOUTH  WARREN ", "440 SOUTH WARREN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLine(tt.line); got != tt.want {
				t.Errorf("normalizeLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestStripDots(t *testing.T) {
	in := []string{"2004 N. CLEVELAND ST.", "WASHINGTON, D.C. 20515"}
	want := []string{"2004 N CLEVELAND ST", "WASHINGTON, DC 20515"}
	if got := StripDots(in); !reflect.DeepEqual(got, want) {
		t.Errorf("StripDots = %v, want %v", got, want)
	}
}

func TestDropMailingMarkers(t *testing.T) {
	in := []string{"MAILING ADDRESS", "PO BOX 4989 (MAILING)", "EL PASO"}
	want := []string{"PO BOX 4989", "EL PASO"}
	if got := DropMailingMarkers(in); !reflect.DeepEqual(got, want) {
		t.Errorf("DropMailingMarkers = %v, want %v", got, want)
	}
}

func TestJoinDisjointZip(t *testing.T) {
	in := []string{"122 CANAL STREET", "VIDALIA, GA 304", "74"}
	want := []string{"122 CANAL STREET", "VIDALIA, GA 30474"}
	if got := JoinDisjointZip(in); !reflect.DeepEqual(got, want) {
		t.Errorf("JoinDisjointZip = %v, want %v", got, want)
	}
}

func TestConcatZip(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"joins trailing zip",
			[]string{"355 S WASHINGTON ST, SUITE 210, DANVILLE, IN", "46122"},
			[]string{"355 S WASHINGTON ST, SUITE 210, DANVILLE, IN 46122"},
		},
		{
			"leaves state line output alone",
			[]string{"SYRACUSE", "NY", "13202"},
			[]string{"SYRACUSE", "NY", "13202"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConcatZip(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ConcatZip(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitCityStateZip(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"city comma state zip",
			[]string{"SYRACUSE, NY 13202"},
			[]string{"SYRACUSE", "NY", "13202"},
		},
		{
			"nine digit zip",
			[]string{"WASHINGTON, DC 20515-0001"},
			[]string{"WASHINGTON", "DC", "20515-0001"},
		},
		{
			"full state name no zip",
			[]string{"SEATTLE WASHINGTON"},
			[]string{"SEATTLE", "WA"},
		},
		{
			"city sharing a state name",
			[]string{"WASHINGTON DC"},
			[]string{"WASHINGTON", "DC"},
		},
		{
			"bare city left alone",
			[]string{"WASHINGTON"},
			[]string{"WASHINGTON"},
		},
		{
			"west virginia over virginia",
			[]string{"CHARLESTON WEST VIRGINIA 25301"},
			[]string{"CHARLESTON", "WV", "25301"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitCityStateZip(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCityStateZip(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimAfterLastZip(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"drops footer",
			[]string{"SYRACUSE", "NY", "13202", "PRIVACY POLICY", "SITE MAP"},
			[]string{"SYRACUSE", "NY", "13202"},
		},
		{
			"no zip unchanged",
			[]string{"ABOUT", "CONTACT"},
			[]string{"ABOUT", "CONTACT"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAfterLastZip(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TrimAfterLastZip(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEdit(t *testing.T) {
	in := []string{
		"1022 LONGWORTH HOB",
		"WASHINGTON, D.C. 20515",
		"440 SOUTH WARREN STREET | SUITE 706",
		"SYRACUSE, NY 132",
		"02",
	}
	want := []string{
		"1022 LONGWORTH HOB",
		"WASHINGTON",
		"DC",
		"20515",
		"440 SOUTH WARREN STREET",
		"SUITE 706",
		"SYRACUSE",
		"NY",
		"13202",
	}
	got := Edit(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Edit(%v) = %v, want %v", in, got, want)
	}
}

// Edit on its own output must change nothing; resumed runs re-edit
// already-edited sequences.
func TestEditFixedPoint(t *testing.T) {
	inputs := [][]string{
		{"1022 LONGWORTH HOB", "WASHINGTON, D.C. 20515", "440 SOUTH WARREN STREET, SUITE 706", "SYRACUSE, NY 13202"},
		{"122 CANAL STREET", "VIDALIA, GA 304", "74"},
		{"355 S WASHINGTON ST, SUITE 210, DANVILLE, IN", "46122"},
		{"PO BOX 4989 (MAILING)", "EL PASO TEXAS 79914"},
	}
	for _, in := range inputs {
		once := Edit(in)
		twice := Edit(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Edit not a fixed point on %v:\nonce:  %v\ntwice: %v", in, once, twice)
		}
	}
}

func TestAbbreviateHOB(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"house office building",
			[]string{"2312 RAYBURN HOUSE OFFICE BUILDING"},
			[]string{"2312 RAYBURN HOB"},
		},
		{
			"split across lines",
			[]string{"1107 LONGWORTH HOUSE", "OFFICE BUILDING"},
			[]string{"1107 LONGWORTH HOB"},
		},
		{
			"bare building",
			[]string{"2205 RAYBURN BUILDING"},
			[]string{"2205 RAYBURN HOB"},
		},
		{
			"room line merged",
			[]string{"LONGWORTH HOB", "ROOM 1027"},
			[]string{"1027 LONGWORTH HOB"},
		},
		{
			"unrelated lines untouched",
			[]string{"440 SOUTH WARREN STREET", "SUITE 706"},
			[]string{"440 SOUTH WARREN STREET", "SUITE 706"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbbreviateHOB(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AbbreviateHOB(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAbbreviateSOB(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"senate office building",
			[]string{"716 HART SENATE OFFICE BUILDING"},
			[]string{"716 HART SOB"},
		},
		{
			"dirksen bldg",
			[]string{"521 DIRKSEN SENATE OFFICE BLDG"},
			[]string{"521 DIRKSEN SOB"},
		},
		{
			"room line merged",
			[]string{"RUSSELL SOB", "ROOM 455"},
			[]string{"455 RUSSELL SOB"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbbreviateSOB(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AbbreviateSOB(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsStateLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"NY", true},
		{"DC", true},
		{"NEW YORK", true},
		{"WEST VIRGINIA", true},
		{"SYRACUSE", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsStateLine(tt.line); got != tt.want {
			t.Errorf("IsStateLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
