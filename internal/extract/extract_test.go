package extract

import (
	"errors"
	"reflect"
	"testing"

	"github.com/govpost/internal/models"
)

func TestIsAddress1(t *testing.T) {
	valid := []string{
		"123 MAIN ST",
		"456 ELM ST APT 7",
		"789BROADWAY",
		"10 DOWNING STREET",
		"5TH AVENUE",
		"1024 E 7TH ST",
		"21-00 NJ 208 S",
		"340A 9TH STREET",
		"PO BOX 123",
		"POBOX 789",
		"PO BOX B",
		"1022 LONGWORTH HOB",
	}
	for _, line := range valid {
		if !IsAddress1(line) {
			t.Errorf("IsAddress1(%q) = false, want true", line)
		}
	}
	invalid := []string{
		"MAIN ST",
		"ELM ST APT 7",
		"BROADWAY",
		"AVENUE",
		"WASHINGTON",
		"20515",
		"",
	}
	for _, line := range invalid {
		if IsAddress1(line) {
			t.Errorf("IsAddress1(%q) = true, want false", line)
		}
	}
}

func TestExtractTwoAddresses(t *testing.T) {
	in := []string{
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
	want := []models.Address{
		{Address1: "1022 LONGWORTH HOB", City: "WASHINGTON", State: "DC", Zip: "20515"},
		{Address1: "440 SOUTH WARREN STREET", Address2: "SUITE 706", City: "SYRACUSE", State: "NY", Zip: "13202"},
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractMultiLineAddress2(t *testing.T) {
	in := []string{
		"610 MAIN STREET",
		"FIRST FLOOR SMALL",
		"CONFERENCE ROOM",
		"JASPER",
		"IN",
		"47547",
	}
	want := []models.Address{
		{Address1: "610 MAIN STREET", Address2: "FIRST FLOOR SMALL CONFERENCE ROOM", City: "JASPER", State: "IN", Zip: "47547"},
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

// A building name above the city also looks like a street line; the line
// above it is the real one.
func TestExtractPrefersEarlierStreetLine(t *testing.T) {
	in := []string{
		"1710 ALABAMA AVENUE",
		"247 CARL ELLIOTT BUILDING",
		"JASPER",
		"AL",
		"35501",
	}
	want := []models.Address{
		{Address1: "1710 ALABAMA AVENUE", Address2: "247 CARL ELLIOTT BUILDING", City: "JASPER", State: "AL", Zip: "35501"},
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractNoAnchor(t *testing.T) {
	_, err := Extract([]string{"ABOUT", "CONTACT", "PRIVACY POLICY"})
	if !errors.Is(err, ErrNoAddress) {
		t.Errorf("Extract err = %v, want ErrNoAddress", err)
	}
}

// An anchor that resolves to no street line is skipped, not fatal.
func TestExtractSkipsUnresolvedAnchor(t *testing.T) {
	in := []string{
		"ELKO CONTACT",
		"SOME CITY",
		"NV",
		"89501",
		"1022 LONGWORTH HOB",
		"WASHINGTON",
		"DC",
		"20515",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := []models.Address{
		{Address1: "1022 LONGWORTH HOB", City: "WASHINGTON", State: "DC", Zip: "20515"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractDeniedZip(t *testing.T) {
	in := []string{
		"1022 LONGWORTH HOB",
		"WASHINGTON",
		"DC",
		"20515",
		"7676W COUNTY ROAD 442",
		"SUITE B",
		"MANISTIQUE",
		"MI",
		"49854",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := []models.Address{
		{Address1: "1022 LONGWORTH HOB", City: "WASHINGTON", State: "DC", Zip: "20515"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractDeduplicates(t *testing.T) {
	in := []string{
		"1022 LONGWORTH HOB",
		"WASHINGTON",
		"DC",
		"20515",
		"1022 LONGWORTH HOB",
		"WASHINGTON",
		"DC",
		"20515",
	}
	got, err := Extract(in)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Extract returned %d addresses, want 1 after dedup", len(got))
	}
}

func TestValidate(t *testing.T) {
	good := []models.Address{
		{Address1: "1022 LONGWORTH HOB", City: "WASHINGTON", State: "DC", Zip: "20515"},
		{Address1: "440 SOUTH WARREN STREET", Address2: "SUITE 706", City: "SYRACUSE", State: "NY", Zip: "13202-1234"},
	}
	if err := Validate(good); err != nil {
		t.Errorf("Validate(good) = %v, want nil", err)
	}

	tests := []struct {
		name string
		adr  models.Address
	}{
		{"missing address1", models.Address{City: "SYRACUSE", State: "NY", Zip: "13202"}},
		{"missing city", models.Address{Address1: "440 SOUTH WARREN STREET", State: "NY", Zip: "13202"}},
		{"missing state", models.Address{Address1: "440 SOUTH WARREN STREET", City: "SYRACUSE", Zip: "13202"}},
		{"missing zip", models.Address{Address1: "440 SOUTH WARREN STREET", City: "SYRACUSE", State: "NY"}},
		{"malformed zip", models.Address{Address1: "440 SOUTH WARREN STREET", City: "SYRACUSE", State: "NY", Zip: "132"}},
		{"overlong field", models.Address{Address1: "440 SOUTH WARREN STREET EXTENDED BY A VERY LONG ANNEX NAME", City: "SYRACUSE", State: "NY", Zip: "13202"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate([]models.Address{tt.adr}); err == nil {
				t.Error("Validate = nil, want error")
			}
		})
	}
}
