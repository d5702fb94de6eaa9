package models

import (
	"reflect"
	"testing"
)

func TestPersonResolved(t *testing.T) {
	per := Person{FirstName: "Jack", LastName: "Reed"}
	if per.Resolved() {
		t.Error("Resolved = true without addresses")
	}
	per.Addresses = []Address{}
	if !per.Resolved() {
		t.Error("Resolved = false with an empty address list")
	}
}

func TestAddressValid(t *testing.T) {
	tests := []struct {
		name string
		adr  Address
		want bool
	}{
		{
			"standard",
			Address{Address1: "530 HART SOB", City: "WASHINGTON", State: "DC", Zip: "20510"},
			true,
		},
		{
			"nine digit zip",
			Address{Address1: "1000 DEFENSE PENTAGON", City: "WASHINGTON", State: "DC", Zip: "20301-1000"},
			true,
		},
		{
			"overlong address1",
			Address{Address1: "440 SOUTH WARREN STREET EXTENDED BY A VERY LONG ANNEX", City: "SYRACUSE", State: "NY", Zip: "13202"},
			false,
		},
		{
			"unabbreviated state",
			Address{Address1: "440 S WARREN ST", City: "SYRACUSE", State: "NEW YORK", Zip: "13202"},
			false,
		},
		{
			"overlong zip",
			Address{Address1: "440 S WARREN ST", City: "SYRACUSE", State: "NY", Zip: "13202-0001-00"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.adr.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortAndDedup(t *testing.T) {
	in := []Address{
		{Address1: "530 HART SOB", City: "WASHINGTON", State: "DC", Zip: "20510"},
		{Address1: "170 WESTMINSTER ST", City: "PROVIDENCE", State: "RI", Zip: "02903"},
		{Address1: "530 HART SOB", City: "WASHINGTON", State: "DC", Zip: "20510"},
	}
	got := SortAndDedup(in)
	want := []Address{
		{Address1: "170 WESTMINSTER ST", City: "PROVIDENCE", State: "RI", Zip: "02903"},
		{Address1: "530 HART SOB", City: "WASHINGTON", State: "DC", Zip: "20510"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortAndDedup = %v, want %v", got, want)
	}
	if again := SortAndDedup(got); !reflect.DeepEqual(again, got) {
		t.Errorf("SortAndDedup not stable on sorted input: %v", again)
	}
}
