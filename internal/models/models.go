package models

import (
	"fmt"
	"sort"
	"strings"
)

// Role classifies which branch of government a roster covers.
type Role string

const (
	RoleMilitary  Role = "Military"
	RolePolitical Role = "Political"
	RoleExecutive Role = "Executive"
)

// Person is one officeholder. Identity is (FirstName, LastName); the URL is
// the office website the addresses were scraped from. Addresses is nil until
// the person has been processed, which is how resumed runs know to skip them.
type Person struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Title1    string    `json:"title1,omitempty"`
	Title2    string    `json:"title2,omitempty"`
	URL       string    `json:"url,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
}

// Resolved reports whether the person already carries extracted addresses.
func (p *Person) Resolved() bool {
	return p.Addresses != nil
}

func (p *Person) String() string {
	return fmt.Sprintf("%s,%s,%s,%s,%s", p.FirstName, p.LastName, p.Title1, p.Title2, p.URL)
}

// SortPersons orders people by last name then first name.
func SortPersons(persons []Person) {
	sort.SliceStable(persons, func(i, j int) bool {
		if persons[i].LastName != persons[j].LastName {
			return persons[i].LastName < persons[j].LastName
		}
		return persons[i].FirstName < persons[j].FirstName
	})
}

// Address is a US mailing address. Address2 is empty when the address has no
// secondary line. Values are copied freely; nothing shares mutable state.
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// Valid reports whether the address satisfies USPS mailing constraints:
// free-text lines at most 40 characters, a 2-character state abbreviation,
// and a zip of at most 10 characters (5 digits, or 5+4 with a hyphen).
func (a Address) Valid() bool {
	return len(a.Address1) <= 40 &&
		len(a.Address2) <= 40 &&
		len(a.City) <= 40 &&
		len(a.State) <= 2 &&
		len(a.Zip) <= 10
}

func (a Address) String() string {
	return fmt.Sprintf("%s,%s,%s,%s,%s", a.Address1, a.Address2, a.City, a.State, a.Zip)
}

// key is the full structural ordering used for sorting and deduplication.
func (a Address) key() string {
	return strings.Join([]string{a.Address1, a.Address2, a.City, a.State, a.Zip}, "\x00")
}

// SortAndDedup orders addresses by full structural equality and removes
// duplicates. The operation is idempotent.
func SortAndDedup(addrs []Address) []Address {
	sort.SliceStable(addrs, func(i, j int) bool {
		return addrs[i].key() < addrs[j].key()
	})
	out := addrs[:0]
	for i, a := range addrs {
		if i > 0 && a == addrs[i-1] {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AddressList pretty-prints a slice of addresses, one per line, for logs.
type AddressList []Address

func (l AddressList) String() string {
	var b strings.Builder
	for i, a := range l {
		if i != 0 {
			b.WriteByte('\n')
		}
		b.WriteString("  ")
		b.WriteString(a.String())
	}
	return b.String()
}
