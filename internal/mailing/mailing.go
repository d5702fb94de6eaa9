// Package mailing assembles mailpieces, one per resolved address, from
// processed rosters. Formatting follows USPS publication 28: full name
// uppercased with punctuation removed, titles on their own lines, and every
// line already bounded by the address validator upstream.
package mailing

import (
	"fmt"
	"strings"

	"github.com/govpost/internal/models"
)

// Piece is one envelope's worth of addressing data. ID is a sequential
// identifier unique within the mailing.
type Piece struct {
	Name     string `json:"name"`
	Title1   string `json:"title1,omitempty"`
	Title2   string `json:"title2,omitempty"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	ID       int    `json:"id"`
}

// Build creates pieces for every address of every person, assigning ids
// sequentially after lastID so consecutive mailings never reuse one. A
// person without addresses is an error; mailings run over fully resolved
// rosters only.
func Build(persons []models.Person, lastID int) ([]Piece, error) {
	var pieces []Piece
	id := lastID
	for i := range persons {
		per := &persons[i]
		if !per.Resolved() {
			return nil, fmt.Errorf("missing addresses for %s", per)
		}
		for _, adr := range per.Addresses {
			if !adr.Valid() {
				return nil, fmt.Errorf("address exceeds mailing constraints for %s: %s", per, adr)
			}
			id++
			pieces = append(pieces, Piece{
				Name:     pieceName(per),
				Title1:   per.Title1,
				Title2:   per.Title2,
				Address1: adr.Address1,
				Address2: adr.Address2,
				City:     adr.City,
				State:    adr.State,
				Zip:      adr.Zip,
				ID:       id,
			})
		}
	}
	return pieces, nil
}

func pieceName(per *models.Person) string {
	name := per.FirstName + " " + per.LastName
	return strings.ToUpper(strings.ReplaceAll(name, ".", ""))
}
