// Package extract reconstructs mailing addresses from a normalized line
// sequence. Zip codes are the only reliable landmark on an office page, so
// the scan runs bottom-up: each line that is exactly a zip code anchors one
// candidate address, with the state and city read from the two lines above it
// and the street line located further back.
package extract

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/govpost/internal/lines"
	"github.com/govpost/internal/models"
)

// ErrNoAddress reports that a line sequence contained no zip anchor that
// resolved into an address.
var ErrNoAddress = errors.New("no address found")

// reAddress1 matches the shape of a primary street line: a leading number
// (possibly with a trailing letter or hyphenated extension, "340A", "21-00")
// or a PO Box, with at least one letter after it.
var reAddress1 = regexp.MustCompile(`(?i)^(PO\s*BOX|\d+).*[A-Z]`)

// rePOBox matches a post office box line on its own: "PO BOX 4989",
// "P.O. BOX 1011", "POBOX 789".
var rePOBox = regexp.MustCompile(`(?i)^P\s*\.?\s*O\s*\.?\s*BOX\s+\d+$`)

// deniedZips anchor syntactically valid addresses extracted from non-address
// page content, a contact-form artifact or an unrelated landmark. Static data
// reviewed by hand, removed here rather than failed downstream.
var deniedZips = map[string]bool{
	"89801": true,
	"49854": true,
}

// IsAddress1 reports whether the line looks like a primary street line.
func IsAddress1(line string) bool {
	return reAddress1.MatchString(line) || rePOBox.MatchString(line)
}

// Extract scans edited lines for zip-anchored addresses. An anchor that
// cannot be resolved, missing a city or state line above it or any street
// line further back, is skipped; only a sequence yielding no address at all
// returns ErrNoAddress. Results are sorted and deduplicated, with denylisted
// zips removed. Callers wanting a minimum count, one home-state office plus
// one in DC, enforce that themselves.
func Extract(lnes []string) ([]models.Address, error) {
	var adrs []models.Address
	for idx := len(lnes) - 1; idx >= 0; idx-- {
		if !lines.IsZip(lnes[idx]) || idx < 3 {
			continue
		}
		idxCity := idx - 2
		adr := models.Address{
			City:  lnes[idxCity],
			State: lnes[idx-1],
			Zip:   lnes[idx],
		}

		// Street line: first address-shaped line above the city. The line
		// above that wins when it is also address-shaped; a building name
		// such as "247 CARL ELLIOTT BUILDING" looks like a street line but
		// the true primary line sits higher up.
		idxAdr1 := idxCity - 1
		for idxAdr1 >= 0 && !IsAddress1(lnes[idxAdr1]) {
			idxAdr1--
		}
		if idxAdr1 < 0 {
			continue
		}
		if idxAdr1 > 0 && IsAddress1(lnes[idxAdr1-1]) {
			idxAdr1--
		}
		adr.Address1 = lnes[idxAdr1]

		// Everything between the street line and the city joins into the
		// secondary line.
		if idxAdr1+1 < idxCity {
			adr2 := lnes[idxAdr1+1]
			for i := idxAdr1 + 2; i < idxCity; i++ {
				adr2 += " " + lnes[i]
			}
			adr.Address2 = adr2
		}
		adrs = append(adrs, adr)
	}
	if len(adrs) == 0 {
		return nil, ErrNoAddress
	}

	kept := adrs[:0]
	for _, adr := range adrs {
		if !deniedZips[adr.Zip] {
			kept = append(kept, adr)
		}
	}
	return models.SortAndDedup(kept), nil
}

// Validate enforces the post-extraction invariants: the street line, city,
// state and zip are non-empty, the zip is a 5 or 5+4 digit code, and every
// field fits USPS mailing constraints.
func Validate(adrs []models.Address) error {
	for _, adr := range adrs {
		switch {
		case adr.Address1 == "":
			return fmt.Errorf("address1 empty: %v", adr)
		case adr.City == "":
			return fmt.Errorf("city empty: %v", adr)
		case adr.State == "":
			return fmt.Errorf("state empty: %v", adr)
		case adr.Zip == "":
			return fmt.Errorf("zip empty: %v", adr)
		case !lines.IsZip(adr.Zip):
			return fmt.Errorf("zip malformed: %v", adr)
		case !adr.Valid():
			return fmt.Errorf("field too long: %v", adr)
		}
	}
	return nil
}
