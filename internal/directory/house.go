package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/govpost/internal/lines"
	"github.com/govpost/internal/models"
	"github.com/govpost/internal/override"
)

const houseMembersURL = "https://www.house.gov/representatives"

// houseSelectors run from the markup used by the common site templates down
// to a whole-body fallback.
var houseSelectors = []string{
	"address",
	"div.address-footer",
	"div.item",
	".internal__offices--address",
	".office-locations",
	"article",
	"div.office-address",
	"body",
}

// HouseSource scrapes the House of Representatives: the member table on the
// directory page, then each member's site for office addresses.
func HouseSource() Source {
	return Source{
		Name:  "house",
		Title: "U.S. House of Representatives",
		Role:  models.RolePolitical,
		PathGroups: [][]string{
			{"contact/offices"},
			{"contact/office-locations"},
			{"district"},
			{"contact"},
			{"offices"},
			{"office-locations"},
			{"office-information"},
			{""},
			{"washington-d-c-office", "district-office"},
		},
		Selectors:  houseSelectors,
		Overrides:  override.House(),
		Abbreviate: lines.AbbreviateHOB,
		Members:    houseMembers,
	}
}

func houseMembers(ctx context.Context, f *Fetcher) ([]models.Person, error) {
	doc, err := f.Document(ctx, houseMembersURL)
	if err != nil {
		return nil, err
	}
	persons := parseHouseMembers(doc)
	if len(persons) == 0 {
		return nil, errors.New("no members in representatives table")
	}
	return persons, validateMembers("house", persons, ".house.gov")
}

func parseHouseMembers(doc *goquery.Document) []models.Person {
	var persons []models.Person
	doc.Find("table.table tr").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find("td").First()
		if cell.Length() == 0 {
			return
		}
		last, first, ok := strings.Cut(strings.TrimSpace(cell.Text()), ",")
		if !ok {
			return
		}
		first = strings.TrimSpace(first)
		last = strings.TrimSpace(last)
		// A vacant seat lists as "LastName, Mike - Vacancy".
		if first == "" || strings.HasSuffix(first, "Vacancy") {
			return
		}
		url := strings.TrimSuffix(cell.Find("a").First().AttrOr("href", ""), "/")
		// Some listed URLs carry a path, "https://example.house.gov/index.cfm/home".
		if !strings.HasSuffix(url, ".gov") {
			if idx := strings.Index(url, ".gov"); idx >= 0 {
				url = url[:idx+4]
			}
		}
		persons = append(persons, models.Person{FirstName: first, LastName: last, URL: url})
	})
	return persons
}

func validateMembers(name string, persons []models.Person, domain string) error {
	for idx, per := range persons {
		if per.FirstName == "" {
			return fmt.Errorf("%s: first name empty (idx:%d %s)", name, idx, &per)
		}
		if per.LastName == "" {
			return fmt.Errorf("%s: last name empty (idx:%d %s)", name, idx, &per)
		}
		if per.URL == "" {
			return fmt.Errorf("%s: url empty (idx:%d %s)", name, idx, &per)
		}
		if !strings.HasSuffix(per.URL, domain) {
			return fmt.Errorf("%s: url does not end with %s (idx:%d %s)", name, domain, idx, &per)
		}
	}
	return nil
}
