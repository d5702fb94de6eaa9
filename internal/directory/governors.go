package directory

import (
	"context"
	"fmt"

	"github.com/govpost/internal/models"
)

var governorStates = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota",
	"mississippi", "missouri", "montana", "nebraska", "nevada",
	"new-hampshire", "new-jersey", "new-mexico", "new-york",
	"north-carolina", "north-dakota", "ohio", "oklahoma", "oregon",
	"pennsylvania", "rhode-island", "south-carolina", "south-dakota",
	"tennessee", "texas", "utah", "vermont", "virginia", "washington",
	"west-virginia", "wisconsin", "wyoming",
}

// GovernorsSource scrapes the governors association profiles; each profile
// page lists the governor's name and office addresses, so the profile is
// both the member listing and the address page.
func GovernorsSource() Source {
	return Source{
		Name:       "governors",
		Title:      "U.S. Governors",
		Role:       models.RoleExecutive,
		PathGroups: [][]string{{""}},
		Selectors:  []string{"li.item", "body"},
		Members:    governorMembers,
	}
}

func governorMembers(ctx context.Context, f *Fetcher) ([]models.Person, error) {
	var persons []models.Person
	for _, slug := range governorStates {
		url := "https://www.nga.org/governors/" + slug
		doc, err := f.Document(ctx, url)
		if err != nil {
			return nil, err
		}
		first, last := splitFullName(doc.Find("h1.title").First().Text())
		if first == "" || last == "" {
			return nil, fmt.Errorf("governors: name not found at %s", url)
		}
		persons = append(persons, models.Person{
			FirstName: first,
			LastName:  last,
			Title1:    "Governor",
			URL:       url,
		})
	}
	return persons, nil
}
