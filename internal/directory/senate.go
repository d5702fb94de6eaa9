package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/govpost/internal/lines"
	"github.com/govpost/internal/models"
	"github.com/govpost/internal/override"
)

var senateStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID",
	"IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS",
	"MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK",
	"OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV",
	"WI", "WY",
}

var senateSelectors = []string{
	"div.et_pb_blurb_description",
	"div.OfficeLocations__addressText",
	"div.map-office-box",
	"div.et_pb_text_inner",
	"div.location-content-inner",
	"div.address",
	"address",
	"div.address-footer",
	"div.counties_listing",
	"div.location-info",
	"div.item",
	".internal__offices--address",
	".office-locations",
	"div.office-address",
	"body",
}

// SenateSource scrapes the Senate: two members from each state page, then
// each member's site for office addresses.
func SenateSource() Source {
	return Source{
		Name:  "senate",
		Title: "U.S. Senate",
		Role:  models.RolePolitical,
		PathGroups: [][]string{
			{"contact"},
			{"contact/locations"},
			{"contact/offices"},
			{"contact/office-locations"},
			{"office-locations"},
			{"offices"},
			{"office-information"},
			{""},
			{"public"},
			{"public/index.cfm/office-locations"},
		},
		Selectors:  senateSelectors,
		Overrides:  override.Senate(),
		Abbreviate: lines.AbbreviateSOB,
		Members:    senateMembers,
		Custom: map[override.Key]CustomFetch{
			{First: "John", Last: "Hickenlooper"}: hickenlooperLocations,
		},
	}
}

func senateMembers(ctx context.Context, f *Fetcher) ([]models.Person, error) {
	var persons []models.Person
	for _, state := range senateStates {
		url := fmt.Sprintf("https://www.senate.gov/states/%s/intro.htm", state)
		doc, err := f.Document(ctx, url)
		if err != nil {
			return nil, err
		}
		persons = append(persons, parseSenateState(doc)...)
	}
	return persons, validateMembers("senate", persons, ".senate.gov")
}

func parseSenateState(doc *goquery.Document) []models.Person {
	var persons []models.Person
	doc.Find("div.state-column").Each(func(_ int, col *goquery.Selection) {
		link := col.Find("a").First()
		if link.Length() == 0 {
			return
		}
		first, last := splitFullName(link.Text())
		href := strings.TrimSuffix(strings.ReplaceAll(link.AttrOr("href", ""), "www.", ""), "/")
		persons = append(persons, models.Person{FirstName: first, LastName: last, URL: href})
	})
	return persons
}

// hickenlooperLocations reads the office's JSON location feed; the website
// renders offices from it client-side, so there is nothing to scrape.
func hickenlooperLocations(ctx context.Context, f *Fetcher, per models.Person) ([]models.Address, error) {
	var locations []struct {
		Acf struct {
			Address string `json:"address"`
			Suite   string `json:"suite"`
			City    string `json:"city"`
			State   string `json:"state"`
			Zipcode string `json:"zipcode"`
		} `json:"acf"`
	}
	if err := f.JSON(ctx, per.URL+"/wp-json/wp/v2/locations", &locations); err != nil {
		return nil, err
	}
	var adrs []models.Address
	for _, loc := range locations {
		if loc.Acf.Address == "~" {
			continue
		}
		adr := models.Address{
			Address1: loc.Acf.Address,
			Address2: loc.Acf.Suite,
			City:     loc.Acf.City,
			State:    loc.Acf.State,
			Zip:      loc.Acf.Zipcode,
		}
		// The DC office lists the Capitol street address with the suite
		// carrying the real room, "Suite SR-374".
		if strings.HasPrefix(adr.Address1, "2 Constitution Ave") {
			if idx := strings.Index(adr.Address2, "SR-"); idx >= 0 {
				adr.Address1 = adr.Address2[idx+len("SR-"):] + " RUSSELL SOB"
				adr.Address2 = ""
			}
		}
		adrs = append(adrs, adr)
	}
	return models.SortAndDedup(adrs), nil
}
