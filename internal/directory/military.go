package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/govpost/internal/extract"
	"github.com/govpost/internal/lines"
	"github.com/govpost/internal/models"
)

const militaryURL = "https://www.defense.gov/Contact/Mailing-Addresses/"

// MilitarySource scrapes the Department of Defense mailing-address page. All
// leaders and their addresses sit on one page, so the member listing and the
// address fetch share a single cached document.
func MilitarySource() Source {
	return Source{
		Name:      "military",
		Title:     "U.S. Department of Defense",
		Role:      models.RoleMilitary,
		Members:   militaryMembers,
		Addresses: militaryAddresses,
	}
}

func militaryMembers(ctx context.Context, f *Fetcher) ([]models.Person, error) {
	doc, err := f.Document(ctx, militaryURL)
	if err != nil {
		return nil, err
	}
	persons := parseMilitaryMembers(doc)
	if len(persons) == 0 {
		return nil, errors.New("no address blocks on mailing-addresses page")
	}
	return persons, nil
}

func parseMilitaryMembers(doc *goquery.Document) []models.Person {
	var persons []models.Person
	doc.Find("div.address-each").Each(func(_ int, blk *goquery.Selection) {
		lnes := blockLines(blk)
		if len(lnes) < 3 {
			return
		}
		first, last := splitFullName(lnes[0])
		if first == "" || last == "" {
			return
		}
		title1, title2 := cleanMilitaryTitle(strings.ToUpper(lnes[1]))
		persons = append(persons, models.Person{
			FirstName: first,
			LastName:  last,
			Title1:    title1,
			Title2:    title2,
			URL:       militaryURL,
		})
	})
	return persons
}

// cleanMilitaryTitle normalizes a title line: anything after a slash is an
// alternate title and is dropped, a comma reads as "of the", and a
// department suffix after "OF DEFENSE" splits into the secondary title.
func cleanMilitaryTitle(title string) (title1, title2 string) {
	if idx := strings.Index(title, "/"); idx >= 0 {
		title = title[:idx]
	} else if strings.Contains(title, ",") {
		title = strings.ReplaceAll(title, ",", " OF THE")
	}
	if idx := strings.Index(title, "OF DEFENSE "); idx >= 0 {
		cut := idx + len("OF DEFENSE")
		title1, title2 = title[:cut], strings.TrimSpace(title[cut:])
		return title1, title2
	}
	return title, ""
}

// militaryAddresses finds the person's block on the shared page and runs its
// address lines through the standard editing pipeline.
func militaryAddresses(ctx context.Context, f *Fetcher, per models.Person) ([]models.Address, error) {
	doc, err := f.Document(ctx, per.URL)
	if err != nil {
		return nil, err
	}
	var adrs []models.Address
	var found bool
	doc.Find("div.address-each").EachWithBreak(func(_ int, blk *goquery.Selection) bool {
		lnes := blockLines(blk)
		if len(lnes) < 3 {
			return true
		}
		first, last := splitFullName(lnes[0])
		if first != per.FirstName || last != per.LastName {
			return true
		}
		found = true
		edited := make([]string, 0, len(lnes)-2)
		for _, lne := range lnes[2:] {
			edited = append(edited, strings.ToUpper(lne))
		}
		edited = lines.StripDots(lines.Normalize(edited))
		adrs, err = extract.Extract(lines.Edit(edited))
		return false
	})
	if !found {
		return nil, fmt.Errorf("no address block for %s %s", per.FirstName, per.LastName)
	}
	return adrs, err
}

// blockLines returns the filtered text-node lines of one address block,
// original case preserved for name parsing.
func blockLines(blk *goquery.Selection) []string {
	var lnes []string
	for _, node := range blk.Nodes {
		rawText(node, &lnes)
	}
	return lnes
}

func rawText(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		lne := strings.TrimRight(strings.TrimSpace(n.Data), ",")
		if lines.Filter(strings.ToUpper(lne)) {
			*out = append(*out, lne)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rawText(c, out)
	}
}
