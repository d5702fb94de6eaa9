// Package directory scrapes officeholder rosters and runs each person's
// pages through the address pipeline: collect text lines, apply per-person
// overrides, edit, extract, standardize, checkpoint.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/govpost/internal/lines"
)

const userAgent = "Mozilla/5.0 (compatible; govpost/1.0)"

// Fetcher retrieves and parses pages. Documents are cached by URL for the
// life of the fetcher; sources that list many people on one page parse it
// once, and member-list pages are reused by the address pass.
type Fetcher struct {
	http  *http.Client
	cache map[string]*goquery.Document
}

// NewFetcher builds a fetcher; a zero timeout means no timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		http:  &http.Client{Timeout: timeout},
		cache: make(map[string]*goquery.Document),
	}
}

// Document fetches and parses one page.
func (f *Fetcher) Document(ctx context.Context, url string) (*goquery.Document, error) {
	if doc, ok := f.cache[url]; ok {
		return doc, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %s", url, resp.Status)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	f.cache[url] = doc
	return doc, nil
}

// JSON fetches a URL and decodes its body into v. Used by the few offices
// that publish their locations as a JSON feed instead of a page.
func (f *Fetcher) JSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := f.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// CollectLines walks the selectors in order and returns the text-node lines
// under the first one that yields any, uppercased, trimmed of surrounding
// space and trailing commas, and filtered of page noise. Office sites vary
// wildly in markup; the selector list runs from most to least specific, with
// "body" as the catch-all.
func CollectLines(doc *goquery.Document, selectors []string) []string {
	for _, sel := range selectors {
		var lnes []string
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			for _, node := range s.Nodes {
				collectText(node, &lnes)
			}
		})
		if len(lnes) > 0 {
			return lnes
		}
	}
	return nil
}

func collectText(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		lne := strings.ToUpper(strings.TrimRight(strings.TrimSpace(n.Data), ","))
		if lines.Filter(lne) {
			*out = append(*out, lne)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

// splitFullName splits a display name into first and last, dropping titles
// and generational suffixes and any middle names between.
func splitFullName(full string) (first, last string) {
	var names []string
	for _, w := range strings.Fields(full) {
		switch w {
		case "Gov.", "Jr.", "III":
			continue
		}
		names = append(names, strings.TrimRight(w, ","))
	}
	if len(names) == 0 {
		return "", ""
	}
	return names[0], names[len(names)-1]
}
