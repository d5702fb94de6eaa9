package directory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/govpost/internal/checkpoint"
	"github.com/govpost/internal/debug"
	"github.com/govpost/internal/extract"
	"github.com/govpost/internal/lines"
	"github.com/govpost/internal/models"
	"github.com/govpost/internal/override"
	"github.com/govpost/internal/usps"
)

// Roster is one directory of officeholders, persisted whole as a checkpoint.
type Roster struct {
	Name    string          `json:"name"`
	Role    models.Role     `json:"role"`
	Persons []models.Person `json:"persons"`
}

// Resolved counts persons that already carry addresses.
func (r *Roster) Resolved() int {
	n := 0
	for i := range r.Persons {
		if r.Persons[i].Resolved() {
			n++
		}
	}
	return n
}

// CustomFetch produces extracted (not yet standardized) addresses for one
// person outside the normal page pipeline.
type CustomFetch func(ctx context.Context, f *Fetcher, per models.Person) ([]models.Address, error)

// Source describes how one roster is scraped.
type Source struct {
	// Name is the checkpoint name, e.g. "house".
	Name  string
	Title string
	Role  models.Role
	// PathGroups are candidate contact-page paths under each person's URL,
	// tried group by group until one yields at least two zip codes; lines
	// from paths within a group are merged.
	PathGroups [][]string
	// Selectors locate address text in the fetched pages.
	Selectors []string
	// Overrides are the per-person line corrections for this roster.
	Overrides override.Table
	// Abbreviate rewrites office-building lines, when the roster has any.
	Abbreviate func([]string) []string
	// Members fetches the roster's person list.
	Members func(ctx context.Context, f *Fetcher) ([]models.Person, error)
	// Addresses, when set, replaces the page pipeline for every person.
	Addresses CustomFetch
	// Custom replaces the page pipeline for specific persons.
	Custom map[override.Key]CustomFetch
}

// Processor drives a source end to end. Persons are processed strictly one
// at a time; the checkpoint is rewritten after each so an interrupted run
// resumes at the first unresolved person.
type Processor struct {
	Fetcher *Fetcher
	Store   *checkpoint.Store
	USPS    *usps.Client
	// Limit caps how many unresolved persons are processed this run;
	// zero means all.
	Limit int
	Debug bool
}

// Run loads or fetches the roster, resolves addresses for every unresolved
// person, and returns the final roster. The first person-level failure
// aborts the run; progress up to that point is already checkpointed.
func (p *Processor) Run(ctx context.Context, src Source) (*Roster, error) {
	roster := &Roster{}
	err := p.Store.Load(src.Name, roster)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		persons, err := src.Members(ctx, p.Fetcher)
		if err != nil {
			return nil, fmt.Errorf("%s members: %w", src.Name, err)
		}
		*roster = Roster{Name: src.Title, Role: src.Role, Persons: persons}
		if err := p.Store.Save(src.Name, roster); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}
	log.Printf("%s: %d persons, %d resolved", src.Name, len(roster.Persons), roster.Resolved())

	done := 0
	for i := range roster.Persons {
		per := &roster.Persons[i]
		if per.Resolved() {
			continue
		}
		if p.Limit > 0 && done >= p.Limit {
			break
		}
		log.Printf("%3d%% %s %s %s", (i+1)*100/len(roster.Persons), per.FirstName, per.LastName, per.URL)
		adrs, err := p.resolve(ctx, src, *per)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", per.FirstName, per.LastName, err)
		}
		log.Printf("%s", models.AddressList(adrs))
		per.Addresses = adrs
		if err := p.Store.Save(src.Name, roster); err != nil {
			return nil, err
		}
		done++
	}
	return roster, nil
}

func (p *Processor) resolve(ctx context.Context, src Source, per models.Person) ([]models.Address, error) {
	adrs, err := p.extractFor(ctx, src, per)
	if err != nil {
		return nil, err
	}
	if err := extract.Validate(adrs); err != nil {
		return nil, err
	}
	return p.USPS.StandardizeAll(ctx, adrs)
}

func (p *Processor) extractFor(ctx context.Context, src Source, per models.Person) ([]models.Address, error) {
	if fetch, ok := src.Custom[override.Key{First: per.FirstName, Last: per.LastName}]; ok {
		return fetch(ctx, p.Fetcher, per)
	}
	if src.Addresses != nil {
		return src.Addresses(ctx, p.Fetcher, per)
	}
	lnes, err := p.collect(ctx, src, per)
	if err != nil {
		return nil, err
	}
	return extract.Extract(lnes)
}

// collect tries each path group until one yields an edited sequence with at
// least two zip codes, one home-state office plus one in DC.
func (p *Processor) collect(ctx context.Context, src Source, per models.Person) ([]string, error) {
	var lastErr error
	for _, group := range src.PathGroups {
		var raw []string
		for _, path := range group {
			url := per.URL
			if path != "" {
				url += "/" + path
			}
			doc, err := p.Fetcher.Document(ctx, url)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				lastErr = err
				continue
			}
			raw = append(raw, CollectLines(doc, src.Selectors)...)
		}
		if len(raw) == 0 {
			continue
		}
		lnes := lines.StripDots(lines.Normalize(raw))
		debug.Lines(p.Debug, "pre-edit "+per.URL, lnes)
		lnes = src.Overrides.Apply(per.FirstName, per.LastName, lnes)
		lnes = lines.Edit(lnes)
		if src.Abbreviate != nil {
			lnes = src.Abbreviate(lnes)
		}
		debug.Lines(p.Debug, "post-edit "+per.URL, lnes)
		if lines.CountZips(lnes) >= 2 {
			return lnes, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("no page with two zip codes: last fetch: %w", lastErr)
	}
	return nil, errors.New("no page with two zip codes")
}
