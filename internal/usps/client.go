// Package usps corrects extracted addresses against the USPS zip-by-address
// lookup. Extraction is heuristic, so each address runs through a fixed
// sequence of submission strategies until the service recognizes one form.
package usps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/govpost/internal/models"
)

// DefaultEndpoint is the public USPS zip lookup used when no override is
// configured.
const DefaultEndpoint = "https://tools.usps.com/tools/app/ziplookup/zipByAddress"

// Strategy is one way of mapping an extracted address onto the lookup form.
type Strategy int

const (
	// AsIs submits address1 and address2 as separate fields.
	AsIs Strategy = iota
	// Combine folds address2 into address1. The service rejects a populated
	// secondary field without a designator it recognizes.
	Combine
	// Swap submits address2 as the primary line, for extractions that put
	// the real street line in the secondary slot.
	Swap
	// DropZip resubmits as-is without the zip constraint, trusting city and
	// state to disambiguate.
	DropZip
)

var strategies = [...]Strategy{AsIs, Combine, Swap, DropZip}

func (s Strategy) String() string {
	switch s {
	case AsIs:
		return "as-is"
	case Combine:
		return "combine"
	case Swap:
		return "swap"
	case DropZip:
		return "drop-zip"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ExhaustedError reports that every strategy failed for one address. It is
// terminal for that address and carries the last underlying failure.
type ExhaustedError struct {
	Address models.Address
	Last    error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("standardize %s: all strategies failed: %v", e.Address, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// Client submits addresses to the lookup service. Requests are paced by a
// shared limiter; the service throttles aggressive clients by IP.
type Client struct {
	http     *http.Client
	endpoint string
	limiter  *rate.Limiter
}

// NewClient builds a client against endpoint. A zero timeout means no
// timeout; rps caps outbound requests per second, with zero meaning unpaced.
func NewClient(endpoint string, timeout time.Duration, rps float64) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		http:     &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
	if rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return c
}

// StandardizeAll corrects each address in place, then sorts and deduplicates
// the result; two extracted forms of one office often standardize to the same
// record. The first terminal failure aborts the batch.
func (c *Client) StandardizeAll(ctx context.Context, adrs []models.Address) ([]models.Address, error) {
	out := make([]models.Address, 0, len(adrs))
	for _, adr := range adrs {
		std, err := c.Standardize(ctx, adr)
		if err != nil {
			return nil, err
		}
		out = append(out, std)
	}
	return models.SortAndDedup(out), nil
}

// Standardize runs the strategy sequence for one address and returns the
// authoritative form. Exhausting every strategy returns an ExhaustedError.
func (c *Client) Standardize(ctx context.Context, adr models.Address) (models.Address, error) {
	var last error
	for _, st := range strategies {
		std, err := c.submit(ctx, adr, st)
		if err == nil {
			return std, nil
		}
		if ctx.Err() != nil {
			return models.Address{}, ctx.Err()
		}
		last = err
	}
	return models.Address{}, &ExhaustedError{Address: adr, Last: last}
}

func (c *Client) submit(ctx context.Context, adr models.Address, st Strategy) (models.Address, error) {
	form := url.Values{}
	switch st {
	case AsIs, DropZip:
		if adr.Address1 != "" {
			form.Set("address1", adr.Address1)
		}
		if adr.Address2 != "" {
			form.Set("address2", adr.Address2)
		}
	case Combine:
		address1 := adr.Address1
		if adr.Address2 != "" {
			address1 += " " + adr.Address2
		}
		form.Set("address1", address1)
	case Swap:
		if adr.Address2 == "" {
			return models.Address{}, fmt.Errorf("%s: no address2 to swap", st)
		}
		form.Set("address1", adr.Address2)
	}
	if adr.City != "" {
		form.Set("city", adr.City)
	}
	if adr.State != "" {
		form.Set("state", adr.State)
	}
	if st != DropZip && adr.Zip != "" {
		form.Set("zip", adr.Zip)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return models.Address{}, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return models.Address{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Address{}, fmt.Errorf("%s: %w", st, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.Address{}, fmt.Errorf("%s: status %s", st, resp.Status)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Address{}, fmt.Errorf("%s: decode: %w", st, err)
	}
	return body.pick(st)
}

type lookupResponse struct {
	ResultStatus string            `json:"resultStatus"`
	AddressList  []candidate       `json:"addressList"`
}

type candidate struct {
	CompanyName  string `json:"companyName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip5         string `json:"zip5"`
	Zip4         string `json:"zip4"`
}

func (c candidate) address() models.Address {
	zip := c.Zip5
	if c.Zip4 != "" {
		zip += "-" + c.Zip4
	}
	return models.Address{
		Address1: c.AddressLine1,
		Address2: c.AddressLine2,
		City:     c.City,
		State:    c.State,
		Zip:      zip,
	}
}

// pick selects the authoritative candidate. "Range" lines are street-range
// placeholders, not concrete addresses, and are excluded; among several
// candidates the one without a secondary line is the canonical entry.
func (r lookupResponse) pick(st Strategy) (models.Address, error) {
	if r.ResultStatus != "SUCCESS" {
		return models.Address{}, fmt.Errorf("%s: result status %q", st, r.ResultStatus)
	}
	if len(r.AddressList) == 0 {
		return models.Address{}, fmt.Errorf("%s: no address in response", st)
	}
	kept := make([]candidate, 0, len(r.AddressList))
	for _, cand := range r.AddressList {
		if !strings.Contains(cand.AddressLine1, "Range") {
			kept = append(kept, cand)
		}
	}
	if len(kept) == 0 {
		return models.Address{}, fmt.Errorf("%s: only range placeholders in response", st)
	}
	for _, cand := range kept {
		if cand.AddressLine2 == "" {
			return cand.address(), nil
		}
	}
	return kept[0].address(), nil
}
