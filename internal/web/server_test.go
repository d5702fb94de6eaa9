package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/govpost/internal/checkpoint"
	"github.com/govpost/internal/directory"
	"github.com/govpost/internal/models"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	store, err := checkpoint.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	roster := &directory.Roster{
		Name: "US Senate",
		Role: models.RolePolitical,
		Persons: []models.Person{
			{
				FirstName: "Sheldon",
				LastName:  "Whitehouse",
				URL:       "https://whitehouse.senate.gov",
				Addresses: []models.Address{
					{Address1: "530 HART SOB", City: "WASHINGTON", State: "DC", Zip: "20510"},
					{Address1: "170 WESTMINSTER ST", City: "PROVIDENCE", State: "RI", Zip: "02903"},
				},
			},
			{FirstName: "Jack", LastName: "Reed", URL: "https://reed.senate.gov"},
		},
	}
	if err := store.Save("senate", roster); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// A non-roster checkpoint in the same store must not break listing.
	if err := store.Save("mailing", []int{1, 2, 3}); err != nil {
		t.Fatalf("Save mailing: %v", err)
	}
	return NewServer(":0", store)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, testServer(t), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestListRosters(t *testing.T) {
	rec := get(t, testServer(t), "/api/rosters")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var summaries []rosterSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %v, want only the roster checkpoint", summaries)
	}
	got := summaries[0]
	want := rosterSummary{Checkpoint: "senate", Name: "US Senate", Persons: 2, Resolved: 1, Addresses: 2}
	if got != want {
		t.Errorf("summary = %+v, want %+v", got, want)
	}
}

func TestGetRoster(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/rosters/senate")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var roster directory.Roster
	if err := json.Unmarshal(rec.Body.Bytes(), &roster); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if roster.Name != "US Senate" || len(roster.Persons) != 2 {
		t.Errorf("roster = %+v", roster)
	}

	rec = get(t, s, "/api/rosters/house")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing roster status = %d, want 404", rec.Code)
	}
}

func TestRosterStats(t *testing.T) {
	rec := get(t, testServer(t), "/api/rosters/senate/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var sum rosterSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.Resolved != 1 || sum.Addresses != 2 {
		t.Errorf("stats = %+v", sum)
	}
}

func TestGetPerson(t *testing.T) {
	s := testServer(t)
	rec := get(t, s, "/api/rosters/senate/persons/whitehouse")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var persons []models.Person
	if err := json.Unmarshal(rec.Body.Bytes(), &persons); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(persons) != 1 || persons[0].FirstName != "Sheldon" {
		t.Errorf("persons = %+v", persons)
	}

	rec = get(t, s, "/api/rosters/senate/persons/nobody")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing person status = %d, want 404", rec.Code)
	}
}
