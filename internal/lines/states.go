package lines

import (
	"regexp"
	"sort"
	"strings"
)

// stateAbbrevs are the 2-letter codes the USPS accepts: the 50 states, DC,
// the territories, the freely associated states, and the military "states".
var stateAbbrevs = map[string]bool{
	"AL": true, "AK": true, "AS": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "DC": true, "FM": true, "FL": true,
	"GA": true, "GU": true, "HI": true, "ID": true, "IL": true, "IN": true,
	"IA": true, "KS": true, "KY": true, "LA": true, "ME": true, "MH": true,
	"MD": true, "MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true, "NM": true,
	"NY": true, "NC": true, "ND": true, "MP": true, "OH": true, "OK": true,
	"OR": true, "PW": true, "PA": true, "PR": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true, "VI": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
	"AA": true, "AE": true, "AP": true,
}

// stateNames maps full uppercase state names to USPS abbreviations.
var stateNames = map[string]string{
	"ALABAMA":                  "AL",
	"ALASKA":                   "AK",
	"AMERICAN SAMOA":           "AS",
	"ARIZONA":                  "AZ",
	"ARKANSAS":                 "AR",
	"CALIFORNIA":               "CA",
	"COLORADO":                 "CO",
	"CONNECTICUT":              "CT",
	"DELAWARE":                 "DE",
	"DISTRICT OF COLUMBIA":     "DC",
	"FLORIDA":                  "FL",
	"GEORGIA":                  "GA",
	"GUAM":                     "GU",
	"HAWAII":                   "HI",
	"IDAHO":                    "ID",
	"ILLINOIS":                 "IL",
	"INDIANA":                  "IN",
	"IOWA":                     "IA",
	"KANSAS":                   "KS",
	"KENTUCKY":                 "KY",
	"LOUISIANA":                "LA",
	"MAINE":                    "ME",
	"MARYLAND":                 "MD",
	"MASSACHUSETTS":            "MA",
	"MICHIGAN":                 "MI",
	"MINNESOTA":                "MN",
	"MISSISSIPPI":              "MS",
	"MISSOURI":                 "MO",
	"MONTANA":                  "MT",
	"NEBRASKA":                 "NE",
	"NEVADA":                   "NV",
	"NEW HAMPSHIRE":            "NH",
	"NEW JERSEY":               "NJ",
	"NEW MEXICO":               "NM",
	"NEW YORK":                 "NY",
	"NORTH CAROLINA":           "NC",
	"NORTH DAKOTA":             "ND",
	"NORTHERN MARIANA ISLANDS": "MP",
	"OHIO":                     "OH",
	"OKLAHOMA":                 "OK",
	"OREGON":                   "OR",
	"PENNSYLVANIA":             "PA",
	"PUERTO RICO":              "PR",
	"RHODE ISLAND":             "RI",
	"SOUTH CAROLINA":           "SC",
	"SOUTH DAKOTA":             "SD",
	"TENNESSEE":                "TN",
	"TEXAS":                    "TX",
	"UTAH":                     "UT",
	"VERMONT":                  "VT",
	"VIRGIN ISLANDS":           "VI",
	"VIRGINIA":                 "VA",
	"WASHINGTON":               "WA",
	"WEST VIRGINIA":            "WV",
	"WISCONSIN":                "WI",
	"WYOMING":                  "WY",
}

// reStateToken matches any full state name or USPS abbreviation on word
// boundaries. Alternatives are ordered longest first so "WEST VIRGINIA" is
// matched before "VIRGINIA" at the same position.
var reStateToken = compileStateToken()

func compileStateToken() *regexp.Regexp {
	tokens := make([]string, 0, len(stateNames)+len(stateAbbrevs))
	for name := range stateNames {
		tokens = append(tokens, name)
	}
	for abbrev := range stateAbbrevs {
		tokens = append(tokens, abbrev)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return regexp.MustCompile(`\b(?:` + strings.Join(tokens, "|") + `)\b`)
}

// IsStateLine reports whether the trimmed line is exactly a state
// abbreviation or a full state name.
func IsStateLine(line string) bool {
	line = strings.TrimSpace(line)
	if stateAbbrevs[line] {
		return true
	}
	_, ok := stateNames[line]
	return ok
}

// AbbreviateState maps a full state name to its USPS abbreviation;
// abbreviations pass through unchanged. Unknown input is returned as-is.
func AbbreviateState(token string) string {
	token = strings.TrimSpace(token)
	if stateAbbrevs[token] {
		return token
	}
	if abbrev, ok := stateNames[token]; ok {
		return abbrev
	}
	return token
}

// lastStateToken finds the final state name or abbreviation in the line,
// preferring the longest token at each position. The last match wins so a
// city that shares a state's name ("WASHINGTON DC") resolves to the state
// that follows it.
func lastStateToken(line string) (start, end int, ok bool) {
	locs := reStateToken.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return 0, 0, false
	}
	last := locs[len(locs)-1]
	return last[0], last[1], true
}
