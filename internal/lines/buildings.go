package lines

import "strings"

// houseBuildings and senateBuildings name the Capitol Hill office buildings
// whose lines are rewritten to the canonical "NNN <NAME> HOB/SOB" form.
var houseBuildings = []string{"CANNON", "LONGWORTH", "RAYBURN"}
var senateBuildings = []string{"HART", "DIRKSEN", "RUSSELL"}

// AbbreviateHOB rewrites House office building references:
//
//	"2312 RAYBURN HOUSE OFFICE BUILDING" -> "2312 RAYBURN HOB"
//	"1107 LONGWORTH HOUSE" + "OFFICE BUILDING" -> "1107 LONGWORTH HOB"
//	"LONGWORTH HOB" + "ROOM 1027" -> "1027 LONGWORTH HOB"
func AbbreviateHOB(in []string) []string {
	return abbreviateBuildings(in, houseBuildings, "HOUSE", "HOUSE OFFICE", "H.O.B.", "HOB")
}

// AbbreviateSOB rewrites Senate office building references the same way,
// e.g. "716 HART SENATE OFFICE BUILDING" -> "716 HART SOB".
func AbbreviateSOB(in []string) []string {
	return abbreviateBuildings(in, senateBuildings, "SENATE", "SENATE OFFICE", "S.O.B.", "SOB")
}

func abbreviateBuildings(in, names []string, chamber, chamberOffice, dotted, short string) []string {
	out := append([]string(nil), in...)
	for idx := len(out) - 1; idx >= 0; idx-- {
		if !containsAny(out[idx], names) {
			continue
		}

		// "1107 LONGWORTH HOUSE" split from "OFFICE BUILDING" by the page
		// layout; rejoin before abbreviating.
		if idx+1 < len(out) && strings.HasSuffix(out[idx], chamber) && out[idx+1] == "OFFICE BUILDING" {
			out[idx] += " OFFICE BUILDING"
			out = append(out[:idx+1], out[idx+2:]...)
		}

		// "2312 RAYBURN HOUSE OFFICE BUILDING", "2430 RAYBURN HOUSE OFFICE BLDG"
		if cut := strings.Index(out[idx], chamberOffice); cut >= 0 {
			out[idx] = out[idx][:cut] + short
		}

		// "2205 RAYBURN BUILDING"
		if cut := strings.Index(out[idx], "BUILDING"); cut >= 0 {
			out[idx] = out[idx][:cut] + short
		}

		// "1119 LONGWORTH H.O.B." when the dots survive.
		if cut := strings.Index(out[idx], dotted); cut >= 0 {
			out[idx] = out[idx][:cut] + short
		}

		// Merge a separate room line: "LONGWORTH HOB", "ROOM 1027".
		if idx+1 < len(out) && strings.Contains(out[idx+1], "ROOM") && strings.HasSuffix(strings.TrimSpace(out[idx]), short) {
			fields := strings.Fields(out[idx+1])
			if len(fields) >= 2 {
				out[idx] = fields[1] + " " + out[idx]
				out = append(out[:idx+1], out[idx+2:]...)
			}
		}
	}
	return out
}

func containsAny(line string, names []string) bool {
	for _, name := range names {
		if strings.Contains(line, name) {
			return true
		}
	}
	return false
}
