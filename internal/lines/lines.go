// Package lines normalizes raw text fragments scraped from office webpages
// into a canonical line sequence the address extractor can parse. Every edit
// is a pure function from one line slice to a new one, and the composed Edit
// pipeline is a fixed point: running it on its own output changes nothing.
package lines

import (
	"regexp"
	"strings"
)

// reZip matches a line that is exactly a USPS zip code, 5 digits or 5+4.
var reZip = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// reZipSuffix matches a zip code token at the end of a line.
var reZipSuffix = regexp.MustCompile(`\b\d{5}(-\d{4})?$`)

// reFloat matches a floating point number, e.g. a map coordinate
// "46.86551919465073" isolated in its own text node.
var reFloat = regexp.MustCompile(`^-?\d+\.\d+$`)

// rePhone matches US phone numbers in their common formats.
var rePhone = regexp.MustCompile(`(\+1[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`)

// IsZip reports whether the line is exactly a 5-digit or 5+4-digit zip code.
func IsZip(line string) bool {
	return reZip.MatchString(line)
}

// EndsWith5Digits reports whether the final five characters are all digits.
func EndsWith5Digits(line string) bool {
	if len(line) < 5 {
		return false
	}
	for _, c := range line[len(line)-5:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsAllDigits reports whether the line is non-empty and entirely digits.
func IsAllDigits(line string) bool {
	if line == "" {
		return false
	}
	for _, c := range line {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// HasZip reports whether any line is exactly a 5-digit zip code.
func HasZip(lines []string) bool {
	return CountZips(lines) > 0
}

// CountZips counts lines that are exactly a zip code. Callers require at
// least two before accepting a page: one home-state office plus one in DC.
func CountZips(lines []string) int {
	n := 0
	for _, line := range lines {
		if IsZip(line) {
			n++
		}
	}
	return n
}

// Filter is the noise predicate applied to raw scraped text nodes before
// editing. It rejects markup residue, phone and fax numbers, map
// coordinates, office-hour ranges and other non-address content.
func Filter(line string) bool {
	if line == "" {
		return false
	}
	if strings.Contains(line, "IFRAME") ||
		strings.Contains(line, "FUNCTION") ||
		strings.Contains(line, "FORM") ||
		strings.Contains(line, "!IMPORTANT;") ||
		strings.Contains(line, "PHONE:") ||
		strings.Contains(line, "FAX:") ||
		strings.Contains(line, "OFFICE OF") {
		return false
	}
	// Office hours, e.g. "9:00 AM TO 5:00 PM".
	if strings.Contains(line, "AM") && strings.Contains(line, "PM") && strings.Contains(line, "TO") {
		return false
	}
	// A 5+4 zip looks like a phone number to the phone pattern, so lines
	// ending in a zip token are kept regardless.
	if reZipSuffix.MatchString(line) {
		return true
	}
	if rePhone.MatchString(line) || reFloat.MatchString(line) {
		return false
	}
	return true
}

// Edit runs the full normalization pipeline in its fixed order.
func Edit(in []string) []string {
	out := SplitNewlines(in)
	out = SplitBar(out)
	out = Normalize(out)
	out = StripDots(out)
	out = DropMailingMarkers(out)
	out = DropEmpty(out)
	out = JoinDisjointZip(out)
	out = ConcatZip(out)
	out = SplitCityStateZip(out)
	out = SplitComma(out)
	out = DropEmpty(out)
	out = TrimAfterLastZip(out)
	return out
}

// SplitNewlines explodes lines containing embedded newlines.
func SplitNewlines(in []string) []string {
	return splitOn(in, "\n")
}

// SplitBar splits lines on the "|" layout delimiter:
// "WELLS FARGO PLAZA | 221 N KANSAS STREET | SUITE 1500" becomes three lines.
func SplitBar(in []string) []string {
	return splitOn(in, "|")
}

// SplitComma splits any remaining comma-separated line into its parts:
// "US FEDERAL BUILDING, 220 E ROSSER AVENUE" becomes two lines.
func SplitComma(in []string) []string {
	return splitOn(in, ",")
}

func splitOn(in []string, sep string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		if !strings.Contains(line, sep) {
			out = append(out, line)
			continue
		}
		for _, part := range strings.Split(line, sep) {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Normalize cleans each line: non-breaking and zero-width spaces, the "½"
// glyph, leading "#", trailing commas, and runs of whitespace.
func Normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		out = append(out, normalizeLine(line))
	}
	return out
}

var zeroWidth = strings.NewReplacer(
	"\u00a0", " ",
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "",
	"\u00bd", " 1/2",
)

func normalizeLine(line string) string {
	line = zeroWidth.Replace(line)
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "#")
	line = strings.TrimRight(line, ",")
	return strings.Join(strings.Fields(line), " ")
}

// StripDots removes periods: "D.C." becomes "DC",
// "2004 N. CLEVELAND ST." becomes "2004 N CLEVELAND ST".
func StripDots(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		out = append(out, strings.ReplaceAll(line, ".", ""))
	}
	return out
}

// DropMailingMarkers removes "mailing address" labels that some pages wrap
// around a PO Box, e.g. "PO BOX 4989 (MAILING)".
func DropMailingMarkers(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		if line == "MAILING ADDRESS" || line == "MAILING ADDRESS:" {
			continue
		}
		out = append(out, strings.TrimSpace(strings.ReplaceAll(line, " (MAILING)", "")))
	}
	return out
}

// DropEmpty removes empty lines.
func DropEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// JoinDisjointZip repairs a zip code split across two text nodes:
// "VIDALIA, GA 304" + "74" becomes "VIDALIA, GA 30474". Only the bottommost
// occurrence is joined; a page has at most one such layout break.
func JoinDisjointZip(in []string) []string {
	out := append([]string(nil), in...)
	for idx := len(out) - 1; idx >= 1; idx-- {
		line := out[idx]
		if len(line) < 5 && IsAllDigits(line) && endsWithDigit(out[idx-1]) {
			out[idx-1] += line
			out = append(out[:idx], out[idx+1:]...)
			break
		}
	}
	return out
}

func endsWithDigit(line string) bool {
	if line == "" {
		return false
	}
	c := line[len(line)-1]
	return c >= '0' && c <= '9'
}

// ConcatZip appends a line that is exactly a zip code to the preceding line:
// "355 S WASHINGTON ST, SUITE 210, DANVILLE, IN" + "46122" join so the city,
// state and zip can be re-split as a unit. A zip already preceded by a bare
// state line is left alone; that sequence is the editor's own output.
func ConcatZip(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		if IsZip(line) && len(out) > 0 && !IsStateLine(out[len(out)-1]) {
			out[len(out)-1] += " " + line
			continue
		}
		out = append(out, line)
	}
	return out
}

// SplitCityStateZip splits a combined trailing line into separate city,
// state and zip lines:
//
//	"SYRACUSE, NY 13202"        -> "SYRACUSE", "NY", "13202"
//	"WASHINGTON, DC 20515-0001" -> "WASHINGTON", "DC", "20515-0001"
//	"SEATTLE WASHINGTON"        -> "SEATTLE", "WA"
//
// A line ending in five digits is split unconditionally. Otherwise the state
// is located by the last, longest state-token match in the line; full names
// are abbreviated. Lines ending in a 9-digit zip are never treated as
// 5-digit splits so the +4 extension is not misread as the whole zip.
func SplitCityStateZip(in []string) []string {
	out := make([]string, 0, len(in))
	for _, line := range in {
		if len(line) > 5 && EndsWith5Digits(line) {
			zip := line[len(line)-5:]
			rest := strings.TrimRight(line[:len(line)-5], " ,")
			out = append(out, splitCityState(rest)...)
			out = append(out, zip)
			continue
		}
		if parts, ok := splitEmbeddedState(line); ok {
			out = append(out, parts...)
			continue
		}
		out = append(out, line)
	}
	return out
}

// splitCityState splits "CITY, ST" or "CITY STATENAME" remainders left after
// the zip has been peeled off a combined line.
func splitCityState(rest string) []string {
	if strings.Contains(rest, ",") {
		var parts []string
		for _, part := range strings.Split(rest, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if IsStateLine(part) {
				part = AbbreviateState(part)
			}
			parts = append(parts, part)
		}
		return parts
	}
	if parts, ok := splitEmbeddedState(rest); ok {
		return parts
	}
	if rest == "" {
		return nil
	}
	return []string{rest}
}

// splitEmbeddedState splits a line that ends in a state token, optionally
// followed by a zip. The state must not start the line: a line that is only
// "WASHINGTON" is a city, not a state.
func splitEmbeddedState(line string) ([]string, bool) {
	tail := line
	zip := ""
	if loc := reZipSuffix.FindStringIndex(line); loc != nil && loc[0] > 0 {
		zip = line[loc[0]:]
		tail = strings.TrimRight(line[:loc[0]], " ,")
	}
	start, end, ok := lastStateToken(tail)
	if !ok || end != len(tail) || start == 0 {
		return nil, false
	}
	city := strings.TrimRight(tail[:start], " ,")
	if city == "" {
		return nil, false
	}
	parts := splitCommaString(city)
	parts = append(parts, AbbreviateState(tail[start:end]))
	if zip != "" {
		parts = append(parts, zip)
	}
	return parts, true
}

func splitCommaString(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// TrimAfterLastZip discards trailing navigation and footer text after the
// last line carrying a zip token. Sequences with no zip at all are returned
// unchanged.
func TrimAfterLastZip(in []string) []string {
	for idx := len(in) - 1; idx >= 0; idx-- {
		if EndsWith5Digits(in[idx]) || IsZip(in[idx]) {
			return in[:idx+1]
		}
	}
	return in
}
