// Package override holds per-person line corrections applied before the
// general editing pipeline. Office webpages occasionally carry addresses in
// forms no generic rule can repair, a building nickname, a merged suite and
// city line, a stray landmark. Each correction is a small declarative rule
// keyed by the person's name; a rule whose match is absent is a silent no-op,
// so rules stay in the table after the upstream page is fixed.
package override

import "strings"

// Key identifies the person a rule set applies to.
type Key struct {
	First string
	Last  string
}

// Kind selects what an Op does with its matched line.
type Kind int

const (
	// Replace swaps the whole matched line for Text, then removes Drop
	// following lines.
	Replace Kind = iota
	// Rewrite substitutes Match with Text inside the matched line.
	Rewrite
	// Remove deletes the matched line and Drop following lines.
	Remove
	// InsertBefore places Text on its own line before the matched line.
	InsertBefore
	// InsertAfter places Text on its own line after the matched line.
	InsertAfter
)

// Mode selects how Match is compared against a line.
type Mode int

const (
	Exact Mode = iota
	Prefix
	Suffix
	Contains
)

// Op is one correction. Ops in a rule set run in order, each scanning the
// lines bottom-up like the extractor does.
type Op struct {
	Kind  Kind
	Mode  Mode
	Match string
	Text  string
	Drop  int
}

func (o Op) matches(line string) bool {
	switch o.Mode {
	case Prefix:
		return strings.HasPrefix(line, o.Match)
	case Suffix:
		return strings.HasSuffix(line, o.Match)
	case Contains:
		return strings.Contains(line, o.Match)
	default:
		return line == o.Match
	}
}

// Table maps a person to the ops applied to their scraped lines.
type Table map[Key][]Op

// Apply runs the person's ops, if any, over a copy of the lines. Applying
// twice yields the same result: inserts are skipped when the inserted text is
// already present, and every other op's match disappears once applied.
func (t Table) Apply(first, last string, in []string) []string {
	ops, ok := t[Key{First: first, Last: last}]
	if !ok {
		return in
	}
	out := append([]string(nil), in...)
	for _, op := range ops {
		out = op.apply(out)
	}
	return out
}

func (o Op) apply(lnes []string) []string {
	if o.Kind == InsertBefore || o.Kind == InsertAfter {
		for _, lne := range lnes {
			if lne == o.Text {
				return lnes
			}
		}
		for idx := len(lnes) - 1; idx >= 0; idx-- {
			if !o.matches(lnes[idx]) {
				continue
			}
			at := idx
			if o.Kind == InsertAfter {
				at = idx + 1
			}
			lnes = append(lnes[:at], append([]string{o.Text}, lnes[at:]...)...)
			return lnes
		}
		return lnes
	}
	for idx := len(lnes) - 1; idx >= 0; idx-- {
		if !o.matches(lnes[idx]) {
			continue
		}
		switch o.Kind {
		case Replace:
			lnes[idx] = o.Text
			lnes = cut(lnes, idx+1, o.Drop)
		case Rewrite:
			lnes[idx] = strings.ReplaceAll(lnes[idx], o.Match, o.Text)
		case Remove:
			lnes = cut(lnes, idx, 1+o.Drop)
		}
	}
	return lnes
}

func cut(lnes []string, at, n int) []string {
	if n <= 0 || at >= len(lnes) {
		return lnes
	}
	if at+n > len(lnes) {
		n = len(lnes) - at
	}
	return append(lnes[:at], lnes[at+n:]...)
}
