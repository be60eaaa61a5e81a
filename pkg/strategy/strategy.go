// Package strategy names the deduction rules a solver can apply.
package strategy

import "fmt"

// Strategy identifies one named deduction rule.
type Strategy uint8

const (
	NakedSingles Strategy = iota
	HiddenSingles
	LockedCandidates
	NakedPairs
	NakedTriples
	NakedQuads
	HiddenPairs
	HiddenTriples
	HiddenQuads
	XWing
	Swordfish
	Jellyfish
)

// All lists every strategy in ascending order of complexity.
var All = []Strategy{
	NakedSingles,
	HiddenSingles,
	LockedCandidates,
	NakedPairs,
	NakedTriples,
	NakedQuads,
	HiddenPairs,
	HiddenTriples,
	HiddenQuads,
	XWing,
	Swordfish,
	Jellyfish,
}

var names = map[Strategy]string{
	NakedSingles:     "naked singles",
	HiddenSingles:    "hidden singles",
	LockedCandidates: "locked candidates",
	NakedPairs:       "naked pairs",
	NakedTriples:     "naked triples",
	NakedQuads:       "naked quads",
	HiddenPairs:      "hidden pairs",
	HiddenTriples:    "hidden triples",
	HiddenQuads:      "hidden quads",
	XWing:            "x-wing",
	Swordfish:        "swordfish",
	Jellyfish:        "jellyfish",
}

func (s Strategy) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Parse returns the strategy whose String form is name.
func Parse(name string) (Strategy, error) {
	for _, s := range All {
		if names[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := names[s]; !ok {
		return nil, fmt.Errorf("unknown strategy %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
