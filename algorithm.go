// Copyright (c) 2026 SiestaCat
//
// MIT License

package prime

// Algorithm identifies one of the primality tests implemented by the
// package, or AlgAuto to let Select pick one from the shape and size of the
// candidate.
type Algorithm int

const (
	AlgAuto        Algorithm = iota // automatic selection
	AlgMillerRabin                  // strong Miller-Rabin probable prime test
	AlgLucas                        // strong Lucas probable prime test
	AlgBPSW                         // Baillie-PSW (Miller-Rabin base 2 + strong Lucas)
	AlgLucasLehmer                  // Lucas-Lehmer test for Mersenne numbers
)

var algnames = [5]string{
	AlgAuto:        "auto",
	AlgMillerRabin: "miller-rabin",
	AlgLucas:       "lucas",
	AlgBPSW:        "bpsw",
	AlgLucasLehmer: "lucas-lehmer",
}

func (a Algorithm) String() string {
	return algnames[a]
}

// ParseAlgorithm returns the Algorithm named by s, using the same names
// reported by the String method.
func ParseAlgorithm(s string) (Algorithm, error) {
	for i, name := range algnames {
		if s == name {
			return Algorithm(i), nil
		}
	}
	return AlgAuto, &SelectionError{Msg: "unknown algorithm " + s}
}
