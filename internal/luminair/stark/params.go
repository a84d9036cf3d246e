package stark

import "fmt"

// Params mirrors the shape of the teacher's STARKParameters: a small set of
// security-relevant knobs derived from one target SecurityLevel. Since the
// polynomial commitment/FRI engine itself is a simplified query-based
// stand-in (see DESIGN.md "Black-box STARK engine"), NumQueries plays the
// role FRIExpansionFactor/NumCollinearityChecks play in the teacher. The
// prover and verifier do not read Params; both use prover.DefaultQueryCount.
type Params struct {
	// SecurityLevel is nominal only here — the query engine below is not a
	// sound low-degree test, so this field documents intent rather than
	// guaranteeing bits of soundness the way a real FRI instantiation would.
	SecurityLevel int

	// NumQueries is the query budget QueriesFor caps a domain's row count
	// at.
	NumQueries int
}

// DefaultParams mirrors DefaultSTARKParameters' role: a reasonable preset
// for interactive use and tests.
func DefaultParams() Params {
	return Params{SecurityLevel: 80, NumQueries: 64}
}

// Validate reports a configuration error in the same style as the
// teacher's STARKParameters.Validate.
func (p Params) Validate() error {
	if p.SecurityLevel < 1 {
		return fmt.Errorf("stark: security level must be positive, got %d", p.SecurityLevel)
	}
	if p.NumQueries < 1 {
		return fmt.Errorf("stark: number of queries must be positive, got %d", p.NumQueries)
	}
	return nil
}

// QueriesFor returns the number of rows to open for a domain of the given
// size: every row, if the domain is small enough that exhaustive checking
// costs no more than sampling would, else NumQueries.
func (p Params) QueriesFor(domainSize int) int {
	if domainSize <= p.NumQueries {
		return domainSize
	}
	return p.NumQueries
}
