package air

import "github.com/luminair/luminair-core/internal/luminair/field"

// Expr is a column read or a polynomial built from column reads. It carries
// both a concrete value and a degree bound, so the same expression tree
// serves the two kinds of evaluator provider §9 calls for: one pulls
// concrete values for the verifier's spot-checks of opened rows, the other
// only tracks the degree bound. Both walk identical Add/Sub/Mul call sequences;
// only the caller cares which half of the result it reads.
type Expr struct {
	Value  field.M31
	Degree int
}

// Const lifts a constant (degree 0) into an expression.
func Const(v field.M31) Expr { return Expr{Value: v, Degree: 0} }

// Column lifts a trace column read (degree 1) into an expression.
func Column(v field.M31) Expr { return Expr{Value: v, Degree: 1} }

func (e Expr) Add(o Expr) Expr {
	return Expr{Value: e.Value.Add(o.Value), Degree: maxInt(e.Degree, o.Degree)}
}

func (e Expr) Sub(o Expr) Expr {
	return Expr{Value: e.Value.Sub(o.Value), Degree: maxInt(e.Degree, o.Degree)}
}

func (e Expr) Mul(o Expr) Expr {
	return Expr{Value: e.Value.Mul(o.Value), Degree: e.Degree + o.Degree}
}

func (e Expr) Neg() Expr {
	return Expr{Value: e.Value.Neg(), Degree: e.Degree}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Cursor pulls column values off a single row in schema order, the
// next_trace_mask() contract every operator Eval shares (§4.2).
type Cursor struct {
	row []field.M31
	pos int
}

// NewCursor builds a Cursor over one row's values, read in schema field order.
func NewCursor(row []field.M31) *Cursor {
	return &Cursor{row: row}
}

// NextMask returns the next column value as an Expr and advances the cursor.
// Panics if called more times than the row has fields — a schema/witness
// mismatch, which is a programming error, not a runtime condition to
// recover from.
func (c *Cursor) NextMask() Expr {
	v := c.row[c.pos]
	c.pos++
	return Column(v)
}

// RelationEntry is one LogUp relation contribution: a signed multiplicity
// and the (value, id) tuple combined against NodeElements or LookupElements.
// A positive multiplicity emits a token, a negative multiplicity consumes
// one, per §4.2's interaction-constraint contract.
type RelationEntry struct {
	Multiplicity Expr
	Values       []Expr
}

// Eval is the symbolic-evaluator capability set §9 specifies:
// read_next_mask / add_constraint / add_to_relation / finalize_logup. Every
// operator's constraint logic is written once against this interface and
// run through both concrete providers below.
type Eval interface {
	NextMask() Expr
	AddConstraint(expr Expr)
	AddToRelation(entry RelationEntry)
	FinalizeLogup()
}

// ConstraintChecker is the "pulls concrete column values" provider: it runs
// an operator's Eval logic against one real row and reports every
// constraint that evaluated to non-zero. The verifier uses it to
// re-evaluate queried rows. Witness generation and the prover do not run
// it, so a row that violates its constraints is not rejected at proving
// time.
type ConstraintChecker struct {
	cursor     *Cursor
	component  string
	violations []string
	relations  []RelationEntry
}

// NewConstraintChecker builds a checker over one row, labelled by the
// component name for error messages.
func NewConstraintChecker(component string, row []field.M31) *ConstraintChecker {
	return &ConstraintChecker{cursor: NewCursor(row), component: component}
}

func (c *ConstraintChecker) NextMask() Expr { return c.cursor.NextMask() }

func (c *ConstraintChecker) AddConstraint(expr Expr) {
	if !expr.Value.IsZero() {
		c.violations = append(c.violations, c.component)
	}
}

func (c *ConstraintChecker) AddToRelation(entry RelationEntry) {
	c.relations = append(c.relations, entry)
}

func (c *ConstraintChecker) FinalizeLogup() {}

// Err returns a ConstraintFailure error if any constraint this checker saw
// evaluated to non-zero, nil otherwise.
func (c *ConstraintChecker) Err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return NewConstraintFailure(c.component, "row failed an arithmetic or boolean constraint")
}

// Relations returns every relation entry recorded during evaluation, for
// callers that need to re-derive LogUp fractions from a spot-checked row.
func (c *ConstraintChecker) Relations() []RelationEntry { return c.relations }

// DegreeBound is the "builds symbolic polynomials" provider: it runs the
// same Eval logic purely to discover the highest-degree constraint an
// operator emits. The prover and verifier do not call it; the simplified
// STARK backend has no blowup factor to size.
type DegreeBound struct {
	pos       int
	nFields   int
	maxDegree int
}

// NewDegreeBound builds a degree-only evaluator over a row schema with
// nFields named columns.
func NewDegreeBound(nFields int) *DegreeBound {
	return &DegreeBound{nFields: nFields}
}

func (d *DegreeBound) NextMask() Expr {
	d.pos++
	return Expr{Degree: 1}
}

func (d *DegreeBound) AddConstraint(expr Expr) {
	if expr.Degree > d.maxDegree {
		d.maxDegree = expr.Degree
	}
}

func (d *DegreeBound) AddToRelation(entry RelationEntry) {
	deg := entry.Multiplicity.Degree
	for _, v := range entry.Values {
		deg = maxInt(deg, v.Degree)
	}
	if deg > d.maxDegree {
		d.maxDegree = deg
	}
}

func (d *DegreeBound) FinalizeLogup() {}

// MaxDegree returns the highest constraint degree seen.
func (d *DegreeBound) MaxDegree() int { return d.maxDegree }
