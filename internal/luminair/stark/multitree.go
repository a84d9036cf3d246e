package stark

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/luminair/luminair-core/internal/luminair/field"
)

// MultiTree commits several column groups independently — one per present
// operator table, or one per declared LUT — since groups legitimately have
// different row counts (an operator's log_size is its own, not shared
// across the whole proof, per §4.1). Their roots fold into one combined
// root, which is what actually gets mixed into the channel: prover and
// verifier agree on a single phase commitment value without forcing every
// group onto one artificial common height.
type MultiTree struct {
	Trees []*MerkleTree
	Root  [32]byte

	prefix []int // prefix[i] = total rows in groups before i, for flat-index resolution
}

// CommitMulti commits every group and folds the resulting roots together.
// An empty groups slice yields a zero-value MultiTree (no trees, zero
// root) — the caller's phase becomes a no-op commit, e.g. no LUTs required.
func CommitMulti(groups [][][]field.M31) (*MultiTree, error) {
	if len(groups) == 0 {
		return &MultiTree{}, nil
	}
	trees := make([]*MerkleTree, len(groups))
	roots := make([][32]byte, len(groups))
	prefix := make([]int, len(groups)+1)
	for i, g := range groups {
		t, err := CommitColumns(g)
		if err != nil {
			return nil, err
		}
		trees[i] = t
		roots[i] = t.Root()
		prefix[i+1] = prefix[i] + t.NRows()
	}
	return &MultiTree{Trees: trees, Root: combineRoots(roots), prefix: prefix}, nil
}

func combineRoots(roots [][32]byte) [32]byte {
	buf := make([]byte, 32*len(roots))
	for i, r := range roots {
		copy(buf[i*32:], r[:])
	}
	return sha3.Sum256(buf)
}

// GroupRoots returns each committed group's own tree root, in group order.
// The verifier needs these alongside the folded Root: VerifyRow authenticates
// an opening against the specific group's root, not the combined one, so a
// Proof must carry both (the combined root via the channel mix, the group
// roots so openings are checkable at all) and confirm the two agree via
// combineRoots.
func (m *MultiTree) GroupRoots() [][32]byte {
	if m == nil {
		return nil
	}
	roots := make([][32]byte, len(m.Trees))
	for i, t := range m.Trees {
		roots[i] = t.Root()
	}
	return roots
}

// GroupRowCounts returns each group's row count, in group order — what a
// verifier without a live MultiTree needs to rebuild the same flat-index
// prefix table Resolve uses, since a committed root alone doesn't reveal
// how many rows it covers.
func (m *MultiTree) GroupRowCounts() []int {
	if m == nil {
		return nil
	}
	counts := make([]int, len(m.Trees))
	for i, t := range m.Trees {
		counts[i] = t.NRows()
	}
	return counts
}

// ResolvePrefix rebuilds the flat-index-to-(group,row) resolution Resolve
// performs, but from externally-supplied row counts rather than a live
// MultiTree's own trees — the shape a verifier (which only has
// GroupRowCounts, not the trees themselves) needs.
func ResolvePrefix(rowCounts []int, flatIndex int) (groupIndex, row int, err error) {
	total := 0
	for i, n := range rowCounts {
		if flatIndex < total+n {
			return i, flatIndex - total, nil
		}
		total += n
	}
	return 0, 0, fmt.Errorf("stark: flat index %d out of range [0, %d)", flatIndex, total)
}

// TotalRows is the sum of every group's row count — the flat virtual
// row-space DeriveQueries samples over when querying this phase.
func (m *MultiTree) TotalRows() int {
	if m == nil || len(m.prefix) == 0 {
		return 0
	}
	return m.prefix[len(m.prefix)-1]
}

// Resolve maps a flat query index into (groupIndex, rowWithinGroup).
func (m *MultiTree) Resolve(flatIndex int) (groupIndex, row int, err error) {
	if m == nil || len(m.Trees) == 0 {
		return 0, 0, fmt.Errorf("stark: empty multitree has no rows to resolve")
	}
	for i := 0; i < len(m.Trees); i++ {
		if flatIndex < m.prefix[i+1] {
			return i, flatIndex - m.prefix[i], nil
		}
	}
	return 0, 0, fmt.Errorf("stark: flat index %d out of range [0, %d)", flatIndex, m.TotalRows())
}

// OpenAt authenticates the row at flatIndex against groupIndex's tree.
func (m *MultiTree) OpenAt(flatIndex int) (groupIndex, row int, path []ProofNode, err error) {
	groupIndex, row, err = m.Resolve(flatIndex)
	if err != nil {
		return 0, 0, nil, err
	}
	path, err = m.Trees[groupIndex].OpenRow(row)
	return groupIndex, row, path, err
}
