package stark

import (
	"sort"

	"github.com/luminair/luminair-core/internal/luminair/field"
)

// DeriveQueries draws count distinct row indices in [0, domainSize) from
// ch, deterministically (so two proves of identical inputs draw identical
// queries, §8 invariant 5) and sorted for stable iteration. Each draw
// advances the channel, matching the "draw after every commit" discipline
// the rest of the orchestrator follows.
func DeriveQueries(ch *Channel, domainSize, count int) []int {
	if count > domainSize {
		count = domainSize
	}
	seen := make(map[int]bool, count)
	out := make([]int, 0, count)
	for len(out) < count {
		q := ch.DrawQM31()
		idx := int(q.C0.A.Uint32() % uint32(domainSize))
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// ExpandQM31Columns splits each QM31 column into its four M31 limb columns
// (c0.A, c0.B, c1.A, c1.B), in column order, so interaction columns can be
// committed and opened with the same MerkleTree machinery as M31 columns.
func ExpandQM31Columns(cols [][]field.QM31) [][]field.M31 {
	out := make([][]field.M31, 0, len(cols)*4)
	for _, col := range cols {
		c0a := make([]field.M31, len(col))
		c0b := make([]field.M31, len(col))
		c1a := make([]field.M31, len(col))
		c1b := make([]field.M31, len(col))
		for i, v := range col {
			c0a[i], c0b[i] = v.C0.A, v.C0.B
			c1a[i], c1b[i] = v.C1.A, v.C1.B
		}
		out = append(out, c0a, c0b, c1a, c1b)
	}
	return out
}

// RowValues extracts row r's scalar value from every column, in column
// order — the per-query slice an authentication path opens against a root.
func RowValues(columns [][]field.M31, row int) []field.M31 {
	out := make([]field.M31, len(columns))
	for i, col := range columns {
		out[i] = col[row]
	}
	return out
}

// OpenMainRow resolves a flat query index against the main MultiTree,
// authenticates it there and at the matching (group, row) in the
// interaction MultiTree, and reads both phases' row values out of the
// caller-supplied per-group column sets.
func OpenMainRow(flatIndex int, mainTree, interTree *MultiTree, mainGroups, interGroups [][][]field.M31) (MainOpening, error) {
	group, row, mainPath, err := mainTree.OpenAt(flatIndex)
	if err != nil {
		return MainOpening{}, err
	}
	interPath, err := interTree.Trees[group].OpenRow(row)
	if err != nil {
		return MainOpening{}, err
	}
	return MainOpening{
		Group:             group,
		Row:               row,
		MainValues:        RowValues(mainGroups[group], row),
		MainPath:          mainPath,
		InteractionValues: RowValues(interGroups[group], row),
		InteractionPath:   interPath,
	}, nil
}

// OpenPreprocessedRow resolves a flat query index against the preprocessed
// MultiTree and reads that group's row values.
func OpenPreprocessedRow(flatIndex int, preTree *MultiTree, preGroups [][][]field.M31) (PreprocessedOpening, error) {
	group, row, path, err := preTree.OpenAt(flatIndex)
	if err != nil {
		return PreprocessedOpening{}, err
	}
	return PreprocessedOpening{
		Group:  group,
		Row:    row,
		Values: RowValues(preGroups[group], row),
		Path:   path,
	}, nil
}
