// Package stc implements the single-agent Spanning Tree Coverage planner: a
// cyclic Hamiltonian walk over one agent's FREE cells built by coarsening
// the region into 2x2 "mega-cells", spanning the mega-grid with a tree, and
// inflating that tree into a cell-level path that circumnavigates it.
//
// Grounded on
// _examples/original_source/src/planner/cpp/single/stc.py (mega-grid
// construction, heap-based MST-from-seed, direction-ordered walk loop) with
// two extensions the reference omits: a Kruskal alternative to its DFS-only
// tree construction, and the symmetric-cell rewrite rules needed for
// non-homogeneous mega-cells (cells split between an agent and an
// obstacle/another agent) rather than assuming every mega-cell's four
// children share one owner.
package stc
