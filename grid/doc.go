// Package grid defines the occupancy Grid, the per-episode LabelMatrix that
// assigns free cells to agents, and the primitive operations every
// partitioner, transfer, and STC routine in this module builds on: 4-/8-
// neighborhoods, partition/border/adjacency views, the bridge (articulation)
// test, and DFS-subtree enumeration.
//
// Grid is immutable after construction. LabelMatrix is mutated in place by
// partitioners, the transfer engine, and change handlers; callers are
// expected to hold exclusive access for the duration of any call that
// mutates it, mirroring the single-threaded, synchronous contract of the
// wider planning engine (see the root package doc for the full data flow).
package grid
