// Package planner provides the continuous coverage-path-planning facade:
// it wires a chosen initial partitioner, a chosen fleet-change handler, and
// per-agent STC into one object that a caller drives by asking for an
// initial plan and then reporting agent joins/departures.
//
// Grounded on
// _examples/original_source/src/planner/cpp/continuous/planner.py
// (ContinuousCoveragePathPlanner) and converter.py, and on
// _examples/original_source/src/planner/cpp/multi/planner.py /
// single/planner.py for the string-keyed factory pattern, itself grounded
// on github.com/katalvlaran/lvlath's builder/variants.go tag-keyed
// registry of grid-builder variants.
package planner
