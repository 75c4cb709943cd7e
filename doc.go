// Package mcpp is a multi-agent coverage path planning engine over a 2-D
// occupancy grid.
//
// Given a Grid and a set of agents, mcpp partitions the free cells among
// agents, plans each agent's full-coverage trajectory, and reacts to fleet
// churn (agents joining or leaving) without replanning from scratch.
//
// Everything is organized under domain subpackages:
//
//	grid/            — occupancy Grid, per-agent LabelMatrix, bridge/subtree queries
//	partition/bfs/   — multi-source BFS flood-fill partitioner
//	partition/darp/  — DARP iterative cost-reweighting partitioner
//	transfer/        — single-cell and subtree region-transfer primitives
//	balance/         — ascending and round-robin cell-count balancing drivers
//	stc/             — single-agent Spanning Tree Coverage planner
//	handler/         — fleet-change handlers (NoOp, Redistribute, Transfer, Voronoi, Propagation, WTransfer)
//	planner/         — the ContinuousPlanner facade tying the above together
//	config/          — YAML + environment configuration loading
//	ioformat/        — grid ingestion from text and raster images
//	persist/         — CSV benchmark logging and JSON session snapshots
package mcpp
