// Package graphseq orders dependency graphs into execution chunks under
// priority groups.
//
// 🚀 What is graphseq?
//
//	A small, deterministic toolkit that brings together:
//		• Sequencing: chunked topological order where a dependency on an item
//		  in a later group never blocks
//		• Cycle reporting: loops that block ordering are listed and broken by
//		  forcing the least blocked item
//		• Verification: the edges a forced ordering does not honor
//		• Fixtures: chains, rings, fan-ins, random DAGs and banded groups
//
// Under the hood, everything is organized under three packages:
//
//	sequencer/    — Graph, Groups, Result, Sequence, Validate, Violations
//	builder/      — deterministic fixture constructors for tests and benchmarks
//	cmd/graphseq/ — command line front end reading YAML or JSON documents
//
// Quick example:
//
//	graph:  {app: [lib], lib: [], tool: [app]}
//	groups: [[lib, app], [tool]]
//
//	0: lib
//	1: app
//	2: tool
//	safe: true
//
//	go install github.com/katalvlaran/graphseq/cmd/graphseq@latest
package graphseq
