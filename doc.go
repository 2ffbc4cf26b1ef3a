// Package parsweep loads parameter-study ensembles for scientific models:
// a compact YAML description of fixed, lattice (Cartesian-product) and
// enumerated (zipped) parameter groups is expanded into one concrete
// input record per ensemble member, computed outputs are attached to
// each member, and the whole study is written back out as a Python data
// module for analysis.
//
// 🚀 What is parsweep?
//
//	A small, deterministic library that brings together:
//		• One declarative input schema: settings + fixed/lattice/enumerated groups
//		• Range shorthand: [start, stop, step] triples expand to explicit values
//		• log10(name) parameters: candidates are exponentiated and renamed
//		• Cartesian expansion over up to 7 simultaneously-varying dimensions
//		• Position-wise zipping of enumerated parameters
//		• A resettable cursor over (input, output) record pairs
//		• A Python-module writer for the expanded inputs and outputs
//
// ✨ Why choose parsweep?
//
//   - Fail-fast – every malformed input aborts the load with one
//     descriptive sentinel error; you get a whole ensemble or nothing
//   - Deterministic – same file, same record order, every time
//   - Pure Go – the only runtime dependency is the YAML parser
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — parameter values, records, settings & the error taxonomy
//	parse/    — YAML event stream, parse state machine & postprocessing
//	ensemble/ — combinatorial expansion, the ensemble container, Load & Write
//
// Quick example:
//
//	ens, err := ensemble.Load("study.yaml", "settings")
//	if err != nil { ... }
//	for in, out, ok := ens.Next(); ok; in, out, ok = ens.Next() {
//		out.Set("pressure", model(in))
//	}
//	err = ens.Write("study_data.py")
//
// Dive into each package's doc.go for the full contract, and into
// cmd/parsweep for the command-line front end.
//
//	go get github.com/parsweep/parsweep
package parsweep
