// Package testutil provides testing utilities for bitseq.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded random generator for reproducible cases and Model, a
// deliberately naive per-bit implementation of the engine's operations used
// as the correctness oracle: every optimized block-level path must produce
// output identical to the Model.
package testutil
