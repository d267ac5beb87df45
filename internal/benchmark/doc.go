// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// These benchmarks cover the hot paths of the launcher startup sequence:
//   - Shebang expansion and the launcher flag scan
//   - Program boundary location and output-option parsing
//   - Settings merge and build-plan assembly
//   - Configuration loading with CUE schema validation
//
// To generate a PGO profile, run:
//
//	go test ./internal/benchmark -bench . -cpuprofile default.pgo
package benchmark
