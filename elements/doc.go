// Package elements is the periodic-table reference used by frozen-core
// selection: symbols, names and ground-state electron configurations for
// atomic numbers 0 (ghost atom) through 118.
//
// The configuration of each element is stored as electron counts per
// angular momentum type [s, p, d, f]; package shell distributes those counts
// over principal levels.
//
//	z, _ := elements.Charge("Fe")       // 26
//	cfg, _ := elements.Configuration(z) // [8 12 6 0]
//
// All tables are read-only package data and safe for concurrent use.
package elements
