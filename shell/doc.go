// Package shell expands an element's electron configuration into a
// principal-level × angular-momentum occupancy table and splits it into
// frozen (core) and active (valence) parts.
//
// A Table has MaxLevel rows (principal levels 1..7) and MaxAng columns
// (s, p, d, f). Column c starts at row c (1s, 2p, 3d, 4f) and admits at most
// Capacity(c) = 2+4c electrons per row.
//
// Levels vectors drive the split in one of two directions:
//
//	active=false: levels[c] rows of column c are frozen, counted from the nucleus outward.
//	active=true:  levels[c] rows of column c are kept, counted from the valence edge inward.
//
// Either way a split that would cut through a partially filled shell fails
// with ErrPartialShell.
//
//	cfg, _ := shell.New(26)                               // Fe
//	core, _ := cfg.NumCoreElectrons(shell.Levels{1, 1, 2, 3}, true) // 18
package shell
