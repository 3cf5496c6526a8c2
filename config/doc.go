// SPDX-License-Identifier: MIT

// Package config describes one experiment as a file and turns it into the
// Options structs of the search packages.
//
// Two formats are accepted, chosen by file extension:
//
//	.toml : top-level seed plus [tour], [random], [genetic], [logging] tables
//	.ini  : the same sections, seed in the default (unnamed) section
//
// Keys missing from the file keep the values from Default, which mirrors
// the reference experiment (30 tours, 65/15/20 split, inversion mutation,
// patience 1000, random search limit 100000).
//
// Enumerated values (tour mode, stop mode, mutation kind, log level) are
// kept as strings in Config and parsed by the conversion methods, so a bad
// value is reported with the package sentinel that owns it
// (tour.ErrUnknownMode, randsearch.ErrUnknownStopMode, mutation.ErrUnknownKind).
package config
