// Package maze implements perfect-maze generation for the mazegen CLI.
//
// Generation runs in three fixed phases over one owned Grid:
//
//  1. NewGrid allocates an all-wall grid with odd dimensions.
//  2. Carve runs a randomized depth-first search over the odd-coordinate
//     sub-lattice, stepping two cells at a time so that every pair of
//     adjacent path cells is joined through exactly one carved wall cell.
//     Branch points are pushed on a backtrack stack and popped on dead ends.
//  3. PlaceEntrances opens exactly two boundary cells on two distinct edges,
//     each adjacent to a carved interior cell.
//
// Randomness is always injected (see Rand), so a fixed seed reproduces the
// same maze. Nothing in this package is safe for concurrent use; each
// Generator owns its grid and random source exclusively.
package maze
