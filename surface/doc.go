// Package surface holds the read-only price grids produced by the engines.
//
// A Vanilla surface is indexed by (time step, asset node); an Asian surface by
// (time step, asset node, average node). Surfaces are built once by an engine
// and expose no mutators: every accessor returns a value or a copy.
package surface
