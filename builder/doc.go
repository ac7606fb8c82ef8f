// SPDX-License-Identifier: MIT
// Package builder composes unit-resistor topologies from canonical shapes.
//
// Every shape is a Constructor closure; Build runs them in order against one
// Draft and returns the validated network.Topology. Each constructor appends
// a fresh block of consecutive node ids, so Build(Path(3), Path(2)) yields two
// disjoint chains 1–2–3 and 4–5. Link joins nodes that already exist.
//
// Shapes and their local numbering (base = first id of the block):
//
//	Path(n)       base … base+n-1 in chain order
//	Cycle(n)      base … base+n-1 around the ring
//	Complete(n)   base … base+n-1
//	Star(n)       center = base, leaves base+1 … base+n-1
//	Wheel(n)      rim base … base+n-2, hub = base+n-1
//	Grid(r, c)    node (i, j) = base + i*c + j
//	Bundle(k)     two nodes base, base+1 joined by k parallel resistors
//	PlatonicSolid solid index i = base + i (see variants_platonic.go)
//	RandomSparse  base … base+n-1, pairs kept with probability p (seeded)
//
// Each resistor is declared once, from its lower-numbered end.
package builder
