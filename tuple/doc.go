// Package tuple solves analogical equations A:B::C:D over keyed tuples.
//
// A tuple maps ordered keys to component values. The proportion holds
// component-wise: for every key k, a[k]:b[k]::c[k]:d[k]. Each component is
// solved by a caller-supplied Solver, and the solutions of D are the
// combinations of component solutions. A combination's degree is the sum
// of its components' degrees.
//
// Combinations are produced lazily in non-decreasing degree order by a
// best-first walk over index vectors into the component streams, with
// ties broken in insertion order. Component streams are pulled only as
// far as the walk needs them.
//
// The three tuples must share the same key set; otherwise the equation
// has no solution. The empty tuple has exactly one solution, of degree 0.
package tuple
