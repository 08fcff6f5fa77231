// Package value is the closed tagged union of analogy operands and the
// factory that dispatches an equation to the solver for its shape.
//
// A Value is one of four kinds:
//
//	Atom      an indivisible token, equal by content
//	Sequence  an ordered list of values (solved by package sequence)
//	Set       an unordered collection of distinct values (package set)
//	Tuple     values keyed by field name (package tuple)
//
// Every value has a canonical Key, so values of any kind can be compared,
// hashed and deduplicated without reflection. NewEquation inspects only
// the Kind tags of its operands: three operands of one kind go to that
// kind's solver; operands of mixed kinds are compared as atoms.
//
//	eq, err := value.NewEquation(value.Chars("abc"), value.Chars("abd"), value.Chars("xbc"))
//	if err != nil { ... }
//	it := equation.UniqueBy(eq.Solve(), value.Value.Key)
//	for s := range equation.All(it) {
//		fmt.Println(s.Degree(), s.Value())
//	}
package value
