package value_test

import (
	"fmt"

	"github.com/katalvlaran/analogy/equation"
	"github.com/katalvlaran/analogy/value"
)

// ExampleNewEquation solves a tuple equation whose fields are atoms.
func ExampleNewEquation() {
	mk := func(lemma, number string) value.Value {
		return value.NewTuple(map[string]value.Value{
			"lemma":  value.Atom(lemma),
			"number": value.Atom(number),
		})
	}
	eq, err := value.NewEquation(mk("cat", "sg"), mk("cat", "pl"), mk("dog", "sg"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for s := range equation.All(eq.Solve()) {
		fmt.Println(s)
	}
	// Output:
	// (lemma=dog, number=pl) (degree 2)
}
