// Package batch reads YAML files of analogical equations, decodes their
// operands into values and solves them in parallel.
//
// A batch file looks like:
//
//	defaults:
//	  split: chars        # chars | words | none
//	  degree_mode: runs   # runs | factors
//	  best: 1             # keep the cheapest degree tiers only (0: all)
//	  limit: 10           # solutions per equation (-1: all)
//	equations:
//	  - name: spelling
//	    a: abc
//	    b: abd
//	    c: xbc
//	  - name: morphology
//	    a: {lemma: walk, tense: present}
//	    b: {lemma: walk, tense: past}
//	    c: {lemma: talk, tense: present}
//	  - name: features
//	    a: !set [noun, sg]
//	    b: !set [noun, pl]
//	    c: !set [verb, sg]
//
// Scalars are split according to split; YAML sequences are sequences of
// atoms, mappings are tuples and sequences tagged !set are sets.
package batch
