// Package set solves analogical equations A:B::C:D over finite sets.
//
// The proportion holds when A ∪ D = B ∪ C and A ∩ D = B ∩ C. For given A,
// B and C this leaves at most one D:
//
//	D = ((B ∪ C) \ A) ∪ (A ∩ B ∩ C)
//
// and it exists iff A ⊆ B ∪ C and B ∩ C ⊆ A. Like the atomic case, the
// unique solution has the constant degree Degree.
package set
