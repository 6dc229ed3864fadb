// Package puzzle reads and writes puzzle documents: a notation, the minimum
// base it is written in and a (possibly partial) digit assignment.
//
// Documents are TOML or YAML, chosen by file extension:
//
//	name     = "Long division"
//	notation = "ABBC/CD=EF-ADG=DHC-DHC=I."
//	min_base = 10
//
//	[mapping]
//	A = "1"
//	B = "5"
package puzzle
