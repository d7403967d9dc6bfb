// Package props is a typed key-value store for graph metadata.
//
// Values are a closed tagged variant (String, Int, Float, Bool) rather than
// arbitrary interface{} payloads, so stored metadata stays comparable and
// serializable. Every property belongs to a Subject: a vertex index, an edge
// index pair, or the graph itself.
//
// Merge contract for SetAll (overwrite-and-union):
//
//	stored  = {a:1, b:2}
//	SetAll(   {b:3, c:4})
//	stored == {a:1, b:3, c:4}
//
// Keys present in the argument overwrite; keys absent from it are kept.
//
// A Store performs no subject validation: it does not know which vertices or
// edges exist. Engines that own a Store (package metagraph) validate subjects
// before delegating.
package props
