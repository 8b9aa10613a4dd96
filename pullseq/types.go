package pullseq

// Predicate is a user defined function type used by Filter to decide
// whether an item is kept. Predicates are total: they classify every item
// and have no failure path.
type Predicate[T any] func(T) bool

// Transform is a user defined function type used by Normalize to map each
// item to its normalized form. A Transform may fail; the failure surfaces
// as a Failed outcome on the adapter.
type Transform[T any, U any] func(T) (U, error)
