package internal

// CycleError is the panic value raised when a computation transitively reads
// itself during its own evaluation. Detecting the re-entry keeps a cyclic
// graph from recursing until the stack overflows.
type CycleError struct{}

func (e *CycleError) Error() string {
	return "rheo: dependency cycle: computation read during its own evaluation"
}
