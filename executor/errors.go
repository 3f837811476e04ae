package executor

import "fmt"

// ContractViolation is panicked when the executor's unsafe decode path
// observes a condition that a correctly verified and correctly
// assembled instruction stream can never produce: a parameter slot
// whose opcode tag doesn't match what the preceding wide instruction
// committed to. Reaching this is a bug in the translator that emitted
// the stream, not a recoverable runtime error.
type ContractViolation struct {
	InstanceID string
	Reason     string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("executor[%s]: contract violation: %s", e.InstanceID, e.Reason)
}

// Trap is returned by Executor.Run when the program executed an
// OpTrap instruction. It is a normal, checked outcome of execution,
// unlike ContractViolation.
type Trap struct {
	Code string
}

func (e *Trap) Error() string {
	return fmt.Sprintf("trap: %s", e.Code)
}

// MemoryAccessOutOfBounds is returned when a load or store address
// falls outside the instance's committed linear memory.
type MemoryAccessOutOfBounds struct {
	Addr  uint32
	Width int
	Pages int
}

func (e *MemoryAccessOutOfBounds) Error() string {
	return fmt.Sprintf("memory access out of bounds: addr=%d width=%d committed_pages=%d", e.Addr, e.Width, e.Pages)
}
