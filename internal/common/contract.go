package common

// ContractViolation is the panic value raised when an unchecked primitive
// is called with arguments its caller was required to validate first.
type ContractViolation struct {
	Op  string
	Msg string
}

func (c *ContractViolation) Error() string {
	return "staticstr: " + c.Op + ": " + c.Msg
}

func expect(ok bool, op, msg string) {
	if !ok {
		panic(&ContractViolation{Op: op, Msg: msg})
	}
}

// Never marks a branch that validation already ruled out.
func Never(msg string) {
	panic(&ContractViolation{Op: "never", Msg: msg})
}
