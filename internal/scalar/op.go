package scalar

// Op identifies an elementary operation. Every non-leaf node in a reverse-mode
// graph carries the Op that produced it, and graph snapshots expose it as a
// label for external renderers.
type Op uint8

const (
	// OpLeaf marks an input node with no provenance.
	OpLeaf Op = iota
	// OpConst marks a constant promoted into an evaluation.
	OpConst

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpPow      // x^n, constant exponent
	OpPowValue // a^b, both operands live
	OpSin
	OpCos
	OpTan
	OpExp
	OpExpb // base^x, constant base
	OpLog
	OpLogb // log_base(x), constant base
	OpSqrt
	OpAsin
	OpAcos
	OpAtan
	OpSinh
	OpCosh
	OpTanh
	OpSigmoid
)

var opNames = [...]string{
	OpLeaf:     "leaf",
	OpConst:    "const",
	OpAdd:      "add",
	OpSub:      "sub",
	OpMul:      "mul",
	OpDiv:      "div",
	OpNeg:      "neg",
	OpPow:      "pow",
	OpPowValue: "powv",
	OpSin:      "sin",
	OpCos:      "cos",
	OpTan:      "tan",
	OpExp:      "exp",
	OpExpb:     "expb",
	OpLog:      "log",
	OpLogb:     "logb",
	OpSqrt:     "sqrt",
	OpAsin:     "asin",
	OpAcos:     "acos",
	OpAtan:     "atan",
	OpSinh:     "sinh",
	OpCosh:     "cosh",
	OpTanh:     "tanh",
	OpSigmoid:  "sigmoid",
}

// String returns the lowercase name of the operation.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "unknown"
}
