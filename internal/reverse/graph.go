package reverse

import (
	"fmt"

	"github.com/casgari/autodiff/internal/scalar"
)

// Graph is the arena owning every node of one reverse-mode evaluation. It
// implements scalar.Builder, so running an expression against it performs
// the forward trace and records the DAG in one go. A Graph is built fresh
// per evaluation call and discarded once gradients have been read out;
// nothing is shared or cached across calls.
//
// A Graph must not be used from multiple goroutines: node creation order is
// the topological order, and the gradient accumulators are write-shared
// state between backward passes.
type Graph struct {
	nodes []*Node
}

var _ scalar.Builder = (*Graph)(nil)

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make([]*Node, 0, 64)}
}

// Len returns the number of nodes created so far.
func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) newNode(val float64, op scalar.Op, parents []edge) *Node {
	n := &Node{
		val:     val,
		op:      op,
		parents: parents,
		idx:     len(g.nodes),
		graph:   g,
	}
	g.nodes = append(g.nodes, n)
	return n
}

// Leaf creates an input node with no provenance.
func (g *Graph) Leaf(val float64) *Node {
	return g.newNode(val, scalar.OpLeaf, nil)
}

// Const promotes a plain float into the graph as a parentless node.
func (g *Graph) Const(c float64) scalar.Value {
	return g.newNode(c, scalar.OpConst, nil)
}

// node asserts that v is a *Node belonging to this graph. An operand from a
// different graph (a stale reference from an earlier call, or a value from
// the forward evaluator) is a programmer error.
func (g *Graph) node(v scalar.Value) *Node {
	n, ok := v.(*Node)
	if !ok {
		panic(fmt.Sprintf("reverse: operand %T did not come from this evaluator", v))
	}
	if n.graph != g {
		panic("reverse: operand node belongs to a different graph")
	}
	return n
}

func (g *Graph) binary(op scalar.Op, a, b scalar.Value, rule func(a, b float64) (v, da, db float64)) scalar.Value {
	x, y := g.node(a), g.node(b)
	v, da, db := rule(x.val, y.val)
	return g.newNode(v, op, []edge{{x, da}, {y, db}})
}

func (g *Graph) binaryErr(op scalar.Op, a, b scalar.Value, rule func(a, b float64) (v, da, db float64, err error)) scalar.Value {
	x, y := g.node(a), g.node(b)
	v, da, db, err := rule(x.val, y.val)
	if err != nil {
		scalar.Raise(err)
	}
	return g.newNode(v, op, []edge{{x, da}, {y, db}})
}

func (g *Graph) unary(op scalar.Op, x scalar.Value, rule func(x float64) (v, dx float64)) scalar.Value {
	n := g.node(x)
	v, dx := rule(n.val)
	return g.newNode(v, op, []edge{{n, dx}})
}

func (g *Graph) unaryErr(op scalar.Op, x scalar.Value, rule func(x float64) (v, dx float64, err error)) scalar.Value {
	n := g.node(x)
	v, dx, err := rule(n.val)
	if err != nil {
		scalar.Raise(err)
	}
	return g.newNode(v, op, []edge{{n, dx}})
}

func (g *Graph) Add(a, b scalar.Value) scalar.Value {
	return g.binary(scalar.OpAdd, a, b, scalar.AddRule)
}

func (g *Graph) Sub(a, b scalar.Value) scalar.Value {
	return g.binary(scalar.OpSub, a, b, scalar.SubRule)
}

func (g *Graph) Mul(a, b scalar.Value) scalar.Value {
	return g.binary(scalar.OpMul, a, b, scalar.MulRule)
}

func (g *Graph) Div(a, b scalar.Value) scalar.Value {
	return g.binaryErr(scalar.OpDiv, a, b, scalar.DivRule)
}

func (g *Graph) Neg(x scalar.Value) scalar.Value {
	return g.unary(scalar.OpNeg, x, scalar.NegRule)
}

func (g *Graph) Pow(x scalar.Value, n float64) scalar.Value {
	return g.unaryErr(scalar.OpPow, x, func(v float64) (float64, float64, error) {
		return scalar.PowRule(v, n)
	})
}

func (g *Graph) PowValue(a, b scalar.Value) scalar.Value {
	return g.binaryErr(scalar.OpPowValue, a, b, scalar.PowValueRule)
}

func (g *Graph) Sin(x scalar.Value) scalar.Value { return g.unary(scalar.OpSin, x, scalar.SinRule) }
func (g *Graph) Cos(x scalar.Value) scalar.Value { return g.unary(scalar.OpCos, x, scalar.CosRule) }
func (g *Graph) Tan(x scalar.Value) scalar.Value { return g.unaryErr(scalar.OpTan, x, scalar.TanRule) }
func (g *Graph) Exp(x scalar.Value) scalar.Value { return g.unary(scalar.OpExp, x, scalar.ExpRule) }

func (g *Graph) Expb(x scalar.Value, base float64) scalar.Value {
	return g.unaryErr(scalar.OpExpb, x, func(v float64) (float64, float64, error) {
		return scalar.ExpbRule(v, base)
	})
}

func (g *Graph) Log(x scalar.Value) scalar.Value { return g.unaryErr(scalar.OpLog, x, scalar.LogRule) }

func (g *Graph) Logb(x scalar.Value, base float64) scalar.Value {
	return g.unaryErr(scalar.OpLogb, x, func(v float64) (float64, float64, error) {
		return scalar.LogbRule(v, base)
	})
}

func (g *Graph) Sqrt(x scalar.Value) scalar.Value {
	return g.unaryErr(scalar.OpSqrt, x, scalar.SqrtRule)
}

func (g *Graph) Asin(x scalar.Value) scalar.Value {
	return g.unaryErr(scalar.OpAsin, x, scalar.AsinRule)
}

func (g *Graph) Acos(x scalar.Value) scalar.Value {
	return g.unaryErr(scalar.OpAcos, x, scalar.AcosRule)
}

func (g *Graph) Atan(x scalar.Value) scalar.Value { return g.unary(scalar.OpAtan, x, scalar.AtanRule) }
func (g *Graph) Sinh(x scalar.Value) scalar.Value { return g.unary(scalar.OpSinh, x, scalar.SinhRule) }
func (g *Graph) Cosh(x scalar.Value) scalar.Value { return g.unary(scalar.OpCosh, x, scalar.CoshRule) }
func (g *Graph) Tanh(x scalar.Value) scalar.Value { return g.unary(scalar.OpTanh, x, scalar.TanhRule) }

func (g *Graph) Sigmoid(x scalar.Value) scalar.Value {
	return g.unary(scalar.OpSigmoid, x, scalar.SigmoidRule)
}

// Trace runs the forward pass of expr on a fresh graph, creating one leaf
// per input. It returns the graph, the leaves (in input order, for gradient
// readout) and the output nodes. On a rule failure the error is returned
// and the partially built graph must not be used.
func Trace(expr scalar.Expr, point []float64) (g *Graph, leaves, outputs []*Node, err error) {
	defer scalar.Capture(&err)

	g = NewGraph()
	leaves = make([]*Node, len(point))
	in := make([]scalar.Value, len(point))
	for i, p := range point {
		leaves[i] = g.Leaf(p)
		in[i] = leaves[i]
	}

	res := expr(g, in)
	outputs = make([]*Node, len(res))
	for i, v := range res {
		outputs[i] = g.node(v)
	}
	return g, leaves, outputs, nil
}
