// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package mask

// Operator is the action a symbolic clause applies to its permissions.
type Operator byte

// Symbolic operators.
const (
	OpAssign Operator = '='
	OpGrant  Operator = '+'
	OpDeny   Operator = '-'
)

// Action is one operator and the permissions that follow it.
type Action struct {
	Op    Operator
	Perms Mask // read, write and execute bits across all classes
}

// Clause is a who list followed by one or more actions, such as "go=rx"
// or "u+r-w".
type Clause struct {
	Who     Mask // class bits; never zero
	Actions []Action
}

// Apply returns deny with every action of c applied in order.
func (c Clause) Apply(deny Mask) Mask {
	for _, action := range c.Actions {
		grant := action.Perms & c.Who

		switch action.Op {
		case OpDeny:
			deny |= grant
		case OpGrant:
			deny &^= grant
		case OpAssign:
			deny = (deny | c.Who) &^ grant
		}
	}

	return deny & AllBits
}

// CompileSymbolic parses a comma separated list of clauses without
// evaluating it.
func CompileSymbolic(expr string) ([]Clause, error) {
	if expr == "" {
		return nil, ErrEmptyExpression
	}

	p := &symbolicParser{input: expr}

	return p.parse()
}

// ParseSymbolic evaluates expr left to right starting from start. Nothing is
// returned unless the whole expression is valid.
func ParseSymbolic(expr string, start Mask) (Mask, error) {
	clauses, err := CompileSymbolic(expr)
	if err != nil {
		return 0, err
	}

	deny := start & AllBits
	for _, clause := range clauses {
		deny = clause.Apply(deny)
	}

	return deny, nil
}

type symbolicParser struct {
	input string
	pos   int
}

func (p *symbolicParser) parse() ([]Clause, error) {
	var clauses []Clause

	for {
		clause := Clause{Who: p.who()}

		actions, err := p.actions()
		if err != nil {
			return nil, err
		}

		clause.Actions = actions
		clauses = append(clauses, clause)

		if p.done() {
			return clauses, nil
		}

		// actions only stops early on a clause separator
		p.pos++
	}
}

func (p *symbolicParser) who() Mask {
	var target Mask

	for ; !p.done(); p.pos++ {
		switch p.input[p.pos] {
		case 'u':
			target |= UserBits
		case 'g':
			target |= GroupBits
		case 'o':
			target |= OtherBits
		case 'a':
			target |= AllBits
		default:
			return orAll(target)
		}
	}

	return orAll(target)
}

func (p *symbolicParser) actions() ([]Action, error) {
	op, ok := p.op()
	if !ok {
		return nil, newSyntaxError(p.input, p.pos, "operator", ErrInvalidSymbolicSyntax)
	}

	var actions []Action

	for {
		actions = append(actions, Action{Op: op, Perms: p.perms()})

		if p.done() || p.input[p.pos] == ',' {
			return actions, nil
		}

		if op, ok = p.op(); !ok {
			return nil, newSyntaxError(p.input, p.pos, "permission, operator or ','", ErrInvalidSymbolicSyntax)
		}
	}
}

func (p *symbolicParser) op() (Operator, bool) {
	if p.done() {
		return 0, false
	}

	switch op := Operator(p.input[p.pos]); op {
	case OpAssign, OpGrant, OpDeny:
		p.pos++
		return op, true
	default:
		return 0, false
	}
}

func (p *symbolicParser) perms() Mask {
	var perms Mask

	for ; !p.done(); p.pos++ {
		switch p.input[p.pos] {
		case 'r':
			perms |= ReadBits
		case 'w':
			perms |= WriteBits
		case 'x':
			perms |= ExecuteBits
		default:
			return perms
		}
	}

	return perms
}

func (p *symbolicParser) done() bool {
	return p.pos >= len(p.input)
}

func orAll(target Mask) Mask {
	if target == 0 {
		return AllBits
	}

	return target
}
