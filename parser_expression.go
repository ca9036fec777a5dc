package mornington

// Expression parsing is a precedence-climbing cascade — comparison over
// additive over multiplicative over unary over atom — grounded on
// pongo2's Expression/relationalExpression/simpleExpression/term/power
// cascade (parser_expression.go), collapsed here into one reusable BinOp
// node per level instead of one bespoke AST type per pongo2 operator.

var comparisonOps = map[string]bool{
	"==": true, "!=": true, "===": true, "!==": true,
	"<": true, ">": true, "<=": true, ">=": true,
}

var additiveOps = map[string]bool{"+": true, "-": true}
var multiplicativeOps = map[string]bool{"*": true, "/": true, "%": true}

func parseExpr(p *lineParser) (Expr, error) {
	return parseComparison(p)
}

func parseComparison(p *lineParser) (Expr, error) {
	lhs, err := parseAdditive(p)
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		if t == nil || t.Kind != TokenOperator || !comparisonOps[t.Val] {
			return lhs, nil
		}
		op := t.Val
		line, col := t.Line, t.Col
		p.idx++
		rhs, err := parseAdditive(p)
		if err != nil {
			return nil, err
		}
		lhs = &BinOp{pos: pos{line, col}, Op: op, LHS: lhs, RHS: rhs}
	}
}

func parseAdditive(p *lineParser) (Expr, error) {
	lhs, err := parseMultiplicative(p)
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		if t == nil || t.Kind != TokenOperator || !additiveOps[t.Val] {
			return lhs, nil
		}
		op := t.Val
		line, col := t.Line, t.Col
		p.idx++
		rhs, err := parseMultiplicative(p)
		if err != nil {
			return nil, err
		}
		lhs = &BinOp{pos: pos{line, col}, Op: op, LHS: lhs, RHS: rhs}
	}
}

func parseMultiplicative(p *lineParser) (Expr, error) {
	lhs, err := parseUnary(p)
	if err != nil {
		return nil, err
	}
	for {
		t := p.cur()
		if t == nil || t.Kind != TokenOperator || !multiplicativeOps[t.Val] {
			return lhs, nil
		}
		op := t.Val
		line, col := t.Line, t.Col
		p.idx++
		rhs, err := parseUnary(p)
		if err != nil {
			return nil, err
		}
		lhs = &BinOp{pos: pos{line, col}, Op: op, LHS: lhs, RHS: rhs}
	}
}

func parseUnary(p *lineParser) (Expr, error) {
	if t := p.cur(); t != nil && t.Kind == TokenOperator && t.Val == "-" {
		line, col := t.Line, t.Col
		p.idx++
		inner, err := parseUnary(p)
		if err != nil {
			return nil, err
		}
		return &UnaryMinus{pos: pos{line, col}, Expr: inner}, nil
	}
	return parseAtom(p)
}

func parseAtom(p *lineParser) (Expr, error) {
	t := p.cur()
	if t == nil {
		return nil, p.errHere("expected an expression")
	}

	switch t.Kind {
	case TokenNumber:
		p.idx++
		return &LitNum{pos: pos{t.Line, t.Col}, Val: t.Num}, nil
	case TokenString:
		p.idx++
		return &LitStr{pos: pos{t.Line, t.Col}, Val: t.Val}, nil
	case TokenKeyword:
		switch t.Val {
		case "rtue":
			p.idx++
			return &LitBool{pos: pos{t.Line, t.Col}, Val: true}, nil
		case "flase":
			p.idx++
			return &LitBool{pos: pos{t.Line, t.Col}, Val: false}, nil
		default:
			return nil, p.errAt(t, "unexpected keyword %q in expression", t.Val)
		}
	case TokenIdentifier:
		p.idx++
		if nt := p.cur(); nt != nil && nt.Kind == TokenParenOpen {
			args, err := parseGroup(p, TokenParenOpen, TokenParenClose)
			if err != nil {
				return nil, err
			}
			return &Call{pos: pos{t.Line, t.Col}, Name: t.Val, Args: args}, nil
		}
		return &VarRef{pos: pos{t.Line, t.Col}, Name: t.Val}, nil
	case TokenParenOpen:
		openCount := p.openRun(TokenParenOpen)
		inner, err := parseExpr(p)
		if err != nil {
			return nil, err
		}
		if _, err := p.closeRun(TokenParenClose, openCount); err != nil {
			return nil, err
		}
		return inner, nil
	case TokenBracketOpen:
		elems, err := parseGroup(p, TokenBracketOpen, TokenBracketClose)
		if err != nil {
			return nil, err
		}
		return &LitList{pos: pos{t.Line, t.Col}, Elems: elems}, nil
	default:
		return nil, p.errAt(t, "unexpected token in expression")
	}
}

// parseGroup parses a comma-separated, possibly-empty list of expressions
// delimited by an imbalanced open/close run of the given kind — shared by
// call arguments and list displays (spec §4.3/§5).
func parseGroup(p *lineParser, openKind, closeKind TokenKind) ([]Expr, error) {
	openCount := p.openRun(openKind)
	var elems []Expr
	for {
		if t := p.cur(); t == nil || t.Kind == closeKind {
			break
		}
		e, err := parseExpr(p)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if t := p.cur(); t != nil && t.Kind == TokenComma {
			p.idx++
			continue
		}
		break
	}
	if _, err := p.closeRun(closeKind, openCount); err != nil {
		return nil, err
	}
	return elems, nil
}
