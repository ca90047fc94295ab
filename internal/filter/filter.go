package filter

import (
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"

	"perfplayground/internal/model"
)

type Criteria struct {
	Query    string // plain contains or regex if UseRegex
	UseRegex bool
	Expr     string // govaluate expression over record fields
}

func (c Criteria) Empty() bool {
	return c.Query == "" && strings.TrimSpace(c.Expr) == ""
}

func (c Criteria) String() string {
	switch {
	case strings.TrimSpace(c.Expr) != "":
		return c.Expr
	case c.UseRegex:
		return "/" + c.Query + "/"
	default:
		return c.Query
	}
}

// exprOps mark input as an expression rather than a substring query.
var exprOps = []string{"==", "!=", ">=", "<=", ">", "<", "&&", "||", "=~", "!~"}

// ParseInput turns the inline filter text into Criteria: /re/ is a regex,
// text containing a comparison or logical operator is an expression,
// anything else a case-insensitive substring.
func ParseInput(s string) Criteria {
	q := strings.TrimSpace(s)
	if q == "" {
		return Criteria{}
	}
	if strings.HasPrefix(q, "/") && strings.HasSuffix(q, "/") && len(q) > 2 {
		return Criteria{Query: q[1 : len(q)-1], UseRegex: true}
	}
	for _, op := range exprOps {
		if strings.Contains(q, op) {
			return Criteria{Expr: q}
		}
	}
	return Criteria{Query: q}
}

type Evaluator struct {
	c    Criteria
	re   *regexp.Regexp
	expr *govaluate.EvaluableExpression
}

func NewEvaluator(c Criteria) (*Evaluator, error) {
	var re *regexp.Regexp
	var expr *govaluate.EvaluableExpression
	var err error
	if c.UseRegex && c.Query != "" {
		re, err = regexp.Compile(c.Query)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(c.Expr) != "" {
		expr, err = govaluate.NewEvaluableExpression(c.Expr)
		if err != nil {
			return nil, err
		}
	}
	return &Evaluator{c: c, re: re, expr: expr}, nil
}

func (e *Evaluator) Criteria() Criteria {
	if e == nil {
		return Criteria{}
	}
	return e.c
}

// Match reports whether r passes. A nil Evaluator matches everything.
func (e *Evaluator) Match(r model.Record) bool {
	if e == nil {
		return true
	}
	if e.c.Query != "" {
		text := strings.Join([]string{r.Name, r.Breed, r.Color, r.Toy, r.Food}, " ")
		if e.re != nil {
			if !e.re.MatchString(text) {
				return false
			}
		} else if !strings.Contains(strings.ToLower(text), strings.ToLower(e.c.Query)) {
			return false
		}
	}
	if e.expr != nil {
		result, err := e.expr.Evaluate(params(r))
		if err != nil {
			return false
		}
		b, ok := result.(bool)
		if !ok || !b {
			return false
		}
	}
	return true
}

func params(r model.Record) map[string]any {
	return map[string]any{
		"id":     float64(r.ID),
		"name":   r.Name,
		"breed":  r.Breed,
		"color":  r.Color,
		"toy":    r.Toy,
		"food":   r.Food,
		"rating": float64(r.Rating),
	}
}
