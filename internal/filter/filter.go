// Package filter refines returned event rows locally, without re-querying
// the backend.
package filter

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"
)

type Criteria struct {
	Query    string // plain contains or regex if /.../
	UseRegex bool
	Expr     string // govaluate expression over row fields
	Field    string // when set, apply Query only to this field
}

type Evaluator struct {
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
	return &Evaluator{re: re, expr: expr}, nil
}

// Match evaluates one event row against the criteria.
func (e *Evaluator) Match(row map[string]any, c Criteria) bool {
	if c.Query != "" {
		text := rowText(row, c.Field)
		if e.re != nil {
			if !e.re.MatchString(text) {
				return false
			}
		} else {
			if !strings.Contains(strings.ToLower(text), strings.ToLower(c.Query)) {
				return false
			}
		}
	}
	if e.expr != nil {
		params := map[string]any{}
		for k, v := range row {
			params[k] = v
		}
		result, err := e.expr.Evaluate(params)
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

// Apply returns the rows matching the criteria; a nil evaluator passes all.
func Apply(rows []any, ev *Evaluator, c Criteria) []any {
	if ev == nil || (c.Query == "" && strings.TrimSpace(c.Expr) == "") {
		return rows
	}
	out := make([]any, 0, len(rows))
	for _, it := range rows {
		row, ok := it.(map[string]any)
		if !ok {
			continue
		}
		if ev.Match(row, c) {
			out = append(out, it)
		}
	}
	return out
}

func rowText(row map[string]any, field string) string {
	if field != "" {
		v, ok := row[field]
		if !ok {
			return ""
		}
		return valueText(v)
	}
	b, _ := json.Marshal(row)
	return string(b)
}

func valueText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
