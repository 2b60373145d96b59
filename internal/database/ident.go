package database

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/xwb1989/sqlparser"
)

// Identifier is a validated, optionally schema-qualified SQL name.
type Identifier struct {
	parts []string
}

// ParseIdentifier accepts `name` or `schema.name` made of plain identifier
// tokens. Anything else (quotes, whitespace, operators, comments) is rejected
// so configured names can never carry SQL into a query.
func ParseIdentifier(name string) (Identifier, error) {
	if strings.ContainsAny(name, "`\"'@:?") {
		return Identifier{}, fmt.Errorf("invalid identifier %q: quotes and bind markers are not allowed", name)
	}

	tkn := sqlparser.NewStringTokenizer(name)
	var parts []string
	expectName := true
	for {
		typ, val := tkn.Scan()
		switch {
		case typ == 0:
			if expectName || len(parts) > 2 {
				return Identifier{}, fmt.Errorf("invalid identifier %q", name)
			}
			return Identifier{parts: parts}, nil
		case expectName && (typ == sqlparser.ID || isKeyword(val)):
			parts = append(parts, strings.ToLower(string(val)))
			expectName = false
		case !expectName && typ == '.':
			expectName = true
		default:
			return Identifier{}, fmt.Errorf("invalid identifier %q: unexpected %q", name, string(val))
		}
	}
}

// keywords such as date or datetime scan as their own token types
func isKeyword(val []byte) bool {
	if len(val) == 0 || (val[0] >= '0' && val[0] <= '9') {
		return false
	}
	for _, c := range val {
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// Quoted renders the identifier for Postgres, each part double-quoted.
func (i Identifier) Quoted() string {
	quoted := make([]string, len(i.parts))
	for n, part := range i.parts {
		quoted[n] = pq.QuoteIdentifier(part)
	}
	return strings.Join(quoted, ".")
}

func (i Identifier) String() string {
	return strings.Join(i.parts, ".")
}
