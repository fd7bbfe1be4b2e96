package catalog

import "strings"

// Criteria empty fields mean "any".
type Criteria struct {
	Query  string `json:"q"`
	Grade  Grade  `json:"grade"`
	Series Series `json:"series"`
}

func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Query) == "" && c.Grade == "" && c.Series == ""
}

// Filter keeps products matching every active predicate, in input order.
func Filter(products []Product, c Criteria) []Product {
	q := strings.ToLower(c.Query)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if c.Grade != "" && p.Grade != c.Grade {
			continue
		}
		if c.Series != "" && p.Series != c.Series {
			continue
		}
		out = append(out, p)
	}
	return out
}
