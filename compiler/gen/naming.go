package gen

import "github.com/go-openapi/inflect"

// rules holds the acronyms known to Snake. Longer acronyms come first so
// that "UUID" is not split on its "ID" suffix.
var rules = func() *inflect.Ruleset {
	rs := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"HTTPS", "HTTP", "UUID", "JSON", "YAML", "HTML", "GRPC",
		"XML", "SQL", "URL", "URI", "API", "TCP", "UDP", "TLS", "DNS", "CPU", "UTF",
		"ID",
	} {
		rs.AddAcronym(w)
	}
	return rs
}()

// AddAcronym adds a new word to the acronyms known to Snake. It must be
// called before generation starts.
func AddAcronym(word string) {
	rules.AddAcronym(word)
}

// Snake converts the given Go identifier to snake case: "MyEnum" becomes
// "my_enum" and "HTTPMethod" becomes "http_method". It is used for
// generated file names.
func Snake(s string) string {
	if s == "" {
		return ""
	}
	return rules.Underscore(s)
}
