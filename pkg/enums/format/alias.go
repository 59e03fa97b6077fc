package format

import "strings"

var aliases = map[string]Format{
	"":    Text,
	"txt": Text,
	"yml": YAML,
}

// Lookup is ParseFormat that also accepts the short aliases and surrounding
// whitespace used on the command line.
func Lookup(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	return ParseFormat(name)
}
