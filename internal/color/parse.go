package color

import (
	"strconv"
	"strings"

	frescoerrors "github.com/frescoterm/fresco/pkg/errors"
)

// Parse resolves a color specification to its RGB value. Accepted notations:
// #RGB and #RRGGBB hex (case-insensitive), rgb(r,g,b), a bare (r,g,b) tuple,
// and the unioned named-color tables. A spec matching no notation fails with
// a ColorFormatError; a numeric channel outside 0-255 fails with a
// ColorRangeError.
func Parse(spec string) (RGB, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return RGB{}, frescoerrors.NewColorFormatError(spec)
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(spec, s)
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(s, ")") {
		return parseTuple(spec, s[4:len(s)-1])
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return parseTuple(spec, s[1:len(s)-1])
	}

	if c, ok := lookupName(s); ok {
		return c, nil
	}
	return RGB{}, frescoerrors.NewColorFormatError(spec)
}

func parseHex(spec, s string) (RGB, error) {
	digits := s[1:]
	if len(digits) == 3 {
		// #RGB expands each digit, #A5F -> #AA55FF.
		var b strings.Builder
		for i := 0; i < 3; i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		digits = b.String()
	}
	if len(digits) != 6 {
		return RGB{}, frescoerrors.NewColorFormatError(spec)
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, frescoerrors.NewColorFormatError(spec)
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

var channelNames = [3]string{"red", "green", "blue"}

func parseTuple(spec, inner string) (RGB, error) {
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return RGB{}, frescoerrors.NewColorFormatError(spec)
	}
	var out [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, frescoerrors.NewColorFormatError(spec)
		}
		if v < 0 || v > 255 {
			return RGB{}, frescoerrors.NewColorRangeError(spec, channelNames[i], v)
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// lookupName resolves a color name against the unioned tables. Lookup is
// case-insensitive and ignores spaces, hyphens, and underscores, so
// "Deep Pink", "deep-pink", and "deeppink" all converge on the same value.
// The extended table wins when both tables define a name.
func lookupName(name string) (RGB, bool) {
	key := normalizeName(name)
	if c, ok := extendedNames[key]; ok {
		return c, true
	}
	c, ok := standardNames[key]
	return c, ok
}

func normalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '-', '_':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Names returns every known color name, extended table first, standard
// names that the extended table does not shadow after. The slices the
// tables are built from keep their declaration order.
func Names() []string {
	out := make([]string, 0, len(extendedNames)+len(standardNames))
	out = append(out, extendedNameList...)
	for _, n := range standardNameList {
		if _, shadowed := extendedNames[normalizeName(n)]; !shadowed {
			out = append(out, n)
		}
	}
	return out
}

// LookupName resolves a single color name, reporting whether it is known.
func LookupName(name string) (RGB, bool) {
	return lookupName(name)
}

// Parser memoizes Parse results by input string. It holds the only mutable
// state in the package and performs no locking: share one Parser per
// goroutine or synchronize externally.
type Parser struct {
	cache map[string]RGB
}

// parserCacheLimit bounds the memoization cache so a stream of distinct
// specs cannot grow it without limit.
const parserCacheLimit = 1024

// NewParser constructs a Parser with an empty cache.
func NewParser() *Parser {
	return &Parser{cache: make(map[string]RGB)}
}

// Parse resolves spec, consulting and filling the cache. Errors are never
// cached: a bad spec is rare and re-deriving its error keeps the message
// exact.
func (p *Parser) Parse(spec string) (RGB, error) {
	if c, ok := p.cache[spec]; ok {
		return c, nil
	}
	c, err := Parse(spec)
	if err != nil {
		return RGB{}, err
	}
	if len(p.cache) < parserCacheLimit {
		p.cache[spec] = c
	}
	return c, nil
}

// ParseAll resolves every spec in order, failing fast on the first bad one.
func (p *Parser) ParseAll(specs []string) ([]RGB, error) {
	out := make([]RGB, 0, len(specs))
	for _, s := range specs {
		c, err := p.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
