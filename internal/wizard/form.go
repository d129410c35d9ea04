package wizard

import "strings"

// Pair is one decoded key/value from an urlencoded body or query string.
type Pair struct {
	Key   string
	Value string
}

// ParseForm splits an application/x-www-form-urlencoded string into pairs,
// preserving order. Segments without '=' are dropped. Decoding is lenient:
// malformed percent escapes are kept verbatim instead of failing the parse.
func ParseForm(raw string) []Pair {
	if raw == "" {
		return nil
	}
	var pairs []Pair
	for _, segment := range strings.Split(raw, "&") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{Key: Decode(key), Value: Decode(value)})
	}
	return pairs
}

// Lookup returns the last value for key and whether it was present.
func Lookup(pairs []Pair, key string) (string, bool) {
	value, found := "", false
	for _, p := range pairs {
		if p.Key == key {
			value, found = p.Value, true
		}
	}
	return value, found
}

// Decode turns '+' into a space and valid %XX escapes into bytes.
func Decode(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
