package comms

import "strconv"

// Params is a flat bag of protocol settings. All values are strings;
// boolean and numeric settings use their attribute token form ("true",
// "21"). Absent keys take the protocol's documented default.
type Params map[string]string

// Get returns the value for key, or def when the key is absent or
// empty.
func (p Params) Get(key, def string) string {
	if v, ok := p[key]; ok && v != "" {
		return v
	}
	return def
}

// Has reports whether key is present with a non-empty value.
func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && v != ""
}

// missing returns the subset of keys absent from the bag.
func (p Params) missing(keys ...string) []string {
	var out []string
	for _, k := range keys {
		if !p.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// checkInts verifies that each of the given keys, when present, parses
// as a base-10 integer.
func (p Params) checkInts(protocol string, keys ...string) error {
	for _, k := range keys {
		if !p.Has(k) {
			continue
		}
		if _, err := strconv.Atoi(p[k]); err != nil {
			return &ValidationError{
				Protocol: protocol,
				Field:    k,
				Reason:   "must be an integer, got " + strconv.Quote(p[k]),
			}
		}
	}
	return nil
}

// checkBools verifies that each of the given keys, when present, is a
// lowercase "true" or "false" token.
func (p Params) checkBools(protocol string, keys ...string) error {
	for _, k := range keys {
		if !p.Has(k) {
			continue
		}
		if v := p[k]; v != "true" && v != "false" {
			return &ValidationError{
				Protocol: protocol,
				Field:    k,
				Reason:   `must be "true" or "false", got ` + strconv.Quote(v),
			}
		}
	}
	return nil
}
