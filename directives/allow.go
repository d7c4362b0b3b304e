package directives

import "strings"

// Feature names acceptable in @allow directives.
const (
	FeatureTimers  = "timers"
	FeatureConsole = "console"
	FeatureNet     = "net"
	FeatureDOM     = "dom"
	FeatureThrows  = "throws"
)

// Features holds one flag per opt-in feature grant.
type Features struct {
	Timers  bool
	Console bool
	Net     bool
	DOM     bool
	Throws  bool
}

// set flips the named feature on. Unknown names are ignored.
func (f *Features) set(name string) {
	switch name {
	case FeatureTimers:
		f.Timers = true
	case FeatureConsole:
		f.Console = true
	case FeatureNet:
		f.Net = true
	case FeatureDOM:
		f.DOM = true
	case FeatureThrows:
		f.Throws = true
	}
}

func (f *Features) has(name string) bool {
	switch name {
	case FeatureTimers:
		return f.Timers
	case FeatureConsole:
		return f.Console
	case FeatureNet:
		return f.Net
	case FeatureDOM:
		return f.DOM
	case FeatureThrows:
		return f.Throws
	}
	return false
}

// ParseAllowedFeatures reads @allow directives from the first documentation
// block comment in the source, if any. Each grant appears on its own line as
// "@allow <feature>". A file without a leading documentation block yields
// all-false grants.
func ParseAllowedFeatures(source string) Features {
	var feats Features
	block, ok := firstDocBlock(source)
	if !ok {
		return feats
	}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		pos := strings.Index(line, "@allow")
		if pos < 0 {
			continue
		}
		fields := strings.Fields(line[pos+len("@allow"):])
		if len(fields) > 0 {
			feats.set(fields[0])
		}
	}
	return feats
}

// firstDocBlock returns the text of the first /** ... */ comment in source.
func firstDocBlock(source string) (string, bool) {
	start := strings.Index(source, "/**")
	if start < 0 {
		return "", false
	}
	end := strings.Index(source[start:], "*/")
	if end < 0 {
		return "", false
	}
	return source[start : start+end], true
}

// Gate pairs the features granted by @allow directives with the features the
// traversal actually used. A grant that is never used is itself reported
// after traversal.
type Gate struct {
	allowed Features
	used    Features
}

// NewGate builds a gate from the @allow directives in source.
func NewGate(source string) *Gate {
	return &Gate{allowed: ParseAllowedFeatures(source)}
}

// Allowed reports whether the named feature was granted, and records the use
// when it was.
func (g *Gate) Allowed(feature string) bool {
	if !g.allowed.has(feature) {
		return false
	}
	g.used.set(feature)
	return true
}

// Granted reports whether the named feature was granted, without marking it
// used.
func (g *Gate) Granted(feature string) bool {
	return g.allowed.has(feature)
}

// Unused returns the granted features that were never used, in a fixed
// order.
func (g *Gate) Unused() []string {
	var out []string
	for _, name := range []string{FeatureTimers, FeatureConsole, FeatureNet, FeatureDOM, FeatureThrows} {
		if g.allowed.has(name) && !g.used.has(name) {
			out = append(out, name)
		}
	}
	return out
}
