package uri

// ParseOptions configures the strict entry points beyond their defaults.
// The zero value is the fully-checked behaviour every ParseX/TryParseX
// function without an Options suffix uses.
type ParseOptions struct {
	// Unchecked, when true, relaxes percent-encoding well-formedness: a
	// "%" not followed by two hex digits is consumed as a literal
	// character instead of rejected. Every other character-class check
	// still applies, so structural delimiters are found exactly as they
	// are in the default, fully-checked mode. Grounded on
	// jplu-trident/iri/iri_parser.go's unchecked parser mode, narrowed to
	// the one relaxation that cannot change where a component's
	// boundaries fall: re-parsing a value a caller already trusts (e.g.
	// one just formatted by FormatUri) without paying full validation
	// cost twice.
	Unchecked bool
}

// ParseUriOptions is ParseUri with explicit options.
func ParseUriOptions(input string, opts ParseOptions) (*Uri, error) {
	return parse(input, false, false, opts)
}

// ParseUriReferenceOptions is ParseUriReference with explicit options.
func ParseUriReferenceOptions(input string, opts ParseOptions) (*Uri, error) {
	return parse(input, false, true, opts)
}

// ParseIriOptions is ParseIri with explicit options.
func ParseIriOptions(input string, opts ParseOptions) (*Uri, error) {
	return parse(input, true, false, opts)
}

// ParseIriReferenceOptions is ParseIriReference with explicit options.
func ParseIriReferenceOptions(input string, opts ParseOptions) (*Uri, error) {
	return parse(input, true, true, opts)
}
