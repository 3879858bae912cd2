package uri

import "golang.org/x/text/unicode/norm"

// NFCString returns s normalised to Unicode Normalization Form C. Parsing
// never normalises on its own (see the package doc); callers that need
// normalised IRI comparison call this explicitly, per spec §9's decision
// to make normalisation opt-in rather than automatic.
func NFCString(s string) string {
	return norm.NFC.String(s)
}

// ParseNormalizedIri is ParseIri followed by NFC-normalising the
// Userinfo, Hostname, Host, Path, Query and Fragment fields; Authority,
// Href and Relative are left as the verbatim input, so they no longer
// necessarily match the normalised sub-fields byte-for-byte. Grounded on
// jplu-trident/iri/iri.go's ParseNormalizedRef, which applies the same
// golang.org/x/text/unicode/norm NFC pass to its recomposed IRI text.
func ParseNormalizedIri(input string) (*Uri, error) {
	u, err := ParseIri(input)
	if err != nil {
		return nil, err
	}
	u.Userinfo = norm.NFC.String(u.Userinfo)
	u.Hostname = norm.NFC.String(u.Hostname)
	u.Host = norm.NFC.String(u.Host)
	u.Path = norm.NFC.String(u.Path)
	u.Query = norm.NFC.String(u.Query)
	u.Fragment = norm.NFC.String(u.Fragment)
	return u, nil
}
