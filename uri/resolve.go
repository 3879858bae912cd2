package uri

import "strings"

// ResolveUri implements RFC 3986 §5.2.2's reference-resolution transform
// algorithm: ref is resolved against base to produce a new absolute Uri.
// base is a parsed absolute URI (base.Scheme != "") or nil; with a nil
// base, ref is returned with dot segments removed from its path. ref may
// be any parsed URI-reference, typically from
// ParseUriReference/ParseIriReference. The returned error is always nil.
// Grounded on jplu-trident/iri/resolve.go's resolveComponents/recomposeIRI,
// adapted to operate on the verbatim Uri records this package already
// parses rather than trident's resolvedIRI/outputBuffer pair.
func ResolveUri(base, ref *Uri) (*Uri, error) {
	if base == nil {
		logDebug("resolving reference with no base", "ref", ref.Href)
		result := &Uri{
			Scheme:      ref.Scheme,
			HasQuery:    ref.HasQuery,
			Query:       ref.Query,
			HasFragment: ref.HasFragment,
			Fragment:    ref.Fragment,
		}
		result.HasAuthority = ref.HasAuthority
		result.Authority = ref.Authority
		copyAuthorityFields(result, ref)
		result.Path = removeDotSegments(ref.Path)
		result.Relative = formatRelative(result)
		result.Href = FormatUri(result)
		return result, nil
	}

	logDebug("resolving reference", "base", base.Href, "ref", ref.Href)
	result := &Uri{}

	switch {
	case ref.Scheme != "":
		result.Scheme = ref.Scheme
		result.HasAuthority = ref.HasAuthority
		result.Authority = ref.Authority
		copyAuthorityFields(result, ref)
		result.Path = removeDotSegments(ref.Path)
		result.HasQuery = ref.HasQuery
		result.Query = ref.Query

	case ref.HasAuthority:
		result.Scheme = base.Scheme
		result.HasAuthority = true
		result.Authority = ref.Authority
		copyAuthorityFields(result, ref)
		result.Path = removeDotSegments(ref.Path)
		result.HasQuery = ref.HasQuery
		result.Query = ref.Query

	case ref.Path == "":
		result.Scheme = base.Scheme
		result.HasAuthority = base.HasAuthority
		result.Authority = base.Authority
		copyAuthorityFields(result, base)
		result.Path = base.Path
		if ref.HasQuery {
			result.HasQuery = true
			result.Query = ref.Query
		} else {
			result.HasQuery = base.HasQuery
			result.Query = base.Query
		}

	default:
		result.Scheme = base.Scheme
		result.HasAuthority = base.HasAuthority
		result.Authority = base.Authority
		copyAuthorityFields(result, base)
		if strings.HasPrefix(ref.Path, "/") {
			result.Path = removeDotSegments(ref.Path)
		} else {
			result.Path = removeDotSegments(merge(base, ref.Path))
		}
		result.HasQuery = ref.HasQuery
		result.Query = ref.Query
	}

	result.HasFragment = ref.HasFragment
	result.Fragment = ref.Fragment

	result.Relative = formatRelative(result)
	result.Href = FormatUri(result)
	return result, nil
}

// merge implements RFC 3986 §5.3's reference-merge step: when base has an
// authority and an empty path, the merged path is "/" plus ref's path;
// otherwise it is everything in base's path up to and including its last
// "/" (or empty, if base's path has none), plus ref's path.
func merge(base *Uri, refPath string) string {
	if base.HasAuthority && base.Path == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(base.Path, '/'); i >= 0 {
		return base.Path[:i+1] + refPath
	}
	return refPath
}

// copyAuthorityFields copies the userinfo/host/port sub-fields of src into
// dst, alongside the Authority string a caller has already assigned.
func copyAuthorityFields(dst, src *Uri) {
	dst.HasUserinfo = src.HasUserinfo
	dst.Userinfo = src.Userinfo
	dst.Hostname = src.Hostname
	dst.Host = src.Host
	dst.IPv4 = src.IPv4
	dst.IPv6 = src.IPv6
	dst.IPvFuture = src.IPvFuture
	dst.HasPort = src.HasPort
	dst.Port = src.Port
}

// formatRelative reconstructs the Relative substring (authority marker
// through path) for a Uri assembled field-by-field rather than sliced from
// a single source string.
func formatRelative(u *Uri) string {
	var sb strings.Builder
	if u.HasAuthority {
		sb.WriteString("//")
		sb.WriteString(u.Authority)
	}
	sb.WriteString(u.Path)
	return sb.String()
}
