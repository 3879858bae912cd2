package uri

import "strings"

// removeDotSegments implements RFC 3986 §5.2.4: it repeatedly peels a
// segment off the front of input and either discards it (a "." segment,
// or a ".." segment, which also removes the last segment already in
// output) or appends it to output, until input is exhausted. Grounded on
// jplu-trident/iri/path.go's applyDotSegmentRules/extractFirstSegment,
// adapted from trident's string-builder output to a plain slice of
// segments, each keeping its own leading "/", concatenated with no
// separator at the end — this package never routes path text through an
// outputBuffer, so there is no writer to adapt to.
func removeDotSegments(path string) string {
	var output []string
	input := path

	for input != "" {
		switch {
		case strings.HasPrefix(input, "../"):
			input = input[3:]
		case strings.HasPrefix(input, "./"):
			input = input[2:]
		case strings.HasPrefix(input, "/./"):
			input = "/" + input[3:]
		case input == "/.":
			input = "/"
		case strings.HasPrefix(input, "/../"):
			input = "/" + input[4:]
			if len(output) > 0 {
				output = output[:len(output)-1]
			}
		case input == "/..":
			input = "/"
			if len(output) > 0 {
				output = output[:len(output)-1]
			}
		case input == "." || input == "..":
			input = ""
		default:
			seg, rest := firstSegment(input)
			output = append(output, seg)
			input = rest
		}
	}
	return strings.Join(output, "")
}

// firstSegment splits input into its leading path segment (including a
// leading "/" if present, and stopping before the next "/") and the rest.
func firstSegment(input string) (segment, rest string) {
	if input == "" {
		return "", ""
	}
	end := 1
	if input[0] == '/' {
		end = 1
		for end < len(input) && input[end] != '/' {
			end++
		}
	} else {
		for end < len(input) && input[end] != '/' {
			end++
		}
	}
	return input[:end], input[end:]
}
