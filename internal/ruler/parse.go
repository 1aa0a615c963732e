package ruler

import "strings"

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// ParseTag parses an opening tag invocation at the start of src, for example
// [details], [details="Summary"] or [wrap=toc level=2 title="A B"]. It
// returns the parsed tag, the number of bytes consumed and whether src
// started with a well-formed tag.
func ParseTag(src string) (TagInfo, int, bool) {
	if len(src) < 3 || src[0] != '[' {
		return TagInfo{}, 0, false
	}
	i := 1
	for i < len(src) && isNameByte(src[i]) {
		i++
	}
	if i == 1 || i >= len(src) {
		return TagInfo{}, 0, false
	}
	info := TagInfo{Tag: strings.ToLower(src[1:i]), Attrs: map[string]string{}}

	if src[i] == '=' {
		val, n, ok := parseValue(src[i+1:])
		if !ok {
			return TagInfo{}, 0, false
		}
		info.Attrs[DefaultAttr] = val
		i += 1 + n
	}

	for i < len(src) {
		switch {
		case src[i] == ']':
			return info, i + 1, true
		case isSpace(src[i]):
			i++
		case isNameByte(src[i]):
			start := i
			for i < len(src) && isNameByte(src[i]) {
				i++
			}
			if i >= len(src) || src[i] != '=' {
				return TagInfo{}, 0, false
			}
			key := strings.ToLower(src[start:i])
			val, n, ok := parseValue(src[i+1:])
			if !ok {
				return TagInfo{}, 0, false
			}
			info.Attrs[key] = val
			i += 1 + n
		default:
			return TagInfo{}, 0, false
		}
	}
	return TagInfo{}, 0, false
}

// parseValue reads a quoted or bare attribute value.
func parseValue(src string) (string, int, bool) {
	if src == "" {
		return "", 0, false
	}
	if q := src[0]; q == '"' || q == '\'' {
		end := strings.IndexByte(src[1:], q)
		if end < 0 || strings.ContainsAny(src[1:1+end], "\n") {
			return "", 0, false
		}
		return src[1 : 1+end], end + 2, true
	}
	i := 0
	for i < len(src) && src[i] != ']' && !isSpace(src[i]) && src[i] != '\n' {
		i++
	}
	if i == 0 {
		return "", 0, false
	}
	return src[:i], i, true
}

// ParseClose reports whether src starts with the closing tag [/tag] and,
// if so, its length.
func ParseClose(src, tag string) (int, bool) {
	n := len(tag) + 3
	if len(src) < n || src[0] != '[' || src[1] != '/' || src[n-1] != ']' {
		return 0, false
	}
	if !strings.EqualFold(src[2:n-1], tag) {
		return 0, false
	}
	return n, true
}

// FindClose locates the [/tag] that balances an already consumed opening
// tag, honouring nested invocations of the same tag. It returns the offset
// of the closing tag and its length.
func FindClose(src, tag string) (int, int, bool) {
	depth := 0
	for i := 0; i < len(src); i++ {
		if src[i] != '[' {
			continue
		}
		if n, ok := ParseClose(src[i:], tag); ok {
			if depth == 0 {
				return i, n, true
			}
			depth--
			i += n - 1
			continue
		}
		if info, n, ok := ParseTag(src[i:]); ok && info.Tag == strings.ToLower(tag) {
			depth++
			i += n - 1
		}
	}
	return 0, 0, false
}
