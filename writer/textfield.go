package writer

import "strings"

// textFieldPrefix picks a prefix string, per the text-prefix protocol
// (spec.md §4.1), short enough to be cheap and guaranteed not to already
// occur at the start of any content line: it tries ">" and keeps
// lengthening it until no line collides.
func textFieldPrefix(lines []string) string {
	prefix := ">"
	for {
		collision := false
		for _, l := range lines {
			if strings.HasPrefix(l, prefix) {
				collision = true
				break
			}
		}
		if !collision {
			return prefix
		}
		prefix += ">"
	}
}

// needsPrefix reports whether any logical content line starts with ';',
// which would otherwise be misread as the text field's closing
// delimiter (spec.md §4.1 "if the first line matches prefix protocol
// ... then every subsequent line is required to begin with <prefix>").
func needsPrefix(lines []string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l, ";") {
			return true
		}
	}
	return false
}

// foldLine splits a single logical line into physical pieces no longer
// than maxLineLength-1 runes, joining all but the last with a trailing
// '\' continuation marker (spec.md §4.1 line-folding protocol, reversed
// for writing: decodeTextField strips the trailing '\' and concatenates
// without an intervening newline).
func foldLine(line string) []string {
	runes := []rune(line)
	limit := maxLineLength - 1
	if len(runes) <= limit {
		return []string{line}
	}
	var out []string
	for len(runes) > limit {
		out = append(out, string(runes[:limit])+"\\")
		runes = runes[limit:]
	}
	out = append(out, string(runes))
	return out
}

// encodeTextField renders s (the decoded CHAR content) as the physical
// lines of a ';'…';' text field body, applying line-folding (if fold is
// true) and the text-prefix protocol (if the content requires it to
// escape a line-initial ';').
func encodeTextField(s string, fold bool) []string {
	logical := strings.Split(s, "\n")

	var physical []string
	if fold {
		for _, l := range logical {
			physical = append(physical, foldLine(l)...)
		}
	} else {
		physical = logical
	}

	var signal string
	if needsPrefix(physical) {
		prefix := textFieldPrefix(physical)
		for i, l := range physical {
			physical[i] = prefix + l
		}
		signal = prefix + "\\"
	} else if fold {
		signal = "\\"
	}

	if signal == "" {
		return physical
	}
	return append([]string{signal}, physical...)
}
