package document

import "strings"

// Run is a fragment of section content carrying a single font weight.
type Run struct {
	Text string
	Bold bool
}

// SplitBold breaks inline <b>...</b> markup into consecutive runs of plain
// and bold text. Unterminated markup is tolerated: the remainder keeps the
// weight that was active when the text ran out.
func SplitBold(s string) []Run {
	var runs []Run
	bold := false
	for s != "" {
		tag := "<b>"
		if bold {
			tag = "</b>"
		}
		i := strings.Index(s, tag)
		if i < 0 {
			runs = append(runs, Run{Text: s, Bold: bold})
			break
		}
		if i > 0 {
			runs = append(runs, Run{Text: s[:i], Bold: bold})
		}
		s = s[i+len(tag):]
		bold = !bold
	}
	return runs
}

// StripBold removes bold markup, leaving the plain text.
func StripBold(s string) string {
	s = strings.ReplaceAll(s, "<b>", "")
	return strings.ReplaceAll(s, "</b>", "")
}
