package naming

import (
	"fmt"
	"regexp"
	"strconv"
)

// Style is the interface for camera filename conventions. Match extracts
// the numeric ordering key from a filename, if the name belongs to the
// convention.
type Style interface {
	Name() string
	Match(filename string) (key int, ok bool)
}

type patternStyle struct {
	name string
	re   *regexp.Regexp
}

func (s *patternStyle) Name() string { return s.name }

func (s *patternStyle) Match(filename string) (int, bool) {
	m := s.re.FindStringSubmatch(filename)
	if m == nil {
		return 0, false
	}
	key, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return key, true
}

// styles lists the supported conventions in detection precedence order.
// The sequence-suffix style is checked first: a suffixed name like
// DSCF0851_0001.jpg never matches the plain counter pattern, but mixed
// directories should still resolve to the suffix counter.
var styles = []*patternStyle{
	{name: "sequence-suffix", re: regexp.MustCompile(`(?i)^DSCF\d{4}_(\d{4})\.JPG$`)},
	{name: "camera-counter", re: regexp.MustCompile(`(?i)^DSCF(\d{4})\.JPG$`)},
}

// Detect picks the naming style for a set of filenames by trial-matching
// every style against the full list. The result depends only on the set of
// names, not on their order.
func Detect(names []string) (Style, error) {
	for _, s := range styles {
		for _, n := range names {
			if _, ok := s.Match(n); ok {
				return s, nil
			}
		}
	}
	return nil, fmt.Errorf("no supported image filename patterns found")
}
