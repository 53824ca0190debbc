package vocabulary

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Level is a JLPT proficiency tier.
type Level string

const (
	LevelN5 Level = "N5"
	LevelN4 Level = "N4"
	LevelN3 Level = "N3"
	LevelN2 Level = "N2"
	LevelN1 Level = "N1"
)

// AllLevels is ordered from the introductory tier to the most advanced one.
var AllLevels = []Level{LevelN5, LevelN4, LevelN3, LevelN2, LevelN1}

var _ pflag.Value = (*Level)(nil)

var levelLabels = map[Level]string{
	LevelN5: "基础词汇",
	LevelN4: "初级词汇",
	LevelN3: "中级词汇",
	LevelN2: "中高级词汇",
	LevelN1: "高级词汇",
}

func ParseLevel(value string) (Level, error) {
	upper := Level(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := levelLabels[upper]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, value)
	}
	return upper, nil
}

func (l Level) Label() string {
	return levelLabels[l]
}

// QueryTags are the dictionary search tags of the level.
// The two introductory levels are also restricted to common words.
func (l Level) QueryTags() []string {
	tag := "jlpt-" + strings.ToLower(string(l))
	switch l {
	case LevelN5, LevelN4:
		return []string{tag, "common"}
	default:
		return []string{tag}
	}
}

// QueryKeyword joins the query tags the way the dictionary search expects them.
func (l Level) QueryKeyword() string {
	tags := l.QueryTags()
	keywords := make([]string, 0, len(tags))
	for _, tag := range tags {
		keywords = append(keywords, "#"+tag)
	}
	return strings.Join(keywords, " ")
}

// Set implements pflag.Value.
func (l *Level) Set(value string) error {
	level, err := ParseLevel(value)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func (l Level) String() string {
	return string(l)
}

// Type implements pflag.Value.
func (l *Level) Type() string {
	return "level"
}
