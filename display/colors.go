package display

import "github.com/fatih/color"

type colorAttr int

const (
	intColor colorAttr = iota
	strColor
	keyColor
	punctColor
)

// Colors maps render attributes to sprintf-style colorizers.
type Colors struct {
	Map map[colorAttr]func(format string, a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Map: map[colorAttr]func(string, ...any) string{
			intColor:   color.RGB(128, 216, 236).SprintfFunc(),
			strColor:   color.RGB(8, 196, 16).SprintfFunc(),
			keyColor:   color.RGB(128, 168, 196).SprintfFunc(),
			punctColor: color.New(color.Faint).SprintfFunc(),
		},
	}
}

func (rs *renderState) paint(attr colorAttr, s string) string {
	if rs.colors == nil {
		return s
	}
	f, ok := rs.colors.Map[attr]
	if !ok {
		return s
	}
	return f("%s", s)
}
