package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	HumanKind = "human"
	BotKind   = "bot"

	NoPlacement = "none"
	DefaultName = "Unnamed"
)

// Player holds the data every participant shares: display name, mark and the most recent placement.
type Player struct {
	Name      string `json:"name"`
	Mark      string `json:"mark"`
	Placement string `json:"placement"`
	Kind      string `json:"kind"`
}

func NewPlayer(name, mark, kind string) *Player {
	return &Player{
		Name:      FormatName(name),
		Mark:      strings.ToUpper(mark),
		Placement: NoPlacement,
		Kind:      kind,
	}
}

// FormatName title-cases a display name, falling back to DefaultName for blank input.
func FormatName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}

	return cases.Title(language.Und).String(name)
}

func (that *Player) GetName() string {
	return that.Name
}

func (that *Player) GetMark() string {
	return that.Mark
}

func (that *Player) GetPlacement() string {
	return that.Placement
}

func (that *Player) SetPlacement(position string) {
	that.Placement = position
}

func (that *Player) IsBot() bool {
	return that.Kind == BotKind
}
