package input

import "github.com/vovakirdan/erika-arcade/internal/core"

// Binding maps one key name to an action for one player.
// Key names follow Bubble Tea's KeyMsg.String(): "up", "enter", " " for space.
type Binding struct {
	Key    string
	Action core.Action
	Player core.PlayerID
	Hold   bool // level-triggered while the key is down
}

// Keymap is an ordered set of bindings. A key may appear more than once;
// the phase gate decides which of its actions reach the game.
type Keymap []Binding

func bind(p core.PlayerID, a core.Action, keys ...string) Keymap {
	km := make(Keymap, 0, len(keys))
	for _, k := range keys {
		km = append(km, Binding{Key: k, Action: a, Player: p})
	}
	return km
}

func hold(p core.PlayerID, a core.Action, keys ...string) Keymap {
	km := bind(p, a, keys...)
	for i := range km {
		km[i].Hold = true
	}
	return km
}

func join(maps ...Keymap) Keymap {
	var out Keymap
	for _, m := range maps {
		out = append(out, m...)
	}
	return out
}

// controls are shared by every mode and always belong to Player1.
func controls() Keymap {
	return join(
		bind(core.Player1, core.ActionConfirm, "enter"),
		bind(core.Player1, core.ActionBack, "b"),
		bind(core.Player1, core.ActionPause, "p", "esc"),
		bind(core.Player1, core.ActionRestart, "r"),
		bind(core.Player1, core.ActionQuit, "q", "ctrl+c"),
	)
}

// SoloKeymap is used by the side-scrolling modes.
func SoloKeymap() Keymap {
	return join(
		bind(core.Player1, core.ActionPrimary, " ", "w", "up"),
		hold(core.Player1, core.ActionCrouch, "s", "down"),
		bind(core.Player1, core.ActionUp, "w", "up", "k"),
		bind(core.Player1, core.ActionDown, "s", "down", "j"),
		controls(),
	)
}

// BlockKeymap moves the cursor with the arrows and places with space or enter.
func BlockKeymap() Keymap {
	return join(
		bind(core.Player1, core.ActionUp, "up", "w", "k"),
		bind(core.Player1, core.ActionDown, "down", "s", "j"),
		bind(core.Player1, core.ActionLeft, "left", "a", "h"),
		bind(core.Player1, core.ActionRight, "right", "d", "l"),
		bind(core.Player1, core.ActionPrimary, " "),
		bind(core.Player1, core.ActionCycle, "tab"),
		bind(core.Player1, core.ActionSlot1, "1"),
		bind(core.Player1, core.ActionSlot2, "2"),
		bind(core.Player1, core.ActionSlot3, "3"),
		controls(),
	)
}

// RaceKeymap splits the keyboard: Player1 on w/s/space, Player2 on the arrows.
func RaceKeymap() Keymap {
	return join(
		bind(core.Player1, core.ActionPrimary, "w", " "),
		hold(core.Player1, core.ActionCrouch, "s"),
		bind(core.Player2, core.ActionPrimary, "up"),
		hold(core.Player2, core.ActionCrouch, "down"),
		bind(core.Player1, core.ActionUp, "w"),
		bind(core.Player1, core.ActionDown, "s"),
		controls(),
	)
}

// KeymapFor picks the keymap for a mode.
func KeymapFor(modeID string, race bool) Keymap {
	switch {
	case modeID == "block":
		return BlockKeymap()
	case race:
		return RaceKeymap()
	default:
		return SoloKeymap()
	}
}
