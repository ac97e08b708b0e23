package core

// Sprite is rune art drawn top-left anchored at a projected position.
type Sprite struct {
	Rows  []string
	Color Color
}

// SpriteSource provides sprites once they have been loaded.
type SpriteSource interface {
	// Ready reports whether every sprite has finished loading.
	Ready() bool
	// Sprite returns the animation frame of a named sprite.
	Sprite(name string, frame int) (Sprite, bool)
}

// DrawSprite draws a named sprite into area, or a flat block of fallback color
// when src is nil, not ready, or lacks the sprite. Spaces in the art are transparent.
func DrawSprite(dst *Screen, src SpriteSource, name string, frame int, area Rect, fallback Color) {
	drawSprite(dst, src, name, frame, area, fallback, false)
}

// DrawSpriteTinted is DrawSprite with every rune drawn in tint.
func DrawSpriteTinted(dst *Screen, src SpriteSource, name string, frame int, area Rect, tint Color) {
	drawSprite(dst, src, name, frame, area, tint, true)
}

func drawSprite(dst *Screen, src SpriteSource, name string, frame int, area Rect, fallback Color, tinted bool) {
	if src != nil && src.Ready() {
		if sp, ok := src.Sprite(name, frame); ok {
			color := sp.Color
			if tinted {
				color = fallback
			}
			for dy, row := range sp.Rows {
				if dy >= area.H {
					break
				}
				dx := 0
				for _, r := range row {
					if dx >= area.W {
						break
					}
					if r != ' ' {
						dst.SetCell(area.X+dx, area.Y+dy, r, color)
					}
					dx++
				}
			}
			return
		}
	}
	dst.FillRect(area, '█', fallback)
}
