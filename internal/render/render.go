// Package render рисует кадр сессии на экране tcell.
package render

import (
	"fmt"

	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/engine"

	"github.com/gdamore/tcell/v2"
)

// Цвета строки состояния и лога
var (
	background  = tcell.ColorBlack
	statusStyle = tcell.StyleDefault.Background(background).Foreground(tcell.ColorYellow)
	deadStyle   = tcell.StyleDefault.Background(background).Foreground(tcell.ColorRed).Bold(true)

	logStyles = map[string]tcell.Style{
		domain.LogTypeInfo:   tcell.StyleDefault.Background(background).Foreground(tcell.ColorWhite),
		domain.LogTypeCombat: tcell.StyleDefault.Background(background).Foreground(tcell.ColorOrange),
		domain.LogTypeSpeech: tcell.StyleDefault.Background(background).Foreground(tcell.ColorLightBlue),
		domain.LogTypeDeath:  tcell.StyleDefault.Background(background).Foreground(tcell.ColorRed),
	}
)

// Renderer - коллаборатор отрисовки. Про ECS ничего не знает, рисует engine.Frame.
//
// Раскладка экрана:
//
//	строки [0, Height)      - карта
//	строка Height           - статус
//	строки Height+1 и ниже  - последние записи лога
type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw очищает экран, рисует кадр и показывает его.
func (r *Renderer) Draw(f engine.Frame) {
	r.screen.Clear()

	r.drawMap(f)
	r.drawStatus(f.Height, f.Status)
	for i, entry := range f.Log {
		r.drawText(0, f.Height+1+i, entry.Text, logStyle(entry.Type))
	}

	r.screen.Show()
}

func (r *Renderer) drawMap(f engine.Frame) {
	sw, sh := r.screen.Size()
	for y := 0; y < f.Height && y < sh; y++ {
		for x := 0; x < f.Width && x < sw; x++ {
			c := f.At(x, y)
			if !c.Known {
				continue
			}
			r.screen.SetContent(x, y, rune(c.Glyph.Char()), nil, GlyphStyle(c.Glyph))
		}
	}
}

func (r *Renderer) drawStatus(row int, st engine.Status) {
	text := fmt.Sprintf("%s  HP: %d / %d  Turn: %d", st.Name, st.HP, st.MaxHP, st.Turn)
	style := statusStyle
	if st.State == engine.StateGameOver {
		text += "  *** YOU ARE DEAD - press q to quit ***"
		style = deadStyle
	}
	r.drawText(0, row, text, style)
}

// drawText пишет строку слева направо, обрезая по ширине экрана.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	sw, sh := r.screen.Size()
	if y < 0 || y >= sh {
		return
	}
	for _, ch := range text {
		if x >= sw {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// GlyphStyle - цвет символа на чёрном фоне
func GlyphStyle(g types.Glyph) tcell.Style {
	red, green, blue := g.RGB()
	return tcell.StyleDefault.
		Background(background).
		Foreground(tcell.NewRGBColor(red, green, blue))
}

func logStyle(logType string) tcell.Style {
	if s, ok := logStyles[logType]; ok {
		return s
	}
	return logStyles[domain.LogTypeInfo]
}
