package app

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/renderer/highlight"
)

// Styles for the three text classes plus the status line.
var (
	styleText    = tcell.StyleDefault
	styleSel     = tcell.StyleDefault.Reverse(true)
	styleMatch   = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleCurrent = tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// render redraws the whole screen: buffer text with selection and
// search decorations, then the status line.
func (app *Application) render() {
	if app.screen == nil {
		return
	}
	s := app.screen
	s.Clear()

	width, height := s.Size()
	if width == 0 || height == 0 {
		return
	}
	textRows := height - 1

	app.followCursor(textRows)

	anchor, head := app.buf.Selection()
	sel := buffer.Span{Start: anchor, End: head}.Normalize()
	hasSel := anchor != head

	for row := 0; row < textRows; row++ {
		line := app.topLine + row
		if line >= app.buf.LineCount() {
			break
		}
		app.renderLine(s, row, line, width, sel, hasSel)
	}

	app.renderStatusLine(s, width, height-1)
	app.placeCursor(s, textRows)
	s.Show()
}

// renderLine draws one buffer line at screen row.
func (app *Application) renderLine(s tcell.Screen, row, line, width int, sel buffer.Span, hasSel bool) {
	text := app.buf.LineText(line)
	lineStart := app.buf.PointToOffset(buffer.Point{Line: line})

	x := 0
	for col := 0; col < len(text) && x < width; {
		r, size := utf8.DecodeRuneInString(text[col:])

		style := styleText
		p := buffer.Point{Line: line, Column: col}
		if kind, ok := app.hl.KindAt(lineStart + col); ok {
			if kind == highlight.KindCurrent {
				style = styleCurrent
			} else {
				style = styleMatch
			}
		} else if hasSel && !p.Before(sel.Start) && p.Before(sel.End) {
			style = styleSel
		}

		if r == '\t' {
			// Render tabs as spaces to the next stop.
			for stop := x + tabWidth - x%tabWidth; x < stop && x < width; x++ {
				s.SetContent(x, row, ' ', nil, style)
			}
		} else {
			s.SetContent(x, row, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
		col += size
	}
}

const tabWidth = 4

// renderStatusLine draws the bottom line: the search prompt while a
// session is open, the status message otherwise.
func (app *Application) renderStatusLine(s tcell.Screen, width, row int) {
	var left string
	if app.disp.Search().Active {
		left = app.searchPrompt()
	} else if app.pending != "" {
		left = app.pending + "-"
	} else {
		left = app.status
	}

	cur := app.buf.Cursor()
	right := fmt.Sprintf(" %s  (%d,%d) ", app.title(), cur.Line+1, cur.Column)

	x := 0
	for _, r := range " " + left {
		if x >= width {
			break
		}
		s.SetContent(x, row, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width-runewidth.StringWidth(right); x++ {
		s.SetContent(x, row, ' ', nil, styleStatus)
	}
	for _, r := range right {
		if x >= width {
			break
		}
		s.SetContent(x, row, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
}

// placeCursor positions the terminal cursor on the buffer cursor.
func (app *Application) placeCursor(s tcell.Screen, textRows int) {
	cur := app.buf.Cursor()
	row := cur.Line - app.topLine
	if row < 0 || row >= textRows {
		s.HideCursor()
		return
	}

	text := app.buf.LineText(cur.Line)
	x := 0
	for col := 0; col < cur.Column && col < len(text); {
		r, size := utf8.DecodeRuneInString(text[col:])
		if r == '\t' {
			x += tabWidth - x%tabWidth
		} else {
			x += runewidth.RuneWidth(r)
		}
		col += size
	}
	s.ShowCursor(x, row)
}

// followCursor scrolls the viewport so the cursor stays visible with
// the configured margin of context lines.
func (app *Application) followCursor(textRows int) {
	if textRows <= 0 {
		return
	}

	margin := app.cfg.Settings().Editor.ScrollMargin
	if margin > textRows/2 {
		margin = textRows / 2
	}

	cur := app.buf.Cursor()
	if cur.Line < app.topLine+margin {
		app.topLine = cur.Line - margin
	}
	if cur.Line > app.topLine+textRows-1-margin {
		app.topLine = cur.Line - textRows + 1 + margin
	}

	maxTop := app.buf.LineCount() - textRows
	if maxTop < 0 {
		maxTop = 0
	}
	if app.topLine > maxTop {
		app.topLine = maxTop
	}
	if app.topLine < 0 {
		app.topLine = 0
	}
}
