package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textchain/internal/region"
)

// toTcell converts a theme color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// render redraws the whole screen. The grid layouts and the screen share
// cell metrics, so a document point divided by the cell size is a screen
// cell.
func (a *app) render() {
	gapStyle := tcell.StyleDefault.Background(toTcell(a.theme.Gap))
	textStyle := gapStyle.Foreground(toTcell(a.theme.Text))
	selStyle := textStyle.Background(toTcell(a.theme.Selection))

	a.screen.Fill(' ', gapStyle)
	a.screen.HideCursor()

	focused := a.doc.CurrentFocus()
	for _, r := range a.doc.Regions() {
		a.renderRegion(r, r == focused, textStyle, selStyle)
	}
	a.renderStatus(textStyle)
	a.screen.Show()
}

// renderRegion draws one region's text and selection, and places the
// terminal cursor at the caret when the region is focused.
func (a *app) renderRegion(r *region.Region, focused bool, textStyle, selStyle tcell.Style) {
	frame := r.Frame()
	col0 := int(frame.X / a.cfg.Layout.CellWidth)
	row0 := int(frame.Y / a.cfg.Layout.CellHeight)

	sel := r.Selection()
	col, row := col0, row0
	for i, rn := range r.Runes() {
		selected := !sel.IsEmpty() && sel.Contains(i)
		if focused && !r.HasSelection() && i == r.Caret() {
			a.screen.ShowCursor(col, row)
		}
		if rn == '\n' {
			if selected {
				a.screen.SetContent(col, row, ' ', nil, selStyle)
			}
			row++
			col = col0
			continue
		}
		style := textStyle
		if selected {
			style = selStyle
		}
		a.screen.SetContent(col, row, rn, nil, style)
		col += runewidth.RuneWidth(rn)
	}
	if focused && !r.HasSelection() && r.Caret() == r.Len() {
		a.screen.ShowCursor(col, row)
	}
}

// renderStatus draws a one-line footer with the focused region and any
// transient message.
func (a *app) renderStatus(style tcell.Style) {
	_, height := a.screen.Size()
	row := height - 1
	line := "textchain demo"
	if r := a.doc.CurrentFocus(); r != nil {
		if i, ok := a.doc.IndexOf(r); ok {
			line += "  region " + string(rune('1'+i))
		}
	}
	if a.status != "" {
		line += "  " + a.status
	}
	col := 0
	for _, rn := range line {
		a.screen.SetContent(col, row, rn, nil, style)
		col += runewidth.RuneWidth(rn)
	}
}
