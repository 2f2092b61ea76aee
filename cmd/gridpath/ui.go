package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/chase"
	"github.com/katalvlaran/gridpath/pathgrid"
)

var (
	styleFloor  = tcell.StyleDefault
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOpen   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleClosed = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleEnemy  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// Each grid cell is drawn two terminal columns wide so the map looks square.
const cellWidth = 2

var keyDirections = map[tcell.Key]pathgrid.Direction{
	tcell.KeyLeft:  pathgrid.Left,
	tcell.KeyRight: pathgrid.Right,
	tcell.KeyUp:    pathgrid.Up,
	tcell.KeyDown:  pathgrid.Down,
}

var runeDirections = map[rune]pathgrid.Direction{
	'h': pathgrid.Left,
	'l': pathgrid.Right,
	'k': pathgrid.Up,
	'j': pathgrid.Down,
}

type gameUI struct {
	screen  tcell.Screen
	session *chase.Session
	app     *app
	status  string
}

func newGameUI(screen tcell.Screen, session *chase.Session, a *app) *gameUI {
	return &gameUI{screen: screen, session: session, app: a}
}

// run draws, then blocks on input until the player quits.
func (g *gameUI) run() {
	g.draw()
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		if !g.handleEvent(ev) {
			return
		}
		g.draw()
	}
}

// handleEvent applies one terminal event; false means quit.
func (g *gameUI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		g.status = ""

		if d, ok := keyDirections[ev.Key()]; ok {
			g.report(g.session.Move(d))
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		if d, ok := runeDirections[ev.Rune()]; ok {
			g.report(g.session.Move(d))
			return true
		}
		switch ev.Rune() {
		case ' ':
			g.report(g.session.ToggleFacing())
		case 'r':
			g.session.Grid().RebuildAllAdjacency()
			g.app.recorder.ObserveRebuild()
			g.status = "adjacency rebuilt"
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

func (g *gameUI) report(err error) {
	if err == nil {
		return
	}
	g.status = err.Error()
	g.app.log.Debug("action refused", slog.Any("err", err))
}

func (g *gameUI) draw() {
	g.screen.Clear()

	grid := g.session.Grid()
	n := grid.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			ch, style := ' ', styleFloor
			cell, _ := grid.Cell(pathgrid.Coord{Row: r, Col: c})
			switch {
			case !cell.Passable():
				ch, style = '█', styleWall
			case cell.VisitState() == pathgrid.Closed:
				ch, style = '∙', styleClosed
			case cell.VisitState() == pathgrid.Open:
				ch, style = '·', styleOpen
			}
			g.setCell(r, c, ch, style)
		}
	}

	p, e := g.session.Player(), g.session.Enemy()
	g.setCell(p.Pos.Row, p.Pos.Col, facingRune(p.Facing), stylePlayer)
	g.setCell(e.Pos.Row, e.Pos.Col, 'E', styleEnemy)

	status := fmt.Sprintf(" turn %d  player %v  enemy %v ", g.session.Turn(), p.Pos, e.Pos)
	if g.session.Caught() {
		status += " CAUGHT - q to quit "
	}
	if g.status != "" {
		status += " " + g.status + " "
	}
	g.drawText(0, n, status, styleStatus)

	g.screen.Show()
}

// setCell fills both terminal columns of grid cell (r, c).
func (g *gameUI) setCell(r, c int, ch rune, style tcell.Style) {
	x := c * cellWidth
	g.screen.SetContent(x, r, ch, nil, style)
	fill := ch
	if ch != '█' {
		fill = ' '
	}
	g.screen.SetContent(x+1, r, fill, nil, style)
}

func (g *gameUI) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		g.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func facingRune(d pathgrid.Direction) rune {
	switch d {
	case pathgrid.Left:
		return '<'
	case pathgrid.Up:
		return '^'
	case pathgrid.Down:
		return 'v'
	default:
		return '>'
	}
}
