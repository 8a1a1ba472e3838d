package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textchain/internal/caret"
	"github.com/dshills/textchain/internal/config"
	"github.com/dshills/textchain/internal/document"
	"github.com/dshills/textchain/internal/edit"
	"github.com/dshills/textchain/internal/event"
	"github.com/dshills/textchain/internal/geom"
	"github.com/dshills/textchain/internal/layout/grid"
	"github.com/dshills/textchain/internal/mouse"
	"github.com/dshills/textchain/internal/navigate"
	"github.com/dshills/textchain/internal/region"
	"github.com/dshills/textchain/internal/selection"
)

// options holds the command-line options.
type options struct {
	configPath string
}

// sampleTexts seeds the demo regions.
var sampleTexts = []string{
	"Regions stack vertically and act as one document.\nArrows move the caret; shift extends the selection.",
	"Word motion is Alt+Left and Alt+Right.\nHome and End jump to the document edges.",
	"Drag with the mouse to select across regions.\nCtrl+A selects everything, Ctrl+C copies, Esc quits.",
}

// app owns the screen and the coordination state for the demo.
type app struct {
	screen tcell.Screen

	cfg   config.Config
	theme config.Theme

	doc   *document.Document
	sel   *selection.Model
	nav   *navigate.Coordinator
	edit  *edit.Coordinator
	track *mouse.Tracker
	grids []*grid.Layout

	watcher *config.Watcher
	buttons tcell.ButtonMask
	status  string

	mu      sync.Mutex // guards pending
	pending *pendingConfig
}

// pendingConfig is a reloaded configuration staged by the watcher goroutine
// and applied on the event loop.
type pendingConfig struct {
	cfg   config.Config
	theme config.Theme
}

func newApp(opts options) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	theme, err := config.LoadTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}

	bus := event.NewBus()
	doc := document.New(document.WithBus(bus))
	sel := selection.NewModel(doc, bus)
	xmem := caret.NewXMemory()

	a := &app{
		cfg:   cfg,
		theme: theme,
		doc:   doc,
		sel:   sel,
		nav:   navigate.New(doc, sel, xmem, bus),
		edit:  edit.New(doc, sel, xmem, bus),
		track: mouse.NewTracker(doc, sel, xmem),
	}

	// The grids must share the configured cell metrics: frames, mouse
	// points, and rendering all convert through them.
	for _, text := range sampleTexts {
		r := region.New(text)
		g := grid.NewWithMetrics(r, cfg.Layout.CellWidth, cfg.Layout.CellHeight)
		a.grids = append(a.grids, g)
		doc.Register(r, g)
	}
	a.layoutRegions()
	doc.RequestFocus(doc.First())

	bus.Subscribe(event.TypeBoundaryReached, func(e event.Event) {
		if b, ok := e.(event.BoundaryReached); ok {
			a.status = "document " + b.Edge.String()
		}
	})

	if opts.configPath != "" {
		path := opts.configPath
		watcher, err := config.NewWatcher([]string{path}, func() { a.reloadConfig(path) })
		if err != nil {
			return nil, err
		}
		a.watcher = watcher
	}
	return a, nil
}

// initScreen creates and initializes the terminal screen. Kept out of
// newApp so the model can be exercised without a terminal.
func (a *app) initScreen() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	a.screen = screen
	return nil
}

func (a *app) shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.screen != nil {
		a.screen.Fini()
	}
}

// reloadConfig re-reads the configuration and theme from the watcher
// goroutine, stages the result, and wakes the event loop. The document is
// only touched once the loop applies the staged values.
func (a *app) reloadConfig(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		return
	}
	theme, err := config.LoadTheme(cfg.Theme)
	if err != nil {
		theme = config.DefaultTheme()
	}
	a.mu.Lock()
	a.pending = &pendingConfig{cfg: cfg, theme: theme}
	a.mu.Unlock()
	if a.screen != nil {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// applyPending installs a staged configuration, if any.
func (a *app) applyPending() {
	a.mu.Lock()
	pending := a.pending
	a.pending = nil
	a.mu.Unlock()
	if pending == nil {
		return
	}
	a.cfg = pending.cfg
	a.theme = pending.theme
	// New metrics invalidate every grid, not just the frames.
	for _, g := range a.grids {
		g.SetMetrics(a.cfg.Layout.CellWidth, a.cfg.Layout.CellHeight)
	}
	a.layoutRegions()
}

// layoutRegions assigns each region a frame from its line count and the
// configured metrics. Frames are in document units; the grids are built
// from the same metrics, so screen cells and document points convert by
// the cell size everywhere.
func (a *app) layoutRegions() {
	cw := a.cfg.Layout.CellWidth
	ch := a.cfg.Layout.CellHeight
	gap := a.cfg.Layout.RegionGap * ch

	x := 2 * cw
	y := gap
	for _, r := range a.doc.Regions() {
		lines := strings.Count(r.Text(), "\n") + 1
		width := float64(longestLine(r.Text())) * cw
		if width < cw {
			width = cw
		}
		r.SetFrame(geom.Rect{X: x, Y: y, W: width, H: float64(lines) * ch})
		y += float64(lines)*ch + gap
	}
	a.nav.InvalidateGeometry()
}

func longestLine(text string) int {
	longest := 0
	for _, ln := range strings.Split(text, "\n") {
		if n := len([]rune(ln)); n > longest {
			longest = n
		}
	}
	return longest
}

// loop runs the demo until the user quits.
func (a *app) loop() error {
	for {
		a.render()
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			a.applyPending()
		case nil:
			return nil
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	shift := ev.Modifiers()&tcell.ModShift != 0
	word := ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return true
	case tcell.KeyUp:
		a.nav.Dispatch(navigate.MoveUp, shift)
	case tcell.KeyDown:
		a.nav.Dispatch(navigate.MoveDown, shift)
	case tcell.KeyLeft:
		if word {
			a.nav.Dispatch(navigate.WordLeft, shift)
		} else {
			a.nav.Dispatch(navigate.MoveLeft, shift)
		}
	case tcell.KeyRight:
		if word {
			a.nav.Dispatch(navigate.WordRight, shift)
		} else {
			a.nav.Dispatch(navigate.MoveRight, shift)
		}
	case tcell.KeyHome:
		a.nav.Dispatch(navigate.GlobalStart, shift)
	case tcell.KeyEnd:
		a.nav.Dispatch(navigate.GlobalEnd, shift)
	case tcell.KeyCtrlA:
		if err := a.track.SelectAll(); err != nil {
			a.status = err.Error()
		}
	case tcell.KeyCtrlC:
		a.copySelection()
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		a.edit.DeleteSelection()
		a.layoutRegions()
	}
	return false
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := geom.Point{
		X: float64(x) * a.cfg.Layout.CellWidth,
		Y: float64(y) * a.cfg.Layout.CellHeight,
	}
	buttons := ev.Buttons() & tcell.ButtonMask(0xff)
	pressed := buttons&tcell.Button1 != 0
	wasPressed := a.buttons&tcell.Button1 != 0
	a.buttons = buttons

	switch {
	case pressed && !wasPressed:
		r, inside := a.regionAt(p)
		if !inside {
			return
		}
		if ev.Modifiers()&tcell.ModShift != 0 {
			a.track.ShiftClick(r, p)
		} else {
			a.track.BeginDrag(r, p)
		}
	case pressed && wasPressed:
		a.track.Drag(p)
	case !pressed && wasPressed:
		a.track.EndDrag()
	}
}

// regionAt finds the region whose frame contains the document point.
func (a *app) regionAt(p geom.Point) (*region.Region, bool) {
	for _, r := range a.doc.Regions() {
		if r.Frame().Contains(p) {
			return r, true
		}
	}
	return nil, false
}

func (a *app) copySelection() {
	text := a.edit.SelectedText()
	if text == "" {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		a.status = "clipboard: " + err.Error()
		return
	}
	a.status = fmt.Sprintf("copied %d characters", len([]rune(text)))
}
