package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/sieve/sieve"
)

// symptomToken is a palette entry that can be dragged onto the canvas.
// Tapping it or pressing Enter or Space while it has focus adds the symptom
// directly.
type symptomToken struct {
	widget.BaseWidget

	symptom sieve.Symptom
	onAdd   func(sieve.Symptom)
	onDrop  func(sieve.Symptom, fyne.Position)
	onDrag  func(dragging bool)

	bg       *canvas.Rectangle
	label    *widget.Label
	dragPos  fyne.Position
	dragging bool
	focused  bool
}

var (
	_ fyne.Draggable     = (*symptomToken)(nil)
	_ fyne.Tappable      = (*symptomToken)(nil)
	_ fyne.Focusable     = (*symptomToken)(nil)
	_ desktop.Cursorable = (*symptomToken)(nil)
)

func newSymptomToken(sym sieve.Symptom, onAdd func(sieve.Symptom), onDrop func(sieve.Symptom, fyne.Position), onDrag func(bool)) *symptomToken {
	t := &symptomToken{
		symptom: sym,
		onAdd:   onAdd,
		onDrop:  onDrop,
		onDrag:  onDrag,
		label:   widget.NewLabel(string(sym)),
	}
	t.bg = canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	t.bg.CornerRadius = theme.InputRadiusSize()
	t.bg.StrokeWidth = 1
	t.bg.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	t.ExtendBaseWidget(t)
	return t
}

func (t *symptomToken) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(t.bg, t.label))
}

func (t *symptomToken) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (t *symptomToken) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(t); c != nil {
		c.Focus(t)
	}
	t.add()
}

func (t *symptomToken) Dragged(ev *fyne.DragEvent) {
	t.dragPos = ev.AbsolutePosition
	if !t.dragging {
		t.dragging = true
		t.setFill(theme.Color(theme.ColorNamePressed))
		if t.onDrag != nil {
			t.onDrag(true)
		}
	}
}

// DragEnd hands the last pointer position to onDrop, which decides whether
// it landed on the canvas.
func (t *symptomToken) DragEnd() {
	if !t.dragging {
		return
	}
	t.dragging = false
	t.restoreFill()
	if t.onDrag != nil {
		t.onDrag(false)
	}
	if t.onDrop != nil {
		t.onDrop(t.symptom, t.dragPos)
	}
}

func (t *symptomToken) FocusGained() {
	t.focused = true
	t.restoreFill()
}

func (t *symptomToken) FocusLost() {
	t.focused = false
	t.restoreFill()
}

func (t *symptomToken) TypedRune(rune) {}

func (t *symptomToken) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
		t.add()
	}
}

func (t *symptomToken) add() {
	if t.onAdd != nil {
		t.onAdd(t.symptom)
	}
}

func (t *symptomToken) restoreFill() {
	if t.focused {
		t.setFill(theme.Color(theme.ColorNameFocus))
		return
	}
	t.setFill(theme.Color(theme.ColorNameButton))
}

func (t *symptomToken) setFill(c color.Color) {
	t.bg.FillColor = c
	t.bg.Refresh()
}

// pointInside reports whether p lies within the rectangle at origin with
// the given size. Edges count as inside.
func pointInside(p, origin fyne.Position, size fyne.Size) bool {
	return p.X >= origin.X && p.Y >= origin.Y &&
		p.X <= origin.X+size.Width && p.Y <= origin.Y+size.Height
}
