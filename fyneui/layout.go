package fyneui

import (
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"dialogkit/formlayout"
)

// layoutWidget is a toolkit widget backed by a Fyne canvas object.
type layoutWidget interface {
	LayoutData() *formlayout.Data
	object() fyne.CanvasObject
	setBounds(r formlayout.Rect)
}

// formLayout is a fyne.Layout that places objects with formlayout
// attachments. Objects that are not registered keep their position.
type formLayout struct {
	mutex   sync.Mutex
	widgets map[fyne.CanvasObject]layoutWidget
}

var _ fyne.Layout = (*formLayout)(nil)

func newFormLayout() *formLayout {
	return &formLayout{widgets: make(map[fyne.CanvasObject]layoutWidget)}
}

func newContainer(l *formLayout) *fyne.Container {
	return container.New(l)
}

func (l *formLayout) register(w layoutWidget) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.widgets[w.object()] = w
}

// Layout implements fyne.Layout. Fyne calls it on every resize and has no
// way to receive an error; Window.Layout solves the same attachments and
// reports a failure there, leaving the objects where they were.
func (l *formLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	_ = l.apply(objects, size)
}

// MinSize implements fyne.Layout. Dialog windows have a fixed size, so this
// only has to keep every child at least at its own minimum.
func (l *formLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := fyne.NewSize(0, 0)
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		size = size.Max(o.MinSize())
	}
	return size
}

func (l *formLayout) apply(objects []fyne.CanvasObject, size fyne.Size) error {
	l.mutex.Lock()
	var children []formlayout.Child
	var widgets []layoutWidget
	for _, o := range objects {
		w, ok := l.widgets[o]
		if !ok {
			continue
		}
		pref := o.MinSize()
		children = append(children, formlayout.Child{
			Control:    w,
			Data:       w.LayoutData(),
			PrefWidth:  ceil(pref.Width),
			PrefHeight: ceil(pref.Height),
		})
		widgets = append(widgets, w)
	}
	l.mutex.Unlock()

	rects, err := formlayout.Solve(int(size.Width), int(size.Height), children)
	if err != nil {
		return err
	}
	for i, r := range rects {
		o := widgets[i].object()
		o.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
		o.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
		widgets[i].setBounds(r)
	}
	return nil
}

func ceil(v float32) int {
	return int(math.Ceil(float64(v)))
}
