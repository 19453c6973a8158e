// Package viewer runs the curve editor in an ebiten window.
package viewer

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/bezpad/pkg/bezier"
	"github.com/gucio321/bezpad/pkg/editor"
	"github.com/gucio321/bezpad/pkg/render"
)

var _ ebiten.Game = &Viewer{}

// TPS is how many times per second Update (and so a render tick) runs.
const TPS = int(time.Second / render.TickPeriod)

// Viewer polls the mouse, feeds the editor and renders one tick
// into an offscreen canvas on every Update. Draw only shows that canvas.
type Viewer struct {
	width, height int
	session       *editor.Session
	controller    *editor.Controller
	loop          *render.Loop
	canvas        *canvas
	input         inputState
}

// NewViewer creates a viewer with a w x h canvas.
// It must be called before ebiten.RunGame.
func NewViewer(w, h int, weighting bezier.Weighting) *Viewer {
	result := &Viewer{
		width:   w,
		height:  h,
		session: editor.NewSession(),
		canvas:  newCanvas(w, h),
	}

	result.controller = editor.NewController(result.session, result.canvas)
	result.loop = render.NewLoop(result.session, weighting)

	glg.Debugf("Viewer %dx%d, %v weighting, %d TPS", w, h, weighting, TPS)

	return result
}

// Session returns the edited session.
func (v *Viewer) Session() *editor.Session {
	return v.session
}

func (v *Viewer) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	cur := inputState{
		x:     mouseX,
		y:     mouseY,
		left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}

	for _, e := range events(v.input, cur) {
		v.controller.Handle(e)
	}

	v.input = cur

	v.loop.Tick(v.canvas)

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.canvas.img, &ebiten.DrawImageOptions{})
}

func (v *Viewer) Layout(_, _ int) (screenWidth, screenHeight int) {
	return v.width, v.height
}
