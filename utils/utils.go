package utils

import (
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/shake2d"
	"github.com/hajimehoshi/ebiten/v2"
)

// Returns the GeoM that applies the given shake output around the
// pivot (typically the center of the screen or canvas): the scale
// factor and rotation are applied around the pivot, and then the
// position offset is added.
func GeoM(output shake2d.Output, pivotX, pivotY float64) ebiten.GeoM {
	var geom ebiten.GeoM
	geom.Translate(-pivotX, -pivotY)
	factor := output.ScaleFactor()
	geom.Scale(factor, factor)
	if output.Rotation != 0 {
		geom.Rotate(ebimath.ToRadians(output.Rotation))
	}
	geom.Translate(pivotX+output.Position.X, pivotY+output.Position.Y)
	return geom
}

// Appends the shake transform to the given GeoM. Equivalent to
// geom.Concat(GeoM(output, pivotX, pivotY)).
func Apply(geom *ebiten.GeoM, output shake2d.Output, pivotX, pivotY float64) {
	geom.Concat(GeoM(output, pivotX, pivotY))
}

// Returns the image options with a GeoM set up to draw a full
// screen or canvas image shaken around its center. Makes the
// common case simpler:
//
//	opts := utils.DrawImageOptions(manager.Output(), canvas)
//	screen.DrawImage(canvas, &opts)
func DrawImageOptions(output shake2d.Output, source *ebiten.Image) ebiten.DrawImageOptions {
	var opts ebiten.DrawImageOptions
	bounds := source.Bounds()
	pivotX := float64(bounds.Min.X) + float64(bounds.Dx())/2.0
	pivotY := float64(bounds.Min.Y) + float64(bounds.Dy())/2.0
	opts.GeoM = GeoM(output, pivotX, pivotY)
	return opts
}

// A [shake2d.Sink] that keeps the GeoM for the latest output.
// Set the pivot before the first update.
type GeoMSink struct {
	PivotX float64
	PivotY float64
	GeoM   ebiten.GeoM
}

// ApplyShake implements [shake2d.Sink].
func (self *GeoMSink) ApplyShake(output shake2d.Output) {
	self.GeoM = GeoM(output, self.PivotX, self.PivotY)
}

// A [shake2d.Sink] that writes each output into a transform: the
// offset as its position, the rotation as its rotation and the
// scale factor as its uniform scale.
//
// The transform is meant to be a child of the camera transform
// (see ebimath.Transform.Connect), so the shake stays local to it.
type TransformSink struct {
	Transform *ebimath.Transform
}

// Creates a sink for a new identity transform.
func NewTransformSink() *TransformSink {
	return &TransformSink{Transform: ebimath.T()}
}

// ApplyShake implements [shake2d.Sink].
func (self *TransformSink) ApplyShake(output shake2d.Output) {
	self.Transform.SetPosition(output.Position)
	self.Transform.SetRotation(ebimath.ToRadians(output.Rotation))
	self.Transform.SetScale(ebimath.V2(output.ScaleFactor()))
}
