package renderer

import "github.com/pthm-cable/ratio/components"

// OpKind identifies a recorded draw call.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpTexture
	OpText
)

// Op is one recorded draw call.
type Op struct {
	Kind      OpKind
	Color     Color
	Texture   components.TextureID
	Transform Transform
	Text      string
	X, Y      float32
	Size      float32
}

// Recorder is a Canvas that keeps the calls of the current frame.
type Recorder struct {
	Ops []Op
}

// Reset drops recorded calls so the recorder can be reused across frames.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) Clear(c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) DrawTexture(id components.TextureID, t Transform) {
	r.Ops = append(r.Ops, Op{Kind: OpTexture, Texture: id, Transform: t})
}

func (r *Recorder) DrawText(text string, x, y, size float32, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, X: x, Y: y, Size: size, Color: c})
}

// Textures returns the recorded texture draws in order.
func (r *Recorder) Textures() []Op {
	return r.filter(OpTexture)
}

// Texts returns the recorded text draws in order.
func (r *Recorder) Texts() []Op {
	return r.filter(OpText)
}

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
