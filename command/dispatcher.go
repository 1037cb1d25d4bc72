package command

import (
	"errors"
	"strconv"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/imageio"
	"github.com/gogpu/easel/surface"
)

// Result is the outcome of one dispatched operation. Data carries the
// payload of query operations (pixel bytes, dimension strings, encoded
// PNG); Err holds the underlying error for non-OK statuses.
type Result struct {
	Status Status
	Data   []byte
	Err    error
}

func ok() Result                { return Result{Status: StatusOK} }
func okData(data []byte) Result { return Result{Status: StatusOK, Data: data} }

func fail(err error) Result {
	status := StatusInvalidArgument
	switch {
	case errors.Is(err, surface.ErrNotFound):
		status = StatusNotFound
	case errors.Is(err, surface.ErrAlreadyExists):
		status = StatusAlreadyExists
	}
	easel.Logger().Debug("command failed", "status", status.String(), "error", err)
	return Result{Status: status, Err: err}
}

// Dispatcher routes named operations to the surface registry.
//
// Arguments are positional byte strings: scalars as decimal text, paths,
// paints, stroke styles and blend modes as JSON, images as encoded image
// bytes. Every argument is decoded before any surface state is touched,
// so a failed decode leaves the target surface exactly as it was.
type Dispatcher struct {
	reg *surface.Registry
}

// NewDispatcher creates a dispatcher over the registry.
func NewDispatcher(reg *surface.Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

// Registry returns the underlying surface registry.
func (d *Dispatcher) Registry() *surface.Registry { return d.reg }

// Dispatch executes one operation. Unknown operation names and argument
// arity mismatches report StatusInvalidArgument.
func (d *Dispatcher) Dispatch(op string, args ...[]byte) Result {
	switch op {
	case "create_surface":
		return d.createSurface(args)
	case "destroy_surface":
		return d.destroySurface(args)
	case "get_pixels":
		return d.getPixels(args)
	case "get_width":
		return d.getWidth(args)
	case "get_height":
		return d.getHeight(args)
	case "fill_rect":
		return d.fillRect(args)
	case "clear":
		return d.clear(args)
	case "fill":
		return d.fill(args)
	case "stroke":
		return d.stroke(args)
	case "set_transform":
		return d.setTransform(args)
	case "draw_image_at":
		return d.drawImageAt(args)
	case "draw_image_with_size_at":
		return d.drawImageWithSizeAt(args)
	case "push_clip_rect":
		return d.pushClipRect(args)
	case "push_clip":
		return d.pushClip(args)
	case "pop_clip":
		return d.popClip(args)
	case "push_layer":
		return d.pushLayer(args)
	case "push_layer_with_blend":
		return d.pushLayerWithBlend(args)
	case "pop_layer":
		return d.popLayer(args)
	case "encode_png":
		return d.encodePNG(args)
	case "write_png":
		return d.writePNG(args)
	default:
		return fail(decodeErr("op", "unknown operation %q", op))
	}
}

func arity(args [][]byte, n int) error {
	if len(args) != n {
		return decodeErr("args", "want %d arguments, got %d", n, len(args))
	}
	return nil
}

func surfaceID(args [][]byte) (uint32, error) {
	return decodeU32("id", args[0])
}

func (d *Dispatcher) createSurface(args [][]byte) Result {
	if err := arity(args, 3); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	width, err := decodeI32("width", args[1])
	if err != nil {
		return fail(err)
	}
	height, err := decodeI32("height", args[2])
	if err != nil {
		return fail(err)
	}
	if err := d.reg.Create(id, int(width), int(height)); err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) destroySurface(args [][]byte) Result {
	if err := arity(args, 1); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	if err := d.reg.Destroy(id); err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) getPixels(args [][]byte) Result {
	if err := arity(args, 1); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	pm, err := d.reg.Snapshot(id)
	if err != nil {
		return fail(err)
	}
	return okData(pm.Bytes())
}

func (d *Dispatcher) getWidth(args [][]byte) Result {
	if err := arity(args, 1); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	w, _, err := d.reg.Size(id)
	if err != nil {
		return fail(err)
	}
	return okData([]byte(strconv.Itoa(w)))
}

func (d *Dispatcher) getHeight(args [][]byte) Result {
	if err := arity(args, 1); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	_, h, err := d.reg.Size(id)
	if err != nil {
		return fail(err)
	}
	return okData([]byte(strconv.Itoa(h)))
}

func (d *Dispatcher) fillRect(args [][]byte) Result {
	if err := arity(args, 6); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	var coords [4]float32
	for i, name := range []string{"x", "y", "w", "h"} {
		coords[i], err = decodeF32(name, args[1+i])
		if err != nil {
			return fail(err)
		}
	}
	paint, err := DecodePaint(args[5])
	if err != nil {
		return fail(err)
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.FillRect(coords[0], coords[1], coords[2], coords[3], paint)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) clear(args [][]byte) Result {
	if err := arity(args, 5); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	var ch [4]uint8
	for i, name := range []string{"a", "r", "g", "b"} {
		ch[i], err = decodeU8(name, args[1+i])
		if err != nil {
			return fail(err)
		}
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.Clear(easel.NewColor(ch[0], ch[1], ch[2], ch[3]))
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) fill(args [][]byte) Result {
	if err := arity(args, 3); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	path, err := DecodePath(args[1])
	if err != nil {
		return fail(err)
	}
	paint, err := DecodePaint(args[2])
	if err != nil {
		return fail(err)
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.Fill(path, paint)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) stroke(args [][]byte) Result {
	if err := arity(args, 4); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	path, err := DecodePath(args[1])
	if err != nil {
		return fail(err)
	}
	paint, err := DecodePaint(args[2])
	if err != nil {
		return fail(err)
	}
	style, err := DecodeStrokeStyle(args[3])
	if err != nil {
		return fail(err)
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.Stroke(path, paint, style)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

// setTransform argument layout after the id: a mode discriminant, then six
// scalars. Mode 0 reads all six as column-major coefficients, mode 1 as
// row-major, mode 2 uses the first two as (sx, sy), mode 3 as (tx, ty),
// and mode 4 reads a unit flag (0 for degrees, anything else radians)
// followed by the angle.
func (d *Dispatcher) setTransform(args [][]byte) Result {
	if err := arity(args, 8); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	mode, err := decodeU8("mode", args[1])
	if err != nil {
		return fail(err)
	}
	var m [6]float32
	for i := range m {
		m[i], err = decodeF32("m"+strconv.Itoa(i), args[2+i])
		if err != nil {
			return fail(err)
		}
	}

	var tr easel.Matrix
	switch mode {
	case 0:
		tr = easel.ColumnMajor(m[0], m[1], m[2], m[3], m[4], m[5])
	case 1:
		// Row-major coefficient order lists the 3x2 matrix row by row:
		// (m11, m12), (m21, m22), (m31, m32).
		tr = easel.RowMajor(m[0], m[2], m[4], m[1], m[3], m[5])
	case 2:
		tr = easel.ScaleMatrix(m[0], m[1])
	case 3:
		tr = easel.TranslationMatrix(m[0], m[1])
	case 4:
		if m[0] == 0 {
			tr = easel.RotationMatrixDegrees(m[1])
		} else {
			tr = easel.RotationMatrix(m[1])
		}
	default:
		return fail(decodeErr("mode", "unknown transform mode %d", mode))
	}

	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.SetTransform(tr)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) drawImageAt(args [][]byte) Result {
	if err := arity(args, 4); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	img, err := imageio.Decode(args[1])
	if err != nil {
		return fail(decodeErr("image", "%v", err))
	}
	x, err := decodeF32("x", args[2])
	if err != nil {
		return fail(err)
	}
	y, err := decodeF32("y", args[3])
	if err != nil {
		return fail(err)
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.DrawImageAt(x, y, img)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) drawImageWithSizeAt(args [][]byte) Result {
	if err := arity(args, 6); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	img, err := imageio.Decode(args[1])
	if err != nil {
		return fail(decodeErr("image", "%v", err))
	}
	var coords [4]float32
	for i, name := range []string{"x", "y", "w", "h"} {
		coords[i], err = decodeF32(name, args[2+i])
		if err != nil {
			return fail(err)
		}
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.DrawImageWithSizeAt(coords[0], coords[1], coords[2], coords[3], img)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) pushClipRect(args [][]byte) Result {
	if err := arity(args, 5); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	var c [4]int32
	for i, name := range []string{"x1", "y1", "x2", "y2"} {
		c[i], err = decodeI32(name, args[1+i])
		if err != nil {
			return fail(err)
		}
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.PushClipRect(int(c[0]), int(c[1]), int(c[2]), int(c[3]))
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) pushClip(args [][]byte) Result {
	if err := arity(args, 2); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	path, err := DecodePath(args[1])
	if err != nil {
		return fail(err)
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.PushClip(path)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) popClip(args [][]byte) Result {
	if err := arity(args, 1); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		return s.PopClip()
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) pushLayer(args [][]byte) Result {
	if err := arity(args, 2); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	opacity, err := decodeF32("opacity", args[1])
	if err != nil {
		return fail(err)
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.PushLayer(opacity)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) pushLayerWithBlend(args [][]byte) Result {
	if err := arity(args, 3); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	opacity, err := decodeF32("opacity", args[1])
	if err != nil {
		return fail(err)
	}
	mode, err := DecodeBlendMode(args[2])
	if err != nil {
		return fail(err)
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		s.PushLayerWithBlend(opacity, mode)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) popLayer(args [][]byte) Result {
	if err := arity(args, 1); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	err = d.reg.Update(id, func(s *surface.Surface) error {
		return s.PopLayer()
	})
	if err != nil {
		return fail(err)
	}
	return ok()
}

func (d *Dispatcher) encodePNG(args [][]byte) Result {
	if err := arity(args, 1); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	pm, err := d.reg.Snapshot(id)
	if err != nil {
		return fail(err)
	}
	data, err := imageio.EncodePNG(pm)
	if err != nil {
		return fail(err)
	}
	return okData(data)
}

func (d *Dispatcher) writePNG(args [][]byte) Result {
	if err := arity(args, 2); err != nil {
		return fail(err)
	}
	id, err := surfaceID(args)
	if err != nil {
		return fail(err)
	}
	path := string(args[1])
	pm, err := d.reg.Snapshot(id)
	if err != nil {
		return fail(err)
	}
	if err := imageio.WritePNG(pm, path); err != nil {
		return fail(err)
	}
	return ok()
}
