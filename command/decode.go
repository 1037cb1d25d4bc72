package command

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gogpu/easel"
)

// DecodeError reports a malformed command argument. Field names the
// offending value in the wire document.
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Field, e.Reason)
}

func decodeErr(field, format string, args ...any) error {
	return &DecodeError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Scalar arguments travel as decimal strings.

func decodeU32(field string, data []byte) (uint32, error) {
	v, err := strconv.ParseUint(string(data), 10, 32)
	if err != nil {
		return 0, decodeErr(field, "not a u32: %q", data)
	}
	return uint32(v), nil
}

func decodeI32(field string, data []byte) (int32, error) {
	v, err := strconv.ParseInt(string(data), 10, 32)
	if err != nil {
		return 0, decodeErr(field, "not an i32: %q", data)
	}
	return int32(v), nil
}

func decodeU8(field string, data []byte) (uint8, error) {
	v, err := strconv.ParseUint(string(data), 10, 8)
	if err != nil {
		return 0, decodeErr(field, "not a u8: %q", data)
	}
	return uint8(v), nil
}

func decodeF32(field string, data []byte) (float32, error) {
	v, err := strconv.ParseFloat(string(data), 32)
	if err != nil {
		return 0, decodeErr(field, "not an f32: %q", data)
	}
	return float32(v), nil
}

// Path wire format: {"steps":[{"path_type":"Move","linear":[x,y]},...]}.
// Rect steps reuse the quad field for (x, y, w, h); arcs carry
// (cx, cy, r, startAngle, sweepAngle).

type wireStep struct {
	PathType *string     `json:"path_type"`
	Linear   *[2]float32 `json:"linear"`
	Quad     *[4]float32 `json:"quad"`
	Cubic    *[6]float32 `json:"cubic"`
	Arc      *[5]float32 `json:"arc"`
}

type wirePath struct {
	Steps []wireStep `json:"steps"`
}

// DecodePath parses a JSON path document into a Path.
func DecodePath(data []byte) (*easel.Path, error) {
	var wp wirePath
	if err := json.Unmarshal(data, &wp); err != nil {
		return nil, decodeErr("path", "invalid json: %v", err)
	}
	if wp.Steps == nil {
		return nil, decodeErr("path.steps", "missing")
	}

	pb := easel.BuildPath()
	for i, step := range wp.Steps {
		field := fmt.Sprintf("path.steps[%d]", i)
		if step.PathType == nil {
			return nil, decodeErr(field+".path_type", "missing")
		}
		switch *step.PathType {
		case "Move":
			if step.Linear == nil {
				return nil, decodeErr(field+".linear", "missing")
			}
			pb.MoveTo(step.Linear[0], step.Linear[1])
		case "Line":
			if step.Linear == nil {
				return nil, decodeErr(field+".linear", "missing")
			}
			pb.LineTo(step.Linear[0], step.Linear[1])
		case "Quad":
			if step.Quad == nil {
				return nil, decodeErr(field+".quad", "missing")
			}
			pb.QuadTo(step.Quad[0], step.Quad[1], step.Quad[2], step.Quad[3])
		case "Rect":
			if step.Quad == nil {
				return nil, decodeErr(field+".quad", "missing")
			}
			pb.RectTo(step.Quad[0], step.Quad[1], step.Quad[2], step.Quad[3])
		case "Cubic":
			if step.Cubic == nil {
				return nil, decodeErr(field+".cubic", "missing")
			}
			pb.CubicTo(step.Cubic[0], step.Cubic[1], step.Cubic[2], step.Cubic[3], step.Cubic[4], step.Cubic[5])
		case "Arc":
			if step.Arc == nil {
				return nil, decodeErr(field+".arc", "missing")
			}
			pb.ArcTo(step.Arc[0], step.Arc[1], step.Arc[2], step.Arc[3], step.Arc[4])
		case "Close":
			pb.Close()
		default:
			return nil, decodeErr(field+".path_type", "unknown step type %q", *step.PathType)
		}
	}
	return pb.Build(), nil
}

// Paint wire format, keyed by src_type.

type wireColor struct {
	R *uint8 `json:"r"`
	G *uint8 `json:"g"`
	B *uint8 `json:"b"`
	A *uint8 `json:"a"`
}

func (c *wireColor) toColor(field string) (easel.Color, error) {
	if c.R == nil || c.G == nil || c.B == nil || c.A == nil {
		return easel.Color{}, decodeErr(field, "missing channel")
	}
	return easel.NewColor(*c.A, *c.R, *c.G, *c.B), nil
}

type wireStop struct {
	Position *float32   `json:"position"`
	Color    *wireColor `json:"color"`
}

type wireGradient struct {
	Stops []wireStop `json:"stops"`
}

type wireSource struct {
	SrcType  *string       `json:"src_type"`
	Color    *wireColor    `json:"color"`
	Start    *[2]float32   `json:"start"`
	End      *[2]float32   `json:"end"`
	Center   *[2]float32   `json:"center"`
	Radius   *float32      `json:"radius"`
	Center2  *[2]float32   `json:"center2"`
	Radius2  *float32      `json:"radius2"`
	Spread   *string       `json:"spread"`
	Gradient *wireGradient `json:"gradient"`
}

func (s *wireSource) stops(field string) ([]easel.GradientStop, error) {
	if s.Gradient == nil {
		return nil, decodeErr(field+".gradient", "missing")
	}
	if len(s.Gradient.Stops) == 0 {
		return nil, decodeErr(field+".gradient.stops", "empty")
	}
	out := make([]easel.GradientStop, len(s.Gradient.Stops))
	for i, ws := range s.Gradient.Stops {
		sf := fmt.Sprintf("%s.gradient.stops[%d]", field, i)
		if ws.Position == nil {
			return nil, decodeErr(sf+".position", "missing")
		}
		if ws.Color == nil {
			return nil, decodeErr(sf+".color", "missing")
		}
		c, err := ws.Color.toColor(sf + ".color")
		if err != nil {
			return nil, err
		}
		out[i] = easel.GradientStop{Position: *ws.Position, Color: c}
	}
	return out, nil
}

func (s *wireSource) spreadMode(field string) (easel.Spread, error) {
	if s.Spread == nil {
		return 0, decodeErr(field+".spread", "missing")
	}
	sp, ok := easel.ParseSpread(*s.Spread)
	if !ok {
		return 0, decodeErr(field+".spread", "unknown spread %q", *s.Spread)
	}
	return sp, nil
}

func point(v *[2]float32) easel.Point {
	return easel.Pt(v[0], v[1])
}

// DecodePaint parses a JSON source document into a Paint.
func DecodePaint(data []byte) (easel.Paint, error) {
	var ws wireSource
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, decodeErr("paint", "invalid json: %v", err)
	}
	if ws.SrcType == nil {
		return nil, decodeErr("paint.src_type", "missing")
	}

	switch *ws.SrcType {
	case "Solid":
		if ws.Color == nil {
			return nil, decodeErr("paint.color", "missing")
		}
		c, err := ws.Color.toColor("paint.color")
		if err != nil {
			return nil, err
		}
		return easel.SolidPaint{Color: c}, nil

	case "LinearGradient":
		stops, err := ws.stops("paint")
		if err != nil {
			return nil, err
		}
		spread, err := ws.spreadMode("paint")
		if err != nil {
			return nil, err
		}
		if ws.Start == nil {
			return nil, decodeErr("paint.start", "missing")
		}
		if ws.End == nil {
			return nil, decodeErr("paint.end", "missing")
		}
		return easel.LinearGradientPaint{
			Stops:  stops,
			Start:  point(ws.Start),
			End:    point(ws.End),
			Spread: spread,
		}, nil

	case "RadialGradient":
		stops, err := ws.stops("paint")
		if err != nil {
			return nil, err
		}
		spread, err := ws.spreadMode("paint")
		if err != nil {
			return nil, err
		}
		if ws.Center == nil {
			return nil, decodeErr("paint.center", "missing")
		}
		if ws.Radius == nil {
			return nil, decodeErr("paint.radius", "missing")
		}
		return easel.RadialGradientPaint{
			Stops:  stops,
			Center: point(ws.Center),
			Radius: *ws.Radius,
			Spread: spread,
		}, nil

	case "TwoCircleRadialGradient":
		stops, err := ws.stops("paint")
		if err != nil {
			return nil, err
		}
		spread, err := ws.spreadMode("paint")
		if err != nil {
			return nil, err
		}
		if ws.Center == nil {
			return nil, decodeErr("paint.center", "missing")
		}
		if ws.Radius == nil {
			return nil, decodeErr("paint.radius", "missing")
		}
		if ws.Center2 == nil {
			return nil, decodeErr("paint.center2", "missing")
		}
		if ws.Radius2 == nil {
			return nil, decodeErr("paint.radius2", "missing")
		}
		return easel.TwoCircleRadialGradientPaint{
			Stops:   stops,
			Center1: point(ws.Center),
			Radius1: *ws.Radius,
			Center2: point(ws.Center2),
			Radius2: *ws.Radius2,
			Spread:  spread,
		}, nil

	default:
		return nil, decodeErr("paint.src_type", "unknown source type %q", *ws.SrcType)
	}
}

// Stroke style wire format.

type wireStroke struct {
	Width      *float32  `json:"width"`
	Cap        *string   `json:"cap"`
	Join       *string   `json:"join"`
	MiterLimit *float32  `json:"miter_limit"`
	DashArray  []float32 `json:"dash_array"`
	DashOffset *float32  `json:"dash_offset"`
}

// DecodeStrokeStyle parses a JSON stroke document. A negative width is
// rejected; zero width decodes but strokes nothing.
func DecodeStrokeStyle(data []byte) (easel.StrokeStyle, error) {
	var wst wireStroke
	if err := json.Unmarshal(data, &wst); err != nil {
		return easel.StrokeStyle{}, decodeErr("stroke", "invalid json: %v", err)
	}
	if wst.Width == nil {
		return easel.StrokeStyle{}, decodeErr("stroke.width", "missing")
	}
	if *wst.Width < 0 {
		return easel.StrokeStyle{}, decodeErr("stroke.width", "negative width %v", *wst.Width)
	}
	if wst.Cap == nil {
		return easel.StrokeStyle{}, decodeErr("stroke.cap", "missing")
	}
	lineCap, ok := easel.ParseLineCap(*wst.Cap)
	if !ok {
		return easel.StrokeStyle{}, decodeErr("stroke.cap", "unknown cap %q", *wst.Cap)
	}
	if wst.Join == nil {
		return easel.StrokeStyle{}, decodeErr("stroke.join", "missing")
	}
	join, ok := easel.ParseLineJoin(*wst.Join)
	if !ok {
		return easel.StrokeStyle{}, decodeErr("stroke.join", "unknown join %q", *wst.Join)
	}
	if wst.MiterLimit == nil {
		return easel.StrokeStyle{}, decodeErr("stroke.miter_limit", "missing")
	}
	if wst.DashArray == nil {
		return easel.StrokeStyle{}, decodeErr("stroke.dash_array", "missing")
	}
	for i, d := range wst.DashArray {
		if d < 0 {
			return easel.StrokeStyle{}, decodeErr(fmt.Sprintf("stroke.dash_array[%d]", i), "negative dash %v", d)
		}
	}
	if wst.DashOffset == nil {
		return easel.StrokeStyle{}, decodeErr("stroke.dash_offset", "missing")
	}
	return easel.StrokeStyle{
		Width:      *wst.Width,
		Cap:        lineCap,
		Join:       join,
		MiterLimit: *wst.MiterLimit,
		DashArray:  wst.DashArray,
		DashOffset: *wst.DashOffset,
	}, nil
}

// DecodeBlendMode parses a blend mode carried as a bare JSON string, e.g.
// "SrcOver".
func DecodeBlendMode(data []byte) (easel.BlendMode, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return 0, decodeErr("blend", "invalid json: %v", err)
	}
	mode, ok := easel.ParseBlendMode(name)
	if !ok {
		return 0, decodeErr("blend", "unknown blend mode %q", name)
	}
	return mode, nil
}
