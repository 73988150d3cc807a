package segment

import (
	"encoding/json"
	"fmt"
)

// SerializedLine is the flat record form of a [Line].
type SerializedLine struct {
	Type   string  `json:"type"`
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
	EndX   float64 `json:"endX"`
	EndY   float64 `json:"endY"`
}

// SerializedQuadratic is the flat record form of a [Quadratic].
type SerializedQuadratic struct {
	Type     string  `json:"type"`
	StartX   float64 `json:"startX"`
	StartY   float64 `json:"startY"`
	ControlX float64 `json:"controlX"`
	ControlY float64 `json:"controlY"`
	EndX     float64 `json:"endX"`
	EndY     float64 `json:"endY"`
}

// SerializedCubic is the flat record form of a [Cubic].
type SerializedCubic struct {
	Type      string  `json:"type"`
	StartX    float64 `json:"startX"`
	StartY    float64 `json:"startY"`
	Control1X float64 `json:"control1X"`
	Control1Y float64 `json:"control1Y"`
	Control2X float64 `json:"control2X"`
	Control2Y float64 `json:"control2Y"`
	EndX      float64 `json:"endX"`
	EndY      float64 `json:"endY"`
}

func (l Line) Serialize() SerializedLine {
	return SerializedLine{
		Type:   LineKind.String(),
		StartX: l.P0.X,
		StartY: l.P0.Y,
		EndX:   l.P1.X,
		EndY:   l.P1.Y,
	}
}

func (q Quadratic) Serialize() SerializedQuadratic {
	return SerializedQuadratic{
		Type:     QuadraticKind.String(),
		StartX:   q.P0.X,
		StartY:   q.P0.Y,
		ControlX: q.P1.X,
		ControlY: q.P1.Y,
		EndX:     q.P2.X,
		EndY:     q.P2.Y,
	}
}

func (c Cubic) Serialize() SerializedCubic {
	return SerializedCubic{
		Type:      CubicKind.String(),
		StartX:    c.P0.X,
		StartY:    c.P0.Y,
		Control1X: c.P1.X,
		Control1Y: c.P1.Y,
		Control2X: c.P2.X,
		Control2Y: c.P2.Y,
		EndX:      c.P3.X,
		EndY:      c.P3.Y,
	}
}

func checkType(got string, want Kind) error {
	if got != want.String() {
		return fmt.Errorf("deserializing %s: got type %q: %w", want, got, ErrUnknownType)
	}
	return nil
}

// DeserializeLine reconstructs the line described by s.
func DeserializeLine(s SerializedLine) (Line, error) {
	if err := checkType(s.Type, LineKind); err != nil {
		return Line{}, err
	}
	return NewLine(Pt(s.StartX, s.StartY), Pt(s.EndX, s.EndY))
}

// DeserializeQuadratic reconstructs the quadratic described by s.
func DeserializeQuadratic(s SerializedQuadratic) (Quadratic, error) {
	if err := checkType(s.Type, QuadraticKind); err != nil {
		return Quadratic{}, err
	}
	return NewQuadratic(Pt(s.StartX, s.StartY), Pt(s.ControlX, s.ControlY), Pt(s.EndX, s.EndY))
}

// DeserializeCubic reconstructs the cubic described by s.
func DeserializeCubic(s SerializedCubic) (Cubic, error) {
	if err := checkType(s.Type, CubicKind); err != nil {
		return Cubic{}, err
	}
	return NewCubic(
		Pt(s.StartX, s.StartY),
		Pt(s.Control1X, s.Control1Y),
		Pt(s.Control2X, s.Control2Y),
		Pt(s.EndX, s.EndY),
	)
}

func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Serialize())
}

func (q Quadratic) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Serialize())
}

func (c Cubic) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Serialize())
}

func (l *Line) UnmarshalJSON(data []byte) error {
	var s SerializedLine
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := DeserializeLine(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (q *Quadratic) UnmarshalJSON(data []byte) error {
	var s SerializedQuadratic
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := DeserializeQuadratic(s)
	if err != nil {
		return err
	}
	*q = v
	return nil
}

func (c *Cubic) UnmarshalJSON(data []byte) error {
	var s SerializedCubic
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := DeserializeCubic(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Deserialize decodes a JSON segment record, dispatching on its type
// discriminator.
func Deserialize(data []byte) (Segment, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case LineKind.String():
		var l Line
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, err
		}
		return l, nil
	case QuadraticKind.String():
		var q Quadratic
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, err
		}
		return q, nil
	case CubicKind.String():
		var c Cubic
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, err
		}
		return c, nil
	default:
		Logger().Debug("unknown segment type", "type", head.Type)
		return nil, fmt.Errorf("deserializing segment: type %q: %w", head.Type, ErrUnknownType)
	}
}

// DeserializeSegments decodes a JSON array of segment records.
func DeserializeSegments(data []byte) ([]Segment, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]Segment, 0, len(raw))
	for i, r := range raw {
		seg, err := Deserialize(r)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		out = append(out, seg)
	}
	return out, nil
}
