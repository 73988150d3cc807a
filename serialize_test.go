package segment

import (
	"encoding/json"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestQuadraticJSON(t *testing.T) {
	q := Quadratic{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	data, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"Quadratic","startX":0,"startY":0,"controlX":1,"controlY":2,"endX":2,"endY":0}`
	diff(t, want, string(data))

	var got Quadratic
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	diff(t, q, got)
}

func TestSerializeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(15, 16))
	for range 100 {
		q := randomQuadratic(r)
		got, err := DeserializeQuadratic(q.Serialize())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, q, got)

		data, err := json.Marshal(q)
		if err != nil {
			t.Fatal(err)
		}
		seg, err := Deserialize(data)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, Segment(q), seg)
	}
}

func TestDeserializeKinds(t *testing.T) {
	segs := []Segment{
		Line{Pt(1, 2), Pt(3, 4)},
		Quadratic{Pt(0, 0), Pt(1, 2), Pt(2, 0)},
		Cubic{Pt(0.5, 0), Pt(1, 3), Pt(4, -1), Pt(5, 2.25)},
	}
	data, err := json.Marshal(segs)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DeserializeSegments(data)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, segs, got)

	for _, seg := range segs {
		data, err := json.Marshal(seg)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Deserialize(data)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, seg.Kind(), got.Kind())
		diff(t, seg, got)
	}
}

func TestDeserializeErrors(t *testing.T) {
	if _, err := Deserialize([]byte(`{"type":"Arc","startX":0}`)); !errors.Is(err, ErrUnknownType) {
		t.Errorf("got error %v, want %v", err, ErrUnknownType)
	}
	if _, err := Deserialize([]byte(`{"type":`)); err == nil {
		t.Error("malformed input was accepted")
	}
	if _, err := DeserializeSegments([]byte(`[{"type":"Line"},{"type":"Spline"}]`)); !errors.Is(err, ErrUnknownType) {
		t.Errorf("got error %v, want %v", err, ErrUnknownType)
	}

	var q Quadratic
	if err := json.Unmarshal([]byte(`{"type":"Line","startX":0,"startY":0,"endX":1,"endY":1}`), &q); !errors.Is(err, ErrUnknownType) {
		t.Errorf("got error %v, want %v", err, ErrUnknownType)
	}

	s := Quadratic{Pt(0, 0), Pt(1, 2), Pt(2, 0)}.Serialize()
	s.ControlY = math.Inf(1)
	if _, err := DeserializeQuadratic(s); !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, want %v", err, ErrNonFinite)
	}
	c := Cubic{}.Serialize()
	c.EndX = math.NaN()
	if _, err := DeserializeCubic(c); !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, want %v", err, ErrNonFinite)
	}
	if _, err := DeserializeLine(SerializedLine{Type: "Quadratic"}); !errors.Is(err, ErrUnknownType) {
		t.Errorf("got error %v, want %v", err, ErrUnknownType)
	}
}
