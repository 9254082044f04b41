package hilbert

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

const (
	// MaxCodecLevel is the deepest curve that can be carried in a CurveV1
	// encoding. The flat point array holds 2*4^level integers, which must not
	// exceed maxArrayElements.
	MaxCodecLevel = 14

	// maxArrayElements is the largest array length the CBOR decoder accepts.
	maxArrayElements = 1<<31 - 1
)

// curveV1 is the CBOR record of a complete curve sequence.
//
// Points is flattened as [x0, y0, x1, y1, ...] in curve order.
type curveV1 struct {
	Level  uint8    `cbor:"1,keyasint"`
	Points []uint32 `cbor:"2,keyasint"`
}

// CurveCodec encodes and decodes curve sequences for consumers that draw or
// store them. Encoding is deterministic, so equal sequences produce equal
// bytes.
type CurveCodec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCurveCodec() (CurveCodec, error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CurveCodec{}, err
	}
	decMode, err := cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: maxArrayElements,
	}.DecMode()
	if err != nil {
		return CurveCodec{}, err
	}
	return CurveCodec{encMode: encMode, decMode: decMode}, nil
}

// EncodeCurveV1 encodes the full sequence of the level curve. points must be
// exactly what Enumerate(level) returns in length and bounds; the order is
// not re-derived.
func (cc CurveCodec) EncodeCurveV1(level int, points []Coord) ([]byte, error) {
	if level < 0 || level > MaxCodecLevel {
		return nil, fmt.Errorf("%w: level %d outside [0, %d] for encoding", ErrInvalidInput, level, MaxCodecLevel)
	}
	if uint64(len(points)) != Size(level) {
		return nil, fmt.Errorf(
			"%w: %d points, level %d requires %d", ErrInvalidInput, len(points), level, Size(level))
	}
	c := Curve{level: level}
	rec := curveV1{Level: uint8(level), Points: make([]uint32, 0, 2*len(points))}
	for i, p := range points {
		if !c.Contains(p) {
			return nil, fmt.Errorf("%w: point %d %s outside the level %d grid", ErrInvalidInput, i, p, level)
		}
		rec.Points = append(rec.Points, p.X, p.Y)
	}
	return cc.encMode.Marshal(&rec)
}

// DecodeCurveV1 decodes a sequence produced by EncodeCurveV1, returning its
// level and points. ErrBadCurveEncoding is returned for malformed data, a
// level out of range, a point count that does not match the level or any
// point outside the grid.
func (cc CurveCodec) DecodeCurveV1(data []byte) (int, []Coord, error) {
	var rec curveV1
	if err := cc.decMode.Unmarshal(data, &rec); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrBadCurveEncoding, err)
	}
	level := int(rec.Level)
	if level > MaxCodecLevel {
		return 0, nil, fmt.Errorf("%w: level %d exceeds %d", ErrBadCurveEncoding, level, MaxCodecLevel)
	}
	if uint64(len(rec.Points)) != 2*Size(level) {
		return 0, nil, fmt.Errorf(
			"%w: %d coordinates, level %d requires %d", ErrBadCurveEncoding, len(rec.Points), level, 2*Size(level))
	}

	c := Curve{level: level}
	points := make([]Coord, 0, len(rec.Points)/2)
	for i := 0; i < len(rec.Points); i += 2 {
		p := Coord{X: rec.Points[i], Y: rec.Points[i+1]}
		if !c.Contains(p) {
			return 0, nil, fmt.Errorf("%w: point %d %s outside the level %d grid", ErrBadCurveEncoding, i/2, p, level)
		}
		points = append(points, p)
	}
	return level, points, nil
}
