package index

import (
	"encoding/binary"
	"errors"
	"math"
	"unique"
)

// Compact binary codec for Values, used by the on-disk index cache.
// Varint framing keeps small ints and short strings cheap; the format is
// part of the cache file contract and must remain stable.

// AppendValue appends the binary encoding of v to buf.
func AppendValue(buf []byte, v Value) ([]byte, error) {
	kind := v.Kind
	if kind == KindInvalid {
		kind = KindNull
	}
	buf = append(buf, byte(kind))

	switch kind {
	case KindNull:
		// No payload
	case KindInt:
		buf = binary.AppendVarint(buf, v.I64)
	case KindFloat:
		bits := math.Float64bits(v.F64)
		buf = binary.LittleEndian.AppendUint64(buf, bits)
	case KindString:
		s := v.s.Value()
		buf = binary.AppendUvarint(buf, uint64(len(s)))
		buf = append(buf, s...)
	case KindBool:
		if v.B {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case KindArray:
		buf = binary.AppendUvarint(buf, uint64(len(v.A)))
		for _, item := range v.A {
			var err error
			buf, err = AppendValue(buf, item)
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, errors.New("index: unknown value kind")
	}
	return buf, nil
}

// ParseValue decodes one Value from data, returning the remaining bytes.
func ParseValue(data []byte) (Value, []byte, error) {
	if len(data) == 0 {
		return Value{}, nil, errors.New("index: short buffer for value kind")
	}
	kind := Kind(data[0])
	data = data[1:]

	var v Value
	v.Kind = kind

	switch kind {
	case KindNull:
		// No payload
	case KindInt:
		i, n := binary.Varint(data)
		if n <= 0 {
			return v, nil, errors.New("index: invalid int value")
		}
		v.I64 = i
		data = data[n:]
	case KindFloat:
		if len(data) < 8 {
			return v, nil, errors.New("index: short buffer for float")
		}
		bits := binary.LittleEndian.Uint64(data)
		v.F64 = math.Float64frombits(bits)
		data = data[8:]
	case KindString:
		sLen, n := binary.Uvarint(data)
		if n <= 0 {
			return v, nil, errors.New("index: invalid string length")
		}
		data = data[n:]
		if uint64(len(data)) < sLen {
			return v, nil, errors.New("index: short buffer for string")
		}
		v.s = unique.Make(string(data[:sLen]))
		data = data[sLen:]
	case KindBool:
		if len(data) == 0 {
			return v, nil, errors.New("index: short buffer for bool")
		}
		v.B = data[0] != 0
		data = data[1:]
	case KindArray:
		aLen, n := binary.Uvarint(data)
		if n <= 0 {
			return v, nil, errors.New("index: invalid array length")
		}
		data = data[n:]
		v.A = make([]Value, aLen)
		for i := uint64(0); i < aLen; i++ {
			item, remaining, err := ParseValue(data)
			if err != nil {
				return v, nil, err
			}
			v.A[i] = item
			data = remaining
		}
	default:
		return v, nil, errors.New("index: unknown value kind")
	}
	return v, data, nil
}
