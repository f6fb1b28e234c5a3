package cache

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dakoda-project/dakoda-go/index"
	"github.com/dakoda-project/dakoda-go/internal/hash"
)

// Cache file layout:
//
//	magic "DKIX" | version byte | compression byte |
//	framed payload (see compression.go) | CRC32-C uint32 LE
//
// The checksum covers the framed payload as stored, so corruption is
// detected before any decompression runs. The payload itself is:
//
//	uvarint colCount | uvarint rowCount |
//	per column: uvarint nameLen | name | rowCount encoded Values
var magic = []byte("DKIX")

// formatVersion is bumped on any incompatible layout change; readers
// reject versions they do not know.
const formatVersion = 1

// ErrBadFormat is returned when a cache file cannot be decoded: wrong
// magic, unknown version, checksum mismatch or truncated payload. Callers
// treat it as a cache miss and rebuild.
var ErrBadFormat = errors.New("cache: bad file format")

// EncodeTable serializes a table into the cache file format.
func EncodeTable(t *index.Table, compression CompressionType) ([]byte, error) {
	names := t.Columns()
	rows := t.Len()

	payload := binary.AppendUvarint(nil, uint64(len(names)))
	payload = binary.AppendUvarint(payload, uint64(rows))
	for _, name := range names {
		payload = binary.AppendUvarint(payload, uint64(len(name)))
		payload = append(payload, name...)

		col, _ := t.Column(name)
		for _, v := range col {
			var err error
			payload, err = index.AppendValue(payload, v)
			if err != nil {
				return nil, err
			}
		}
	}

	block, err := compressBlock(payload, compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(magic)+2+len(block)+4)
	out = append(out, magic...)
	out = append(out, formatVersion, byte(compression))
	out = append(out, block...)
	out = binary.LittleEndian.AppendUint32(out, hash.CRC32C(block))
	return out, nil
}

// DecodeTable deserializes a cache file back into a table.
func DecodeTable(data []byte) (*index.Table, error) {
	headerSize := len(magic) + 2
	if len(data) < headerSize+4 {
		return nil, fmt.Errorf("%w: truncated file", ErrBadFormat)
	}
	if string(data[:len(magic)]) != string(magic) {
		return nil, fmt.Errorf("%w: bad magic", ErrBadFormat)
	}
	version := data[len(magic)]
	if version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadFormat, version)
	}
	compression := CompressionType(data[len(magic)+1])

	block := data[headerSize : len(data)-4]
	want := binary.LittleEndian.Uint32(data[len(data)-4:])
	if got := hash.CRC32C(block); got != want {
		return nil, fmt.Errorf("%w: checksum mismatch (got %08x, want %08x)", ErrBadFormat, got, want)
	}

	payload, err := decompressBlock(block, compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	colCount, n := binary.Uvarint(payload)
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad column count", ErrBadFormat)
	}
	payload = payload[n:]
	rowCount, n := binary.Uvarint(payload)
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad row count", ErrBadFormat)
	}
	payload = payload[n:]

	names := make([]string, 0, colCount)
	cols := make([][]index.Value, 0, colCount)
	for c := uint64(0); c < colCount; c++ {
		nameLen, n := binary.Uvarint(payload)
		if n <= 0 || uint64(len(payload)-n) < nameLen {
			return nil, fmt.Errorf("%w: bad column name", ErrBadFormat)
		}
		payload = payload[n:]
		names = append(names, string(payload[:nameLen]))
		payload = payload[nameLen:]

		col := make([]index.Value, rowCount)
		for r := uint64(0); r < rowCount; r++ {
			v, rest, err := index.ParseValue(payload)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
			}
			col[r] = v
			payload = rest
		}
		cols = append(cols, col)
	}

	t := index.NewTable(names...)
	row := make([]index.Value, len(names))
	for r := uint64(0); r < rowCount; r++ {
		for c := range names {
			row[c] = cols[c][r]
		}
		if err := t.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}
