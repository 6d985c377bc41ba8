package arghash

import (
	"encoding/binary"
	"errors"
	"hash"
	"hash/fnv"
	"math"
	"sync"

	"github.com/goccy/go-reflect"
	"github.com/mitchellh/hashstructure/v2"
)

// ErrNotHashable is reported when a value has no stable identity suitable for
// use in a cache key, e.g. a slice, map or function value.
var ErrNotHashable = errors.New("arghash: value is not hashable")

// Type tags keep values of different kinds from colliding when their raw
// encodings happen to match.
const (
	tagNil byte = iota + 1
	tagFalse
	tagTrue
	tagInt
	tagUint
	tagFloat
	tagString
	tagDigest
)

// Hasher accumulates argument values into a single FNV-1a digest.
// Hashers are pooled; use Acquire and Release instead of constructing them.
type Hasher struct {
	h hash.Hash64
}

var hasherPool = sync.Pool{
	New: func() any {
		return &Hasher{h: fnv.New64a()}
	},
}

// Acquire returns a reset Hasher from the pool.
func Acquire() *Hasher {
	return hasherPool.Get().(*Hasher)
}

// Release resets the Hasher and returns it to the pool.
func Release(h *Hasher) {
	h.h.Reset()
	hasherPool.Put(h)
}

// WriteUint64 writes a raw 64-bit value into the digest.
func (h *Hasher) WriteUint64(u uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	_, _ = h.h.Write(b[:])
}

func (h *Hasher) writeTag(t byte) {
	_, _ = h.h.Write([]byte{t})
}

// WriteValue writes a single argument value into the digest.
//
// Numeric values hash by their widened representation, so int8(1) and int(1)
// produce the same contribution. Strings are length-prefixed. Any other value
// whose dynamic type is comparable is folded in via its hashstructure digest.
// Everything else returns ErrNotHashable.
func (h *Hasher) WriteValue(v any) error {
	switch x := v.(type) {
	case nil:
		h.writeTag(tagNil)
	case bool:
		if x {
			h.writeTag(tagTrue)
		} else {
			h.writeTag(tagFalse)
		}
	case int:
		h.writeTag(tagInt)
		h.WriteUint64(uint64(int64(x)))
	case int8:
		h.writeTag(tagInt)
		h.WriteUint64(uint64(int64(x)))
	case int16:
		h.writeTag(tagInt)
		h.WriteUint64(uint64(int64(x)))
	case int32:
		h.writeTag(tagInt)
		h.WriteUint64(uint64(int64(x)))
	case int64:
		h.writeTag(tagInt)
		h.WriteUint64(uint64(x))
	case uint:
		h.writeTag(tagUint)
		h.WriteUint64(uint64(x))
	case uint8:
		h.writeTag(tagUint)
		h.WriteUint64(uint64(x))
	case uint16:
		h.writeTag(tagUint)
		h.WriteUint64(uint64(x))
	case uint32:
		h.writeTag(tagUint)
		h.WriteUint64(uint64(x))
	case uint64:
		h.writeTag(tagUint)
		h.WriteUint64(x)
	case float32:
		h.writeTag(tagFloat)
		h.WriteUint64(math.Float64bits(float64(x)))
	case float64:
		h.writeTag(tagFloat)
		h.WriteUint64(math.Float64bits(x))
	case string:
		h.writeTag(tagString)
		h.WriteUint64(uint64(len(x)))
		_, _ = h.h.Write([]byte(x))
	default:
		if !reflect.TypeOf(v).Comparable() {
			return ErrNotHashable
		}
		d, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
		if err != nil {
			return ErrNotHashable
		}
		h.writeTag(tagDigest)
		h.WriteUint64(d)
	}
	return nil
}

// Sum returns the accumulated digest.
func (h *Hasher) Sum() uint64 {
	return h.h.Sum64()
}

// Value computes the digest of a single value.
func Value(v any) (uint64, error) {
	h := Acquire()
	defer Release(h)
	if err := h.WriteValue(v); err != nil {
		return 0, err
	}
	return h.Sum(), nil
}
