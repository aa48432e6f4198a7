package wire

import (
	"github.com/pkg/errors"
)

// preallocLimit caps the up-front allocation for a declared element count.
const preallocLimit = 4096

func preallocCount(n int32) int32 {
	if n > preallocLimit {
		return preallocLimit
	}
	return n
}

// Pair is one key/value entry of a wire map. Maps travel as ordered pair
// sequences so the output byte order is exactly the input order.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// WriteList appends a VarInt element count, then each element through
// writer in order. Elements carry no framing beyond what writer itself
// produces, so lists nest freely.
func WriteList[T any](b *Buffer, items []T, writer func(*Buffer, T) error) error {
	_ = b.WriteVarInt(int32(len(items)))
	for i := range items {
		if err := writer(b, items[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteIntIDList writes a list of VarInt-encoded ids.
func WriteIntIDList(b *Buffer, ids []int32) error {
	return WriteList(b, ids, func(b *Buffer, n int32) error {
		return b.WriteVarInt(n)
	})
}

// WriteMap appends a VarInt pair count, then key and value of each pair
// back to back, in input order.
func WriteMap[K, V any](b *Buffer, pairs []Pair[K, V], keyWriter func(*Buffer, K) error, valueWriter func(*Buffer, V) error) error {
	_ = b.WriteVarInt(int32(len(pairs)))
	for i := range pairs {
		if err := keyWriter(b, pairs[i].Key); err != nil {
			return err
		}
		if err := valueWriter(b, pairs[i].Value); err != nil {
			return err
		}
	}
	return nil
}

// ReadList reads a VarInt element count, then that many elements through
// reader in order.
func ReadList[T any](r *Reader, reader func(*Reader) (T, error)) ([]T, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Errorf("negative list length %d", n)
	}
	items := make([]T, 0, preallocCount(n))
	for i := int32(0); i < n; i++ {
		item, err := reader(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ReadIntIDList reads a list of VarInt-encoded ids.
func ReadIntIDList(r *Reader) ([]int32, error) {
	return ReadList(r, func(r *Reader) (int32, error) {
		return r.ReadVarInt()
	})
}

// ReadMap reads a VarInt pair count, then each key/value pair in wire
// order.
func ReadMap[K, V any](r *Reader, keyReader func(*Reader) (K, error), valueReader func(*Reader) (V, error)) ([]Pair[K, V], error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Errorf("negative map length %d", n)
	}
	pairs := make([]Pair[K, V], 0, preallocCount(n))
	for i := int32(0); i < n; i++ {
		k, err := keyReader(r)
		if err != nil {
			return nil, err
		}
		v, err := valueReader(r)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return pairs, nil
}
