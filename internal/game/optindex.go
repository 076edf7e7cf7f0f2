package game

import (
	"bytes"
	"strconv"
)

// OptIndex is an optional seat index. The zero value is absent, so seat 0
// can only be expressed through Some(0).
type OptIndex struct {
	idx int
	ok  bool
}

var None = OptIndex{}

func Some(i int) OptIndex {
	return OptIndex{idx: i, ok: true}
}

// OptFromPtr converts a nullable int as produced by JSON or database drivers.
func OptFromPtr(p *int) OptIndex {
	if p == nil {
		return None
	}
	return Some(*p)
}

func (o OptIndex) Get() (int, bool) {
	return o.idx, o.ok
}

func (o OptIndex) Present() bool {
	return o.ok
}

// Is reports whether the index is present and equal to i.
func (o OptIndex) Is(i int) bool {
	return o.ok && o.idx == i
}

func (o OptIndex) Ptr() *int {
	if !o.ok {
		return nil
	}
	v := o.idx
	return &v
}

func (o OptIndex) String() string {
	if !o.ok {
		return "none"
	}
	return strconv.Itoa(o.idx)
}

func (o OptIndex) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(o.idx)), nil
}

func (o *OptIndex) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*o = None
		return nil
	}
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
