package block

import (
	"testing"

	"github.com/CodisLabs/codis/pkg/utils/assert"
)

func mustRangePanic(fn func()) {
	defer func() {
		x := recover()
		_, ok := x.(*RangeError)
		assert.Must(ok)
	}()
	fn()
}

func sameArray(a, b []byte) bool {
	return len(a) != 0 && len(a) == len(b) && &a[0] == &b[0]
}

func TestEmptyBlock(t *testing.T) {
	var b Bytes
	assert.Must(b.Len() == 0)
	assert.Must(b.Cap() == 0)
	assert.Must(len(b.Items()) == 0)
}

func TestBlockLength(t *testing.T) {
	var testcase = func(start, end, length int) {
		var arr = []byte{1, 2, 3}
		var b = New(arr, start, end)
		assert.Must(b.Len() == length)
		assert.Must(sameArray(b.Array(), arr))
	}
	testcase(0, 0, 0)
	testcase(0, 1, 1)
	testcase(1, 1, 0)
	testcase(1, 2, 1)
	testcase(1, 3, 2)
	testcase(2, 3, 1)
}

func TestBlockFirstValue(t *testing.T) {
	var testcase = func(start, end int, expected byte) {
		var arr = []byte{1, 2, 3}
		var b = New(arr, start, end)
		assert.Must(b.Get(0) == expected)
	}
	testcase(0, 1, 1)
	testcase(1, 2, 2)
	testcase(2, 3, 3)
}

func TestBlockInvalidBounds(t *testing.T) {
	var arr = []byte{1, 2, 3}
	mustRangePanic(func() { New(arr, -1, 2) })
	mustRangePanic(func() { New(arr, 0, -1) })
	mustRangePanic(func() { New(arr, 0, 4) })
	mustRangePanic(func() { New(arr, 2, 1) })
	mustRangePanic(func() { Make[byte](3, 2) })
}

func TestBlockIndex(t *testing.T) {
	var arr = []byte{1, 2, 3, 4}
	var b = New(arr, 1, 3)
	b.Set(1, 9)
	assert.Must(arr[2] == 9)
	assert.Must(b.Get(1) == 9)
	mustRangePanic(func() { b.Get(2) })
	mustRangePanic(func() { b.Get(-1) })
	mustRangePanic(func() { b.Set(2, 0) })
}

func TestSliceAliasesArray(t *testing.T) {
	var testcase = func(start, end int, expected byte) {
		var arr = []byte{1, 2, 3, 4}
		var b = New(arr, 1, 4).SliceTo(start, end)
		assert.Must(b.Get(0) == expected)
		assert.Must(sameArray(b.Array(), arr))
	}
	testcase(0, 1, 2)
	testcase(1, 2, 3)
	testcase(2, 3, 4)

	var arr = []byte{1, 2, 3}
	for i := 0; i < 3; i++ {
		var b = Wrap(arr).Slice(i)
		assert.Must(b.Get(0) == arr[i])
		assert.Must(b.Len() == 3-i)
	}
	mustRangePanic(func() { Wrap(arr).Slice(-1) })
	mustRangePanic(func() { Wrap(arr).SliceTo(2, 1) })
	mustRangePanic(func() { Wrap(arr).SliceTo(0, 4) })
}

func TestSliceIntoCapacity(t *testing.T) {
	var arr = []byte{1, 2, 3}
	var b = New(arr, 0, 1).SliceTo(0, 3)
	assert.Must(b.Len() == 3)
	assert.Must(b.Get(2) == 3)
}

func TestBlockCapacity(t *testing.T) {
	var testcase = func(start, end, capacity int) {
		var b = New([]byte{1, 2, 3}, start, end)
		assert.Must(b.Cap() == capacity)
	}
	testcase(0, 0, 3)
	testcase(0, 1, 2)
	testcase(0, 2, 1)
	testcase(1, 2, 1)
	testcase(0, 3, 0)
	testcase(1, 3, 0)
	testcase(2, 3, 0)
}

func TestCopyTo(t *testing.T) {
	var testcase = func(nsrc, ndst int) {
		var src = Wrap(make([]byte, nsrc))
		for i := 0; i < nsrc; i++ {
			src.Set(i, byte(i+1))
		}
		var arr = make([]byte, ndst+2)
		var dst = New(arr, 1, ndst+1)
		var n = src.CopyTo(dst)
		assert.Must(n == min(nsrc, ndst))
		assert.Must(arr[0] == 0 && arr[len(arr)-1] == 0)
		for i := 0; i < n; i++ {
			assert.Must(dst.Get(i) == byte(i+1))
		}
	}
	testcase(0, 0)
	testcase(0, 4)
	testcase(4, 0)
	testcase(3, 5)
	testcase(5, 3)
	testcase(4, 4)
}

func TestAppendWithSpareCapacity(t *testing.T) {
	var arr = []byte{1, 0, 0}
	var b1 = New(arr, 0, 1)
	var b2 = b1.Append(2)
	assert.Must(b2.Len() == 2)
	assert.Must(b2.Get(1) == 2)
	assert.Must(sameArray(b2.Array(), arr))
	assert.Must(b1.Len() == 1)
}

func TestAppendReallocates(t *testing.T) {
	var arr = []byte{1}
	var b1 = Wrap(arr)
	var b2 = b1.Append(2)
	assert.Must(b2.Len() == 2)
	assert.Must(b2.Get(0) == 1 && b2.Get(1) == 2)
	assert.Must(!sameArray(b2.Array(), arr))
	assert.Must(b2.Cap() == 4)
	assert.Must(len(b2.Array()) >= 2*b2.Len())
}

func TestAppendGrowth(t *testing.T) {
	var b = Make[byte](0, 0)
	for i := 0; i < 1000; i++ {
		var before = b
		b = b.Append(byte(i))
		if before.Cap() > 0 {
			assert.Must(sameArray(b.Array(), before.Array()))
		} else {
			assert.Must(len(b.Array()) >= 2*b.Len())
		}
	}
	for i, v := range b.All() {
		assert.Must(v == byte(i))
	}
}

func TestAppendBlock(t *testing.T) {
	var b = Make[byte](0, 2).Append(1, 2)
	b = b.AppendBlock(Wrap([]byte{3, 4, 5}))
	assert.Must(b.Len() == 5)
	for i := 0; i < 5; i++ {
		assert.Must(b.Get(i) == byte(i+1))
	}
}

func TestEqualIsIdentity(t *testing.T) {
	var arr = []byte{1, 2, 3}
	assert.Must(New(arr, 0, 2).Equal(Wrap(arr).SliceTo(0, 2)))
	assert.Must(!New(arr, 0, 2).Equal(New(arr, 0, 3)))
	assert.Must(!New(arr, 0, 2).Equal(Wrap([]byte{1, 2})))
}
