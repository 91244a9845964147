package iolib

import (
	"testing"

	"github.com/CodisLabs/codis/pkg/utils/assert"

	"github.com/CodisLabs/blockio/pkg/block"
)

func TestMemoryReaderRead(t *testing.T) {
	var r = ReaderFromBytes([]byte{1, 2, 3, 4, 5})
	assert.Must(r.Size() == 5)

	var buf = block.Make[byte](2, 2)
	var got []byte
	for {
		n, err := r.Read(buf)
		if err == EOF {
			assert.Must(n == 0)
			break
		}
		assert.MustNoError(err)
		got = append(got, buf.SliceTo(0, n).Items()...)
	}
	assert.Must(string(got) == "\x01\x02\x03\x04\x05")
	assert.Must(r.Len() == 0)

	n, err := r.Read(buf)
	assert.Must(n == 0 && err == EOF)
}

func TestMemoryReaderEmptyDestination(t *testing.T) {
	var r = ReaderFromBytes([]byte("abc"))
	n, err := r.Read(block.Bytes{})
	assert.Must(n == 0 && err == nil)
	assert.Must(r.Len() == 3)
}

func TestMemoryReaderReadAt(t *testing.T) {
	var r = ReaderFromBytes([]byte("0123456789"))
	var buf = block.Make[byte](4, 4)

	n, err := r.ReadAt(buf, 2)
	assert.MustNoError(err)
	assert.Must(n == 4 && string(buf.Items()) == "2345")

	n, err = r.ReadAt(buf, 8)
	assert.Must(n == 2 && err == EOF)

	n, err = r.ReadAt(buf, 10)
	assert.Must(n == 0 && err == EOF)

	_, err = r.ReadAt(buf, -1)
	assert.Must(err == ErrInvalidOffset)

	assert.Must(r.Len() == 10)
}

func TestMemoryReaderWriteTo(t *testing.T) {
	var r = ReaderFromBytes([]byte("hello, world"))
	var buf = block.Make[byte](5, 5)
	_, err := r.Read(buf)
	assert.MustNoError(err)

	var w = NewWriter(block.Bytes{})
	n, err := r.WriteTo(w)
	assert.MustNoError(err)
	assert.Must(n == 7)
	assert.Must(string(w.Data().Items()) == ", world")

	n, err = r.WriteTo(w)
	assert.Must(n == 0 && err == nil)
}

func TestMemoryReaderWriteToShort(t *testing.T) {
	var r = ReaderFromBytes([]byte("abcdef"))
	var w = &shortWriter{limit: 4}
	n, err := r.WriteTo(w)
	assert.Must(n == 4 && err == ErrShortWrite)
	assert.Must(r.Len() == 2)
}

func TestMemoryWriterReusesCapacity(t *testing.T) {
	var data = block.Make[byte](0, 16)
	var w = NewWriter(data)
	n, err := w.Write(bytesOf("abc"))
	assert.MustNoError(err)
	assert.Must(n == 3)
	n, err = w.Write(bytesOf("de"))
	assert.MustNoError(err)
	assert.Must(n == 2)

	assert.Must(string(w.Data().Items()) == "abcde")
	assert.Must(&w.Data().Array()[0] == &data.Array()[0])
}

func TestMemoryWriterGrows(t *testing.T) {
	var w = NewWriter(block.Bytes{})
	for i := 0; i < 100; i++ {
		_, err := w.Write(block.Wrap([]byte{byte(i)}))
		assert.MustNoError(err)
	}
	assert.Must(w.Data().Len() == 100)
	for i, v := range w.Data().All() {
		assert.Must(v == byte(i))
	}
}

func TestMemoryAsync(t *testing.T) {
	var w = NewWriter(block.Bytes{})
	var results []<-chan Result
	for _, s := range []string{"a", "bc", "def"} {
		results = append(results, w.WriteAsync(bytesOf(s)))
	}
	for i, c := range results {
		n, err := (<-c).Unpack()
		assert.MustNoError(err)
		assert.Must(n == i+1)
	}
	assert.Must(string(w.Data().Items()) == "abcdef")

	var r = NewReader(w.Data())
	var buf = block.Make[byte](4, 4)
	res := <-r.ReadAsync(buf)
	assert.Must(res.N == 4 && res.Err == nil)
	res = <-r.ReadAsync(buf)
	assert.Must(res.N == 2 && res.Err == nil)
	res = <-r.ReadAsync(buf)
	assert.Must(res.N == 0 && res.Err == EOF)
}
