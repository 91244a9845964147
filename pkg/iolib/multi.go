package iolib

import (
	"github.com/CodisLabs/blockio/pkg/block"
)

// composite is implemented by readers made of other readers, so a reader
// wrapping one can take over the remaining list instead of delegating.
type composite interface {
	remaining() block.Block[Reader]
}

type multiReader struct {
	readers block.Block[Reader]
}

// MultiReader returns the logical concatenation of readers. EOF is only
// returned once the last of them is exhausted.
func MultiReader(readers ...Reader) Reader {
	var list = make([]Reader, len(readers))
	for i, r := range readers {
		mustNotNil("reader", r)
		list[i] = r
	}
	return &multiReader{readers: block.Wrap(list)}
}

func (m *multiReader) remaining() block.Block[Reader] {
	return m.readers
}

func (m *multiReader) Read(p block.Bytes) (int, error) {
	for m.readers.Len() > 0 {
		if m.readers.Len() == 1 {
			if c, ok := m.readers.Get(0).(composite); ok {
				m.readers = c.remaining()
				continue
			}
		}
		if p.Len() == 0 {
			return 0, nil
		}
		n, err := m.readers.Get(0).Read(p)
		if err == EOF {
			m.readers = m.readers.Slice(1)
		}
		if n > 0 || err != EOF {
			if err == EOF && m.readers.Len() > 0 {
				err = nil
			}
			return n, err
		}
	}
	return 0, EOF
}

type multiWriter struct {
	writers []Writer
}

// MultiWriter duplicates each write to all writers, in order. The first
// writer to fail or to accept fewer bytes than given stops the write;
// writes already issued are not undone.
func MultiWriter(writers ...Writer) Writer {
	var list = make([]Writer, len(writers))
	for i, w := range writers {
		mustNotNil("writer", w)
		list[i] = w
	}
	return &multiWriter{writers: list}
}

func (m *multiWriter) Write(p block.Bytes) (int, error) {
	for _, w := range m.writers {
		n, err := w.Write(p)
		if err != nil {
			return n, err
		}
		if n != p.Len() {
			return n, ErrShortWrite
		}
	}
	return p.Len(), nil
}
