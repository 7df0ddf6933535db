package codec

import "fmt"

// Decoder turns bytes taken from in into zero or more messages appended to
// out. A Decoder that needs more input than is available must return without
// consuming anything.
type Decoder interface {
	Decode(in *BytesReader, out *OutputList) error
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(in *BytesReader, out *OutputList) error

func (f DecoderFunc) Decode(in *BytesReader, out *OutputList) error { return f(in, out) }

// Decode runs dec over data with a list borrowed from the ring pool, passing
// each decoded message to sink. It stops when the input is exhausted or when a
// Decode call neither consumes input nor produces output.
//
// It returns the number n of bytes consumed, so the caller keeps data[n:] for
// the next call, and whether any message was produced.
func (p *Pools) Decode(data []byte, dec Decoder, sink func(any) error) (int, bool, error) {
	out := p.Acquire()
	defer out.Recycle()

	in := NewBytesReader(data)
	for in.Available() > 0 {
		if out.Len() > 0 {
			if err := out.Drain(sink); err != nil {
				return in.Len(), true, err
			}
		}

		before := in.Available()
		if err := dec.Decode(in, out); err != nil {
			return in.Len(), out.InsertedSinceRecycle(), fmt.Errorf("codec: decode at offset %d: %w", in.Len(), err)
		}

		if out.Len() == 0 {
			if before == in.Available() {
				break
			}
			continue
		}
		if before == in.Available() {
			return in.Len(), true, fmt.Errorf("%w: %T", ErrDecodeNoProgress, dec)
		}
	}

	if out.Len() > 0 {
		if err := out.Drain(sink); err != nil {
			return in.Len(), true, err
		}
	}
	return in.Len(), out.InsertedSinceRecycle(), nil
}
