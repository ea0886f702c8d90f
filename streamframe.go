package streamable

import "fmt"

// writeStreamableFramed stages sv's body into a Stream-backed Writer before
// committing it to w, implementing spec.md §6's count(body_bytes) ||
// body_bytes framing for every Streamable value — not just the polymorphic
// pointer case, which additionally carries a discriminant ahead of the frame
// (see writeStreamablePtr in rangecodec.go). Staging through a Stream rather
// than writing the body straight to w turns FindParseSize's promise (spec.md
// §4.D: "size-finder and writer must agree bit-for-bit") into something this
// function actually checks at the moment a violation would occur, instead of
// trusting it blindly: a body that writes more or fewer bytes than
// FindParseSize predicted surfaces here as ErrSizeMismatch, not as a
// truncated or misaligned read in some unrelated field several levels away.
func writeStreamableFramed(w *Writer, sv Streamable) error {
	bodySize := sv.FindParseSize()
	body := NewStreamSize(bodySize)
	bodyWriter, err := NewWriter(body)
	if err != nil {
		w.setError(err)
		return err
	}
	if err := sv.ToStream(bodyWriter); err != nil {
		w.setError(err)
		return err
	}
	if err := bodyWriter.Flush(); err != nil {
		w.setError(err)
		return err
	}
	if body.Len() != bodySize {
		mismatch := fmt.Errorf("%w: %T.FindParseSize predicted %d bytes, ToStream wrote %d", ErrSizeMismatch, sv, bodySize, body.Len())
		w.setError(mismatch)
		return mismatch
	}

	w.writeCount(uint64(bodySize))
	if w.err != nil {
		return w.err
	}
	w.WriteBytes(body.Bytes())
	return w.err
}

// readStreamableFramed reads the count(body_bytes) || body_bytes frame
// writeStreamableFramed produces, isolating exactly body_bytes into a fresh
// Stream and decoding sv's fields from a Reader built over that isolated
// region. This is Stream's peek-and-restore discipline (spec.md §8 invariant
// 4) put to work for framing instead of lookahead: a nested Reader can never
// read past the frame boundary no matter what sv.FromStream does, so a bug
// or a corrupt encoding inside one Streamable's body cannot desynchronize
// whatever follows it on the outer stream — the outer Reader's cursor always
// advances by exactly body_bytes regardless of how much of the frame
// sv.FromStream itself consumed.
func readStreamableFramed(r *Reader, sv Streamable) error {
	bodySize, err := r.readCount()
	if err != nil {
		return err
	}

	raw := r.readFull(int(bodySize))
	if r.err != nil {
		return r.err
	}

	body := NewStreamFromBytes(raw)
	bodyReader, err := NewReader(body)
	if err != nil {
		r.setError(err)
		return err
	}

	if err := sv.FromStream(bodyReader); err != nil {
		r.setError(err)
		return err
	}
	if body.Len() != 0 {
		leftover := fmt.Errorf("%w: %d bytes left unread inside a %T frame", ErrTruncatedData, body.Len(), sv)
		r.setError(leftover)
		return leftover
	}
	return nil
}
