package streamable

// Streamable is the contract every user-declared compound type implements:
// a self-sizing binary encoder/decoder narrowed to exactly three hooks,
// operating against this package's Writer/Reader instead of raw
// io.Writer/io.Reader so field-level dispatch can use the shared classifier.
//
// A derived type expresses "inheritance" the idiomatic Go way: by embedding
// its parent struct as an anonymous field and explicitly delegating to the
// embedded parent's ToStream/FromStream/FindParseSize before handling its
// own fields, e.g.:
//
//	type Shape struct{ Kind uint64 }
//	func (s *Shape) ToStream(w *Writer) error      { return w.WriteAll(s.Kind) }
//	func (s *Shape) FromStream(r *Reader) error    { return r.ReadAll(&s.Kind) }
//	func (s *Shape) FindParseSize() int            { return SizeOf(s.Kind) }
//
//	type Circle struct{ Shape; Radius float64 }
//	func (c *Circle) ToStream(w *Writer) error {
//		if err := c.Shape.ToStream(w); err != nil { return err }
//		return w.WriteAll(c.Radius)
//	}
//	func (c *Circle) FromStream(r *Reader) error {
//		if err := c.Shape.FromStream(r); err != nil { return err }
//		return r.ReadAll(&c.Radius)
//	}
//	func (c *Circle) FindParseSize() int {
//		return c.Shape.FindParseSize() + SizeOf(c.Radius)
//	}
//
// A root base (one with no Streamable embedded) simply has nothing to
// delegate to — there is no separate sentinel type to check for, unlike the
// source's STREAMABLE_INTERFACE_NAME string comparison, because "no parent"
// is already expressible as "doesn't embed one" in Go.
type Streamable interface {
	// ToStream emits all declared fields via w, in declaration order.
	ToStream(w *Writer) error

	// FromStream mirrors ToStream's shape on the read side.
	FromStream(r *Reader) error

	// FindParseSize returns the exact byte length ToStream will produce.
	FindParseSize() int
}

// PolymorphicStreamable is implemented by a concrete type that wants to be
// reachable through a polymorphic base field: a field declared at some named
// interface type embedding PolymorphicStreamable (the Go analogue of the
// source's "pointer to base"), rather than at a concrete struct type.
//
// The discriminant Discriminant returns is written and read by the dispatch
// engine itself, immediately before the value's own ToStream/FromStream —
// concrete implementations never touch it directly. On decode the engine
// reads the discriminant, looks up the matching constructor in that base
// interface's registry (see registry.go), and calls the constructed value's
// FromStream for the rest. This is the registry-based single-consume form
// spec.md §9 (open question 1) recommends in place of the source's
// peek-construct-then-reread double pass.
type PolymorphicStreamable interface {
	Streamable

	// Discriminant returns the tag identifying this concrete type within
	// its base's registry.
	Discriminant() uint64
}
