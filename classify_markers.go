package streamable

import "reflect"

// Go generics erase their type arguments from reflect.Type.Name() in a form
// that's awkward to pattern-match reliably across compiler versions, so the
// four generic category wrappers (Optional, Pair, Tuple*, Variant*) each
// embed one of these zero-sized marker types anonymously. classify.go's
// is*Type helpers look the marker field up by name instead, which is stable
// and doesn't depend on how the compiler renders instantiated generic names.
type (
	optionalMarker struct{}
	variantMarker  struct{}
	tupleMarker    struct{}
	pairMarker     struct{}
	pointerFlavorMarker struct{}
)

func hasMarker(t reflect.Type, markerName string, markerType reflect.Type) bool {
	f, ok := t.FieldByName(markerName)
	return ok && f.Type == markerType
}

var (
	optionalMarkerType      = reflect.TypeOf(optionalMarker{})
	variantMarkerType       = reflect.TypeOf(variantMarker{})
	tupleMarkerType         = reflect.TypeOf(tupleMarker{})
	pairMarkerType          = reflect.TypeOf(pairMarker{})
	pointerFlavorMarkerType = reflect.TypeOf(pointerFlavorMarker{})
)

func hasOptionalMarker(t reflect.Type) bool { return hasMarker(t, "optionalMarker", optionalMarkerType) }
func hasVariantMarker(t reflect.Type) bool  { return hasMarker(t, "variantMarker", variantMarkerType) }
func hasTupleMarker(t reflect.Type) bool    { return hasMarker(t, "tupleMarker", tupleMarkerType) }
func hasPairMarker(t reflect.Type) bool     { return hasMarker(t, "pairMarker", pairMarkerType) }
func hasPointerFlavorMarker(t reflect.Type) bool {
	return hasMarker(t, "pointerFlavorMarker", pointerFlavorMarkerType)
}
