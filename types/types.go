// Package types defines narrata's built-in expression type catalog: the
// fixed set of four type descriptors (String, Number, Boolean, Any), plus
// the mapping from a host runtime's native value kinds onto those four.
// The parser does not attach these descriptors to the AST it builds.
//
// The catalog is a process-wide constant, built once and read many times.
// It never mutates after package init, so it is safe for any number of
// concurrent readers without locking.
package types

// Name identifies one of the four built-in types by name.
type Name string

const (
	NameString  Name = "String"
	NameNumber  Name = "Number"
	NameBoolean Name = "Boolean"
	NameAny     Name = "Any"

	// nameUndefined is a compilation-phase-only sentinel. It is
	// intentionally unexported: it must never leak into an AST exposed to
	// consumers, so there is no exported constructor or constant for it
	// outside this package's own use.
	nameUndefined Name = "Undefined"
)

// Descriptor is an immutable built-in type descriptor. Two Descriptors are
// the same type if and only if their Name fields compare equal; Descriptor
// carries no other mutable state, which is what makes read-only-after-init
// concurrency safety trivial.
type Descriptor struct {
	Name Name
}

// The four built-in type descriptors.
var (
	String  = Descriptor{Name: NameString}
	Number  = Descriptor{Name: NameNumber}
	Boolean = Descriptor{Name: NameBoolean}
	Any     = Descriptor{Name: NameAny}
)

// hostKinds maps a host runtime's native value-kind names onto one of the
// four built-in descriptors: integers and floats map to Number, textual
// kinds to String, boolean kinds to Boolean, and anything opaque to Any.
// The table is fixed: there is no API for registering further kind
// spellings. It covers the spellings a Go host runtime is most likely to
// use.
var hostKinds = map[string]Descriptor{
	"int":     Number,
	"int32":   Number,
	"int64":   Number,
	"float32": Number,
	"float64": Number,
	"number":  Number,
	"string":  String,
	"str":     String,
	"bool":    Boolean,
	"boolean": Boolean,
	"any":     Any,
	"object":  Any,
	"nil":     Any,
}

// Lookup resolves a host-native value-kind name to its built-in
// Descriptor. It is the sole integration point between the expression
// type system and a host runtime's type names. Lookup never mutates
// hostKinds and is safe to call from any number of goroutines
// concurrently.
func Lookup(hostKind string) (Descriptor, bool) {
	d, ok := hostKinds[hostKind]
	return d, ok
}

// IsUndefined reports whether d is the internal Undefined sentinel. This
// exists so compilation-phase code within this module can detect the
// sentinel without exporting a way to construct or compare against it
// directly from outside the package.
func IsUndefined(d Descriptor) bool {
	return d.Name == nameUndefined
}
