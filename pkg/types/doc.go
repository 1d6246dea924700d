// Package types holds the error taxonomy shared by the ADT parser, the node
// model and the command-line tools.
//
// Errors are typed with stable categories so callers can branch on intent:
//
//	v, err := adt.Parse(data, reg, adt.DefaultOptions())
//	switch {
//	case errors.Is(err, types.ErrUndefined):
//		// the dump names a constructor the schema does not know
//	case errors.Is(err, types.ErrInput):
//		// malformed text; err carries the byte offset and an excerpt
//	}
//
// This package has no dependencies beyond the standard library.
package types
