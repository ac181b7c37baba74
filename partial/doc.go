// Package partial is the runtime form of the partial-record operation set.
//
// Where the code generator emits a dedicated Partial<Record> type per record,
// this package derives a Schema from a struct type once and performs the
// same operations generically:
//
//	s := partial.MustDerive[Account]()
//	p := s.New()
//	p, _ = s.SetByName(p, "name", "b")
//	acct := s.Apply(p, base)
//
// Unexported fields cannot be carried through reflection, so a struct with
// one must tag it partial:"-"; Derive refuses the struct otherwise. The
// generated code has no such limit.
//
// Operations (Apply, CheckComplete, Merge, FromFull, TryIntoFull) take and
// return values; a Partial is never modified in place.
package partial
