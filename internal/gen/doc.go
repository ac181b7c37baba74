// Package gen provides deterministic Go code generation for partial records.
//
// Generation approach uses text/template + go/format. For a record Account
// one file is emitted containing:
//   - AccountField: closed enumeration of fields, with String (original
//     name), Variant and ParseAccountField
//   - UnknownAccountFieldError and MissingAccountFieldsError
//   - PartialAccount: one optional.Value per field
//   - PartialAccountFromFull, Has, MissingFields, CheckComplete, Apply,
//     Merge and TryIntoFull
//
// Every per-field operation is unrolled over all fields in declaration
// order, so no operation can skip a field.
package gen
