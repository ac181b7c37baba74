// Package diagnostic provides structured warnings and errors raised while
// validating a record schema before generation.
//
// Errors (duplicate or empty field names) make a schema unusable and abort
// generation. Warnings (variant names that are not identifiers, empty
// schemas) are reported and generation continues.
package diagnostic
