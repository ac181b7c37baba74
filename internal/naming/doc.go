// Package naming derives enumeration variant names from field names.
//
// The transform is deliberately simple and lossy: "user_id" and "user__id"
// both become "UserId". Collisions and non-identifier results are reported
// by the schema diagnostics, never rejected here.
package naming
