// Command partial-gen generates partial record types for Go structs and YAML
// schema files.
//
// Typical use is from a go:generate directive next to the record:
//
//	//go:generate go run partial-generator/cmd/partial-gen gen --pkg . --type Account
package main

func main() {
	Execute()
}
