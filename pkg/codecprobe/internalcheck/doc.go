// Package internalcheck holds static policy tests over the codecprobe module.
//
// The tests load the module's packages with golang.org/x/tools/go/packages
// and fail on imports or calls that break the layering rules: native loading
// stays inside internal/dynlib, and library packages do not print to stdout.
// The package has no non-test code and is not meant to be imported.
package internalcheck
