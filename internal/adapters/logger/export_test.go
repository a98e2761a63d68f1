// export_test.go exposes the error formatting helpers to the external tests.
package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
