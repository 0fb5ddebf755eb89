// Package envfile parses dotenv-style configuration files.
//
// The format is deliberately minimal: UTF-8 text, one KEY=VALUE pair per
// line, #-prefixed comment lines, blank lines ignored, optional single or
// double quoting of values. There is no variable expansion, no "export"
// prefix handling, and no unescaping of characters inside quoted values —
// the file is read exactly as written.
package envfile
