// Package mmfile maps input files into memory for the parser.
//
// On unix systems files are mapped read-only with mmap; elsewhere they are
// read into a heap buffer. Callers must not retain slices of the mapping
// after calling the release function. PreFault touches every page up front
// so that a file truncated under the mapping surfaces as an error rather
// than a SIGBUS in the middle of a parse.
package mmfile
