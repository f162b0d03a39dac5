// Package http contains the HTTP transport layer: chi handlers for
// dataset upload, the student selector/profile views and the live
// normalization-range configuration.
package http
