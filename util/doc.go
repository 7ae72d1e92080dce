// Package util holds small shared helpers with no authkit dependencies.
package util
