// Package storage archives uploaded source documents. The quiz record is
// the system of record; blobs exist so staff can re-download what they fed
// the generator.
package storage

import "io"

type BlobStore interface {
	Put(key string, r io.Reader) error
	Get(key string) (io.ReadCloser, error)
}

// SourceDocKey is where a quiz's originating document lives.
func SourceDocKey(quizID string) string {
	return "quizzes/" + quizID + ".pdf"
}
