package common

import "errors"

var (
	// Sealed blobs that cannot be opened with the configured storage secret.
	ErrorCorruptedCredential = errors.New("corrupted credential")
)
