// Package pixelletter is a client for the Pixelletter print-and-post
// gateway. Orders (letter, fax, or both) are assembled from a typed
// request, serialized to the gateway's XML dialect and submitted as a
// multipart POST; the numeric result code of the answer is resolved
// through the codes package.
package pixelletter

import (
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "pixelletter")

// Input validation errors, raised before any serialization or I/O.
// All of them are caller-recoverable by correcting the request.
var (
	ErrNoDeliveryChannel = errors.New("neither letter nor fax is set")
	ErrAmbiguousContent  = errors.New("set either files or text")
	ErrEmptyFiles        = errors.New("files is empty")

	// ErrNoResponse means the gateway document decoded but carries no
	// response record.
	ErrNoResponse = errors.New("no response record in gateway document")
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
