package types

import "io"

// Upload carries a media attachment extracted from a multipart request.
type Upload struct {
	File        io.Reader
	FileName    string
	ContentType string
	SizeBytes   int64
}
