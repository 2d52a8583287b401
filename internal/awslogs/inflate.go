package awslogs

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	apperrors "logalert/pkg/errors"
)

// Inflate decompresses the first member of a gzip-framed blob; anything after
// it is ignored. Raw deflate and zlib streams are rejected, matching what
// CloudWatch Logs actually delivers.
func Inflate(blob []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, apperrors.ErrInflate.WithCause(err)
	}
	defer reader.Close()
	reader.Multistream(false)

	text, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.ErrInflate.WithCause(err)
	}

	return text, nil
}
