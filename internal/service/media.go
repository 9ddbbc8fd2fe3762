package service

import (
	"context"
	"fmt"
	"time"

	"wedonate/internal/storage"
	"wedonate/pkg/types"

	"github.com/sirupsen/logrus"
)

const maxUploadBytes = 5 << 20

var allowedUploadTypes = map[string]bool{
	"image/jpeg":  true,
	"image/pjpeg": true,
	"image/png":   true,
	"image/gif":   true,
}

func validateUpload(upload *types.Upload) error {
	if !allowedUploadTypes[upload.ContentType] {
		return types.NewValidationError("unsupported image type %q", upload.ContentType)
	}
	if upload.SizeBytes > maxUploadBytes {
		return types.NewValidationError("image larger than %d bytes", maxUploadBytes)
	}
	return nil
}

// storeUpload validates and stores a new media object, returning its public
// URL. This always runs before the record write: a failed store aborts the
// whole operation, so no record ever references an object that was not
// stored.
func storeUpload(ctx context.Context, media MediaStore, upload *types.Upload, now time.Time) (string, error) {
	if err := validateUpload(upload); err != nil {
		return "", err
	}

	key := fmt.Sprintf("%d-%s", now.UnixMilli(), upload.FileName)

	url, err := media.Put(ctx, key, upload.ContentType, upload.File)
	if err != nil {
		return "", &types.ExternalServiceError{Service: "media", Err: err}
	}

	return url, nil
}

// releaseMedia deletes the object behind a stored reference. Runs after the
// record no longer references the object (replace) or while the record is
// being removed (delete), so a failure only leaks an orphan blob: logged,
// never fatal, swept out-of-band.
func releaseMedia(ctx context.Context, logger *logrus.Logger, media MediaStore, ref *string) {
	if ref == nil || *ref == "" {
		return
	}

	key := storage.KeyFromURL(*ref)
	if err := media.Delete(ctx, key); err != nil {
		logger.WithError(err).WithField("storage_key", key).Warn("best-effort media cleanup failed")
	}
}
