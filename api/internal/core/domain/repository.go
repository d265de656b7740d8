package domain

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrTariffNotFound is returned when an update or delete targets an unknown id.
	ErrTariffNotFound = errors.New("tariff not found")

	// ErrInvalidPassword is returned by the admin login check.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrNoFile is returned when an upload request carries no file part.
	ErrNoFile = errors.New("no file")

	// ErrUnsupportedUpload is returned when the uploaded bytes are not an image.
	ErrUnsupportedUpload = errors.New("unsupported file type")

	// ErrInvalidDocument is returned when a site-info patch is not a JSON object.
	ErrInvalidDocument = errors.New("site info patch must be a JSON object")
)

// DocumentStore persists named JSON documents. Load returns an error for any
// kind of miss (absent, unreadable, malformed); callers fall back to defaults.
type DocumentStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, v any) error
}

// SiteInfoRepository is the accessor contract for the configuration document.
type SiteInfoRepository interface {
	// Get never fails on a missing or corrupt document: defaults are returned.
	Get(ctx context.Context) (SiteInfo, error)

	// Update overlays a partial JSON document on the current state and persists
	// the whole result.
	Update(ctx context.Context, patch []byte) (SiteInfo, error)
}

// UploadStore saves a user supplied file and returns its public URL.
type UploadStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// ChangeKind identifies which document an admin change touched.
type ChangeKind string

const (
	ChangeSiteInfo ChangeKind = "site-info"
	ChangeTariffs  ChangeKind = "tariffs"
	ChangeUpload   ChangeKind = "upload"
)

// ChangeNotifier receives a signal after every successful admin write.
type ChangeNotifier interface {
	Publish(kind ChangeKind)
}
