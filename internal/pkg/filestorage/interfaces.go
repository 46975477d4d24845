package filestorage

import "mime/multipart"

// StoredFile describes a persisted upload: the hosted URL handed to
// clients and the opaque public identifier used later for deletion.
type StoredFile struct {
	URL      string
	PublicID string
}

// Storage abstracts the media store bookings receipts and complaint
// images are handed to.
type Storage interface {
	Save(fileHeader *multipart.FileHeader, subPath string) (*StoredFile, error)
	Delete(publicID string) error
}
