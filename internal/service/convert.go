package service

import "github.com/Sylvio143/G-stagiaire/internal/model"

// photoTriplet flattens a loaded MediaFile into the response URL triplet.
// All three pointers are nil when the entity has no photo; the variant URLs
// are nil when the upload was not an image.
func photoTriplet(m *model.MediaFile) (photoURL, thumbnailURL, mediumURL *string) {
	if m == nil {
		return nil, nil, nil
	}
	photoURL = &m.URL
	if m.ThumbnailURL != "" {
		thumbnailURL = &m.ThumbnailURL
	}
	if m.MediumURL != "" {
		mediumURL = &m.MediumURL
	}
	return photoURL, thumbnailURL, mediumURL
}
