package documents

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Document is upload metadata only. The bytes live with the external file
// collaborator under Filename; a redacted copy, when one exists, is pointed
// at from Metadata.
type Document struct {
	ID         int               `json:"id"`
	Name       string            `json:"name"`
	Filename   string            `json:"filename"`
	Filesize   int64             `json:"filesize"`
	MimeType   string            `json:"mimeType"`
	CategoryID *int              `json:"categoryId,omitempty"`
	UploadedBy int               `json:"uploadedBy"`
	UploadedAt time.Time         `json:"uploadedAt"`
	IsPublic   bool              `json:"isPublic"`
	IsVerified bool              `json:"isVerified"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// MetadataRedactedCopy is the metadata key holding the filename of the
// redacted rendition produced by the external masking utility.
const MetadataRedactedCopy = "redactedFilename"

// NewStoredFilename returns a collision-free name for the external blob
// store, keeping the original extension so MIME sniffing stays possible.
func NewStoredFilename(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}
