package request_models

// UploadRequest is the JSON envelope ingestion path: base64 bytes plus the
// declared MIME type. Raw-binary uploads bypass this and use headers.
type UploadRequest struct {
	File     string `json:"file" binding:"required"`
	MimeType string `json:"mimeType" binding:"required"`
	Folder   string `json:"folder"`
}

type DeleteUploadRequest struct {
	URL string `json:"url" binding:"required"`
}
