package response_models

type ImageSize struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Description string `json:"description"`
}

type StorageInfo struct {
	Bucket        string               `json:"bucket"`
	MaxFileSize   int64                `json:"maxFileSize"`
	MaxFileSizeMB int64                `json:"maxFileSizeMB"`
	AllowedTypes  []string             `json:"allowedTypes"`
	IdealSizes    map[string]ImageSize `json:"idealSizes"`
}

type UploadResult struct {
	URL string `json:"url"`
}
