package dto

// UploadResult is returned after a PDF has been stored.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Pages    int    `json:"pages,omitempty"`
	Message  string `json:"message"`
}
