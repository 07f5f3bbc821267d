package dto

// PolicyRequest names the file an upload policy should be prepared for.
type PolicyRequest struct {
	FileName string `json:"file_name" binding:"required"`
}

// UploadResult is the per-file outcome of a batch upload.
type UploadResult struct {
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}

// UploadResponse reports the whole batch, failures included.
type UploadResponse struct {
	Results []UploadResult `json:"results"`
	Failed  int            `json:"failed"`
}
