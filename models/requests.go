package models

// AnalyzePhotoIn carries a photo as a data URL or bare base64.
type AnalyzePhotoIn struct {
	ImageData string `json:"imageData" validate:"imagedata"`
}

type UploadIn struct {
	FileName string `json:"fileName" validate:"required,max=200"`
	Folder   string `json:"folder" validate:"required,oneof=clothing outfits guides analysis"`
}

type UploadOut struct {
	ObjectKey string `json:"objectKey"`
	UploadURL string `json:"uploadUrl"`
}

type ReadURLOut struct {
	URL string `json:"url"`
}
