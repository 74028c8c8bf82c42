package models

type FileUpload struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}
