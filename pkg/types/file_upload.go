package types

// FileUpload 已上传文件的元数据，extracted_text 由独立的抽取流程写入，
// 聊天管线只读取
type FileUpload struct {
	ID            string `json:"id" db:"id"`
	Filename      string `json:"filename" db:"filename"`
	ExtractedText string `json:"extracted_text" db:"extracted_text"`
	UploaderID    string `json:"uploader_id" db:"uploader_id"`
	CreatedAt     int64  `json:"created_at" db:"created_at"`
}
