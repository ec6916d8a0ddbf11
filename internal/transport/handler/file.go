package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/pep299/wiki-stub-finder/internal/service"
	"github.com/pep299/wiki-stub-finder/internal/transport/response"
)

// File serves /api/process-file: extracts plain text from an uploaded
// PDF, DOCX or plain-text document.
type File struct{}

func NewFile() *File {
	return &File{}
}

type fileResponse struct {
	Text        string `json:"text"`
	Preview     string `json:"preview"`
	TotalLength int    `json:"total_length"`
	FileType    string `json:"file_type"`
}

func (h *File) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The extra headroom covers multipart framing overhead.
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxFileSize+64*1024)

	if err := r.ParseMultipartForm(service.MaxFileSize); err != nil {
		response.WriteBadRequest(w, "File exceeds the 5MB limit or the upload is malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.WriteBadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	if header.Size > service.MaxFileSize {
		response.WriteBadRequest(w, "File exceeds the 5MB limit")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.WriteInternalError(w, "reading upload failed")
		return
	}

	text, fileType, err := service.ExtractText(header.Filename, data)
	if errors.Is(err, service.ErrUnsupportedFileType) {
		response.WriteBadRequest(w, "Unsupported file type: upload PDF, DOCX or plain text")
		return
	}
	if err != nil {
		response.WriteInternalError(w, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, fileResponse{
		Text:        text,
		Preview:     service.Preview(text, service.PreviewLength),
		TotalLength: len(text),
		FileType:    fileType,
	})
}
