package file

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// sniffLen is the number of bytes http.DetectContentType looks at.
const sniffLen = 512

// Describe turns an uploaded file into the descriptor the file rules read.
// The MIME type comes from the content, not from the client header, so a
// renamed executable is not reported as an image.
func Describe(fh *multipart.FileHeader) (validator.FileInfo, error) {
	if fh == nil {
		return validator.FileInfo{}, ErrNilFileHeader
	}
	mime, err := DetectMIMEType(fh)
	if err != nil {
		return validator.FileInfo{}, err
	}
	name := SanitizeFilename(fh.Filename)
	return validator.FileInfo{
		Name:  name,
		Ext:   Extension(name),
		Bytes: fh.Size,
		MIME:  mime,
	}, nil
}

// DescribeAll describes every file of a multipart field, in upload order.
func DescribeAll(fhs []*multipart.FileHeader) ([]validator.File, error) {
	out := make([]validator.File, 0, len(fhs))
	for _, fh := range fhs {
		info, err := Describe(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// Extension returns the lower-cased extension of name without the dot.
//
//	file.Extension("photo.JPG") // "jpg"
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// DetectMIMEType sniffs the MIME type from the first bytes of the upload.
// Parameters such as "; charset=utf-8" are stripped.
func DetectMIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	mime, _, _ := strings.Cut(http.DetectContentType(buf[:n]), ";")
	return strings.TrimSpace(mime), nil
}

// SanitizeFilename drops directory components and NUL bytes from a client
// supplied filename. It returns "unnamed" when nothing usable is left.
//
//	file.SanitizeFilename("../../../etc/passwd")   // "passwd"
//	file.SanitizeFilename("C:\\Windows\\file.txt") // "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
