package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

func TestFileInfo(t *testing.T) {
	f := validator.FileInfo{Name: "photo.JPG", Ext: ".JPG", Bytes: 10, MIME: "image/jpeg"}
	assert.Equal(t, "jpg", f.Extension())
	assert.Equal(t, int64(10), f.Size())
	assert.Equal(t, "photo.JPG", f.String())
}

func TestFiles(t *testing.T) {
	f := validator.FileInfo{Name: "a.txt", Ext: "txt"}

	files, ok := validator.Files(f)
	assert.True(t, ok)
	assert.Len(t, files, 1)

	files, ok = validator.Files([]any{f, f})
	assert.True(t, ok)
	assert.Len(t, files, 2)

	_, ok = validator.Files([]any{f, "b.txt"})
	assert.False(t, ok)

	_, ok = validator.Files("a.txt")
	assert.False(t, ok)

	t.Run("typed slices", func(t *testing.T) {
		files, ok := validator.Files([]validator.FileInfo{f, f, f})
		assert.True(t, ok)
		assert.Len(t, files, 3)

		_, ok = validator.Files([]validator.FileInfo{})
		assert.False(t, ok)

		_, ok = validator.Files([]string{"a.txt"})
		assert.False(t, ok)
	})
}

func TestFileRule(t *testing.T) {
	pdf := validator.FileInfo{Name: "doc.pdf", Ext: "pdf", Bytes: 100}

	t.Run("accepts any file without parameters", func(t *testing.T) {
		passes(t, "upload", "file", pdf)
		v := fails(t, "upload", "file", "doc.pdf")
		assert.Equal(t, []string{"doc.pdf of upload is not a valid file"}, v.Get("upload"))
	})

	t.Run("checks extension list", func(t *testing.T) {
		passes(t, "upload", "file:pdf,docx", pdf)
		passes(t, "upload", "file:.PDF", pdf)
		v := fails(t, "upload", "file:png,jpg", pdf)
		assert.Equal(t, []string{"doc.pdf of upload is not a file of type png,jpg"}, v.Get("upload"))
	})

	t.Run("checks every file of a list", func(t *testing.T) {
		png := validator.FileInfo{Name: "a.png", Ext: "png"}
		passes(t, "uploads", "file:pdf,png", []validator.File{pdf, png})
		fails(t, "uploads", "file:pdf", []validator.File{pdf, png})
	})

	t.Run("checks a typed slice of descriptors", func(t *testing.T) {
		png := validator.FileInfo{Name: "a.png", Ext: "png"}
		passes(t, "uploads", "file:pdf,png", []validator.FileInfo{pdf, png})
		v := fails(t, "uploads", "file:pdf", []validator.FileInfo{pdf, png})
		assert.Equal(t, []string{"doc.pdf,a.png of uploads is not a file of type pdf"}, v.Get("uploads"))
		passes(t, "gallery", "image", []validator.FileInfo{png, png})
	})

	t.Run("accepts empty value", func(t *testing.T) {
		passes(t, "upload", "file:pdf", nil)
		passes(t, "upload", "file:pdf", []validator.File{})
	})
}

func TestMediaRules(t *testing.T) {
	t.Run("image", func(t *testing.T) {
		passes(t, "avatar", "image", validator.FileInfo{Name: "a.png", Ext: "png", MIME: "image/png"})
		passes(t, "avatar", "image", validator.FileInfo{Name: "a.webp", Ext: "webp"})
		passes(t, "avatar", "image", validator.FileInfo{Name: "a.jpg", Ext: "jpg", MIME: "application/octet-stream"})
		v := fails(t, "avatar", "image", validator.FileInfo{Name: "a.pdf", Ext: "pdf"})
		assert.Equal(t, []string{"a.pdf of avatar is not a valid image"}, v.Get("avatar"))
		fails(t, "avatar", "image", validator.FileInfo{Name: "a.png", Ext: "png", MIME: "text/html"})
	})

	t.Run("video", func(t *testing.T) {
		passes(t, "clip", "video", validator.FileInfo{Name: "a.mp4", Ext: "mp4", MIME: "video/mp4"})
		fails(t, "clip", "video", validator.FileInfo{Name: "a.mp3", Ext: "mp3"})
	})

	t.Run("audio", func(t *testing.T) {
		passes(t, "track", "audio", validator.FileInfo{Name: "a.mp3", Ext: "mp3", MIME: "audio/mpeg"})
		passes(t, "track", "audio", validator.FileInfo{Name: "a.ogg", Ext: "ogg", MIME: "application/ogg"})
		fails(t, "track", "audio", validator.FileInfo{Name: "a.png", Ext: "png"})
	})

	t.Run("attachment", func(t *testing.T) {
		passes(t, "doc", "attachment", validator.FileInfo{Name: "a.docx", Ext: "docx"})
		fails(t, "doc", "attachment", validator.FileInfo{Name: "a.exe", Ext: "exe"})
	})
}
