package validator

import (
	"context"
	"reflect"
	"slices"
	"strings"
)

// File is the upload descriptor capability: rules see only the extension and
// the size in bytes, never the upload itself.
type File interface {
	Extension() string
	Size() int64
}

// FileInfo is a plain File implementation. MIME is optional; when set, the
// media rules also require it to belong to the expected family.
type FileInfo struct {
	Name  string
	Ext   string
	Bytes int64
	MIME  string
}

// Extension returns the lower-cased extension without the leading dot.
func (f FileInfo) Extension() string { return normalizeExt(f.Ext) }
func (f FileInfo) Size() int64       { return f.Bytes }
func (f FileInfo) MIMEType() string  { return f.MIME }
func (f FileInfo) String() string    { return f.Name }

type mimeTyped interface {
	MIMEType() string
}

// Files returns the descriptors held by v: a single File or any slice whose
// elements are all Files.
func Files(v any) ([]File, bool) {
	switch t := v.(type) {
	case File:
		return []File{t}, true
	case []File:
		return t, len(t) > 0
	case []any:
		out := make([]File, 0, len(t))
		for _, item := range t {
			f, ok := item.(File)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, len(out) > 0
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]File, 0, rv.Len())
	for i := range rv.Len() {
		f, ok := rv.Index(i).Interface().(File)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, len(out) > 0
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// fileKind is an extension allow-list plus the MIME family it belongs to.
type fileKind struct {
	name       string
	extensions []string
	mimePrefix []string
}

var (
	imageKind = fileKind{
		name:       "image",
		extensions: []string{"jpg", "jpeg", "png", "gif", "webp", "svg", "bmp", "tiff", "tif", "heic", "heif", "avif", "jxl"},
		mimePrefix: []string{"image/"},
	}
	videoKind = fileKind{
		name:       "video",
		extensions: []string{"mp4", "mpeg", "mpg", "ogg", "webm", "mov", "avi", "flv", "3gp", "mkv", "av1"},
		mimePrefix: []string{"video/", "application/ogg"},
	}
	audioKind = fileKind{
		name:       "audio",
		extensions: []string{"mp3", "ogg", "wav", "webm", "aac", "mp4", "m4a", "opus", "flac", "3gp", "3g2"},
		mimePrefix: []string{"audio/", "application/ogg", "video/mp4", "video/webm"},
	}
	attachmentKind = fileKind{
		name:       "attachment",
		extensions: []string{"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt", "csv", "rtf", "odt", "ods", "zip", "rar", "7z", "tar", "gz"},
	}
)

// fileRule accepts a file whose extension is allowed and, when the
// descriptor knows its MIME type, whose type matches one of mimePrefix.
type fileRule struct {
	Base
	extensions []string
	mimePrefix []string
}

func (r *fileRule) CheckValue(context.Context) {
	files, ok := Files(r.Value())
	if !ok {
		r.Fail()
		return
	}
	for _, f := range files {
		if f == nil || !r.accepts(f) {
			r.Fail()
			return
		}
	}
	r.SetStatus(true)
}

func (r *fileRule) accepts(f File) bool {
	if len(r.extensions) > 0 && !slices.Contains(r.extensions, normalizeExt(f.Extension())) {
		return false
	}
	if len(r.mimePrefix) == 0 {
		return true
	}
	mt, ok := f.(mimeTyped)
	if !ok || mt.MIMEType() == "" || mt.MIMEType() == "application/octet-stream" {
		return true
	}
	return slices.ContainsFunc(r.mimePrefix, func(p string) bool {
		return strings.HasPrefix(mt.MIMEType(), p)
	})
}

// newFile handles "file[:ext,...]". Without parameters any file passes.
func newFile(in Input) (Rule, error) {
	exts := make([]string, 0, len(in.Params))
	for _, p := range in.Params {
		if ext := normalizeExt(p); ext != "" {
			exts = append(exts, ext)
		}
	}
	template := "{VALUE} of {FIELD} is not a valid file"
	if len(exts) > 0 {
		template = "{VALUE} of {FIELD} is not a file of type {EXTENSIONS}"
	}
	r := &fileRule{Base: NewBase(in, template), extensions: exts}
	r.SetPlaceholder("EXTENSIONS", strings.Join(exts, ","))
	return r, nil
}

func newFileKind(kind fileKind) Constructor {
	return func(in Input) (Rule, error) {
		r := &fileRule{
			Base:       NewBase(in, "{VALUE} of {FIELD} is not a valid "+kind.name),
			extensions: kind.extensions,
			mimePrefix: kind.mimePrefix,
		}
		r.SetPlaceholder("EXTENSIONS", strings.Join(kind.extensions, ","))
		return r, nil
	}
}
