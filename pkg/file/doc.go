// Package file converts multipart uploads into validator.FileInfo values.
//
// Rules never see the upload itself: Describe reads the sanitized name, the
// extension, the size and a content-sniffed MIME type, and the result is
// placed in the record under the form field name.
//
//	infos, err := file.DescribeAll(r.MultipartForm.File["avatar"])
package file
