package binder_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/easyvalidator/pkg/binder"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

func TestRecord_JSON(t *testing.T) {
	t.Run("decodes object", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"john","age":15,"tags":["a","b"]}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		rec, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, "john", rec["name"])
		assert.Equal(t, json.Number("15"), rec["age"])
		assert.Equal(t, []any{"a", "b"}, rec["tags"])
	})

	t.Run("rejects non object", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1,2]`))
		req.Header.Set("Content-Type", "application/json")

		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("rejects null", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`null`))
		req.Header.Set("Content-Type", "application/json")

		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")

		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("enforces size limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"0123456789"}`))
		req.Header.Set("Content-Type", "application/json")

		_, err := binder.Record(req, binder.WithMaxJSONSize(8))
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
		assert.Contains(t, err.Error(), "too large")
	})
}

func TestRecord_Form(t *testing.T) {
	form := url.Values{}
	form.Set("name", "john")
	form.Add("tags", "a")
	form.Add("tags", "b")

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec, err := binder.Record(req)
	require.NoError(t, err)
	assert.Equal(t, validator.Record{"name": "john", "tags": []string{"a", "b"}}, rec)
}

func TestRecord_Query(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?q=go&page=2", nil)

	rec, err := binder.Record(req)
	require.NoError(t, err)
	assert.Equal(t, validator.Record{"q": "go", "page": "2"}, rec)
}

func TestRecord_Multipart(t *testing.T) {
	t.Run("describes uploads", func(t *testing.T) {
		body := &bytes.Buffer{}
		w := multipart.NewWriter(body)
		require.NoError(t, w.WriteField("title", "avatar"))

		part, err := w.CreateFormFile("avatar", "me.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n0000000000000000"))
		require.NoError(t, err)

		for _, name := range []string{"a.txt", "b.txt"} {
			part, err := w.CreateFormFile("docs", name)
			require.NoError(t, err)
			_, err = part.Write([]byte("hello"))
			require.NoError(t, err)
		}
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", w.FormDataContentType())

		rec, err := binder.Record(req)
		require.NoError(t, err)
		assert.Equal(t, "avatar", rec["title"])

		avatar, ok := rec["avatar"].(validator.FileInfo)
		require.True(t, ok, "%T", rec["avatar"])
		assert.Equal(t, "me.png", avatar.Name)
		assert.Equal(t, "png", avatar.Extension())
		assert.Equal(t, "image/png", avatar.MIME)

		docs, ok := rec["docs"].([]validator.File)
		require.True(t, ok, "%T", rec["docs"])
		assert.Len(t, docs, 2)
		assert.Equal(t, int64(5), docs[0].Size())
	})

	t.Run("rejects missing boundary", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", "multipart/form-data")

		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})
}

func TestRecord_ContentType(t *testing.T) {
	t.Run("unsupported media type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("<a/>"))
		req.Header.Set("Content-Type", "application/xml")

		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("body without content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=john"))

		_, err := binder.Record(req)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})
}
