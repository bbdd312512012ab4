package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/internal/testutil"
	"github.com/indigo-web/multipart/status"
	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	boundary := testutil.Boundary()
	data := testutil.Body(boundary,
		testutil.FormPart("username", "", "", "Alice"),
		testutil.FormPart("avatar", "me.png", "image/png", "\x89PNG\r\n\x1a\n"),
	)

	check := func(t *testing.T, report Report) {
		require.Equal(t, boundary, report.Boundary)
		require.Len(t, report.Parts, 2)

		username := report.Parts[0]
		require.Equal(t, "username", username.Name)
		require.Empty(t, username.Filename)
		require.Equal(t, []Header{{Field: "Content-Disposition", Value: `form-data; name="username"`}}, username.Headers)
		require.Equal(t, 5, username.Size)
		require.Equal(t, fmt.Sprintf("%016x", xxhash.Sum64String("Alice")), username.Digest)
		require.Equal(t, "Ali", username.Preview)

		avatar := report.Parts[1]
		require.Equal(t, "avatar", avatar.Name)
		require.Equal(t, "me.png", avatar.Filename)
		require.Len(t, avatar.Headers, 2)
		require.Equal(t, 8, avatar.Size)
		require.True(t, avatar.Binary)
		require.Empty(t, avatar.Preview)
	}

	t.Run("plain", func(t *testing.T) {
		cfg := config.Default()
		cfg.Stream.ReadBufferSize = 16
		report, err := dump(bytes.NewReader(data), cfg, boundary, false, 3)
		require.NoError(t, err)
		check(t, report)
	})

	t.Run("chunked", func(t *testing.T) {
		report, err := dump(bytes.NewReader(testutil.Chunked(data, 10)), config.Default(), boundary, true, 3)
		require.NoError(t, err)
		check(t, report)
	})

	t.Run("filename before name", func(t *testing.T) {
		data := testutil.Body(boundary, testutil.Part{
			Headers: []testutil.Header{{Key: "Content-Disposition", Value: `form-data; filename="a.txt"; name="file"`}},
			Body:    "text",
		})
		report, err := dump(bytes.NewReader(data), config.Default(), boundary, false, 3)
		require.NoError(t, err)
		require.Len(t, report.Parts, 1)
		require.Equal(t, "file", report.Parts[0].Name)
		require.Equal(t, "a.txt", report.Parts[0].Filename)
	})

	t.Run("non-ascii preview", func(t *testing.T) {
		data := testutil.Body(boundary, testutil.FormPart("greeting", "", "", "Привет"))
		report, err := dump(bytes.NewReader(data), config.Default(), boundary, false, 3)
		require.NoError(t, err)
		require.False(t, report.Parts[0].Binary)
		require.Equal(t, "П", report.Parts[0].Preview)
	})

	t.Run("partial report on error", func(t *testing.T) {
		report, err := dump(bytes.NewReader(data[:len(data)-10]), config.Default(), boundary, false, 3)
		require.ErrorIs(t, err, status.ErrIncomplete)
		require.Len(t, report.Parts, 2)
		require.Equal(t, "username", report.Parts[0].Name)
	})

	t.Run("json", func(t *testing.T) {
		report, err := dump(bytes.NewReader(data), config.Default(), boundary, false, 64)
		require.NoError(t, err)

		var buff strings.Builder
		require.NoError(t, json.NewEncoder(&buff).Encode(report))
		require.Contains(t, buff.String(), `"name":"username"`)
		require.Contains(t, buff.String(), `"filename":"me.png"`)
		require.Contains(t, buff.String(), `"preview":"Alice"`)
		require.Contains(t, buff.String(), `"binary":true`)
	})
}

func TestPreview(t *testing.T) {
	tcs := []struct {
		Name   string
		Body   string
		N      int
		Want   string
		Binary bool
	}{
		{"ascii", "hello", 3, "hel", false},
		{"shorter than preview", "hi", 10, "hi", false},
		{"cut inside a character", "Привет", 3, "П", false},
		{"cut at a character boundary", "Привет", 4, "Пр", false},
		{"cut inside the first character", "Привет", 1, "", false},
		{"three-byte characters", "日本語", 5, "日", false},
		{"empty", "", 3, "", false},
		{"binary", "\x89PNG", 3, "", true},
		{"invalid past the preview", "abc\xff", 2, "", true},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			text, binary := preview([]byte(tc.Body), tc.N)
			require.Equal(t, tc.Want, text)
			require.Equal(t, tc.Binary, binary)
		})
	}
}

func TestResolveBoundary(t *testing.T) {
	b, err := resolveBoundary("explicit", "multipart/form-data; boundary=implicit")
	require.NoError(t, err)
	require.Equal(t, "explicit", b)

	b, err = resolveBoundary("", "multipart/form-data; boundary=implicit")
	require.NoError(t, err)
	require.Equal(t, "implicit", b)

	_, err = resolveBoundary("", "text/plain")
	require.ErrorIs(t, err, status.ErrNotMultipart)

	_, err = resolveBoundary("", "")
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MPDUMP_PREVIEW", "12")
	t.Setenv("MPDUMP_CHUNKED", "true")
	t.Setenv("MPDUMP_INDENT", "false")
	t.Setenv("BEAVER_READ_BUFFER_SIZE", "1")

	env, err := loadEnv()
	require.NoError(t, err)
	require.Equal(t, 12, env.Preview)
	require.True(t, env.Chunked)
	require.False(t, env.Indent)
	require.Equal(t, 4096, env.ReadBufferSize)
	require.Equal(t, int64(536870912), env.MaxBodySize)
}
