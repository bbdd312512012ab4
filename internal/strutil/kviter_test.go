package strutil

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

type strpair struct {
	K, V string
}

func collect(i iter.Seq2[string, string]) (pairs []strpair) {
	for k, v := range i {
		pairs = append(pairs, strpair{k, v})
	}

	return pairs
}

func TestWalkParams(t *testing.T) {
	t.Run("single pair", func(t *testing.T) {
		values := collect(WalkParams("boundary=abc"))
		require.Equal(t, []strpair{{"boundary", "abc"}}, values)
	})

	t.Run("multiple pairs", func(t *testing.T) {
		values := collect(WalkParams(`name="file1"; filename="a.txt";`))
		require.Equal(t, []strpair{{"name", "file1"}, {"filename", "a.txt"}}, values)
	})

	t.Run("whitespace around equal sign", func(t *testing.T) {
		values := collect(WalkParams(`charset = utf-8 ; boundary= "x y"`))
		require.Equal(t, []strpair{{"charset", "utf-8"}, {"boundary", "x y"}}, values)
	})

	t.Run("semicolon in quotes", func(t *testing.T) {
		values := collect(WalkParams(`filename="a;b.txt"; name=f`))
		require.Equal(t, []strpair{{"filename", "a;b.txt"}, {"name", "f"}}, values)
	})

	t.Run("escaped quote", func(t *testing.T) {
		values := collect(WalkParams(`filename="a\"b"`))
		require.Equal(t, []strpair{{"filename", `a"b`}}, values)
	})

	t.Run("no value", func(t *testing.T) {
		values := collect(WalkParams("charset=utf8; boundary"))
		require.Equal(t, []strpair{{"charset", "utf8"}, {"", ""}}, values)
	})

	t.Run("unterminated quote", func(t *testing.T) {
		values := collect(WalkParams(`boundary="abc`))
		require.Equal(t, []strpair{{"", ""}}, values)
	})

	t.Run("early break", func(t *testing.T) {
		for k := range WalkParams("a=1; b=2") {
			require.Equal(t, "a", k)
			break
		}
	})
}

func TestCutHeader(t *testing.T) {
	value, params := CutHeader(" multipart/form-data ;  boundary=abc ")
	require.Equal(t, "multipart/form-data", value)
	require.Equal(t, "boundary=abc", params)

	value, params = CutHeader("text/plain")
	require.Equal(t, "text/plain", value)
	require.Empty(t, params)
}

func TestUnquote(t *testing.T) {
	require.Equal(t, "abc", Unquote(`"abc"`))
	require.Equal(t, `"abc`, Unquote(`"abc`))
	require.Equal(t, `a"b\`, Unquote(`"a\"b\\"`))
	require.Equal(t, "", Unquote(`""`))
}
