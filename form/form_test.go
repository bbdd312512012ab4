package form

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForm(t *testing.T) {
	f := Form{
		{Name: "tag", Value: "a"},
		{Name: "avatar", Filename: "me.png", Value: "png"},
		{Name: "tag", Value: "b"},
		{Name: "backup", Filename: "me.png", Value: "png2"},
	}

	t.Run("name", func(t *testing.T) {
		data, found := f.Name("tag")
		require.True(t, found)
		require.Equal(t, "a", data.Value)

		_, found = f.Name("missing")
		require.False(t, found)
	})

	t.Run("names", func(t *testing.T) {
		var values []string
		for data := range f.Names("tag") {
			values = append(values, data.Value)
		}

		require.Equal(t, []string{"a", "b"}, values)
	})

	t.Run("names early break", func(t *testing.T) {
		for data := range f.Names("tag") {
			require.Equal(t, "a", data.Value)
			break
		}
	})

	t.Run("files", func(t *testing.T) {
		data, found := f.File("me.png")
		require.True(t, found)
		require.Equal(t, "avatar", data.Name)
		require.True(t, data.IsFile())
		require.Len(t, slices.Collect(f.Files("me.png")), 2)

		_, found = f.File("")
		require.True(t, found, "entries without a filename match the empty one")
	})
}
