package testutil

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFSReadFile(t *testing.T) {
	m := NewMemoryFS().
		AddFile("components/button/button.tpl", "<button>{{.label}}</button>")

	data, err := m.ReadFile("components/button/button.tpl")
	require.NoError(t, err)
	assert.Equal(t, "<button>{{.label}}</button>", string(data))

	// Absolute and relative forms address the same file
	data, err = m.ReadFile("/components/button/button.tpl")
	require.NoError(t, err)
	assert.Equal(t, "<button>{{.label}}</button>", string(data))

	assert.Equal(t, 2, m.ReadCount("components/button/button.tpl"))
}

func TestMemoryFSReadFileMissing(t *testing.T) {
	m := NewMemoryFS()

	_, err := m.ReadFile("nope.tpl")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFSReadDirSorted(t *testing.T) {
	m := NewMemoryFS().
		AddFile("src/zebra.css", "").
		AddFile("src/alpha.css", "").
		AddFile("src/middle.css", "").
		AddDir("src/nested")

	entries, err := m.ReadDir("src")
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.Equal(t, []string{"alpha.css", "middle.css", "nested", "zebra.css"}, names)
	assert.True(t, entries[2].IsDir())
}

func TestMemoryFSErrorInjection(t *testing.T) {
	boom := assert.AnError
	m := NewMemoryFS().
		AddFile("src/ok.tpl", "fine").
		WithError("src/broken.tpl", boom)

	_, err := m.ReadFile("src/broken.tpl")
	assert.ErrorIs(t, err, boom)

	_, err = m.ReadFile("src/ok.tpl")
	assert.NoError(t, err)
}

func TestMemoryFSStat(t *testing.T) {
	m := NewMemoryFS().
		AddFile("a/b/c.txt", "hello")

	info, err := m.Stat("a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	assert.False(t, info.IsDir())

	info, err = m.Stat("a/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
