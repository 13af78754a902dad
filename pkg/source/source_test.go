package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestListSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "")
	writeFile(t, dir, "a.txt", "")
	writeFile(t, dir, "notes.md", "")
	writeFile(t, dir, "ignore.json", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	names, err := List(dir, []string{"*.txt", "*.md"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "notes.md"}, names)
}

func TestListMissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), []string{"*"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecordText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2024-05-01-picnic.txt", "Title: Picnic\nDate: 2024-05-01\nNotes: bring food\nand drink\n")

	rec, err := ReadRecord(dir, "2024-05-01-picnic.txt")
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01-picnic.txt", rec.ID)
	assert.Equal(t, "Picnic", rec.Fields["title"])
	assert.Equal(t, "2024-05-01", rec.Fields["date"])
	assert.Equal(t, "bring food\nand drink", rec.Fields["notes"])
}

func TestReadRecordMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "picnic.md", "---\ntitle: Picnic\ndate: 2024-05-01\n---\nBring food and drink.\n")

	rec, err := ReadRecord(dir, "picnic.md")
	require.NoError(t, err)

	assert.Equal(t, "Picnic", rec.Fields["title"])
	assert.Equal(t, "2024-05-01", rec.Fields["date"])
	assert.Equal(t, "Bring food and drink.", rec.Fields["description"])
}

func TestReadRecordMarkdownExplicitDescriptionWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "picnic.md", "---\ntitle: Picnic\ndescription: From frontmatter\n---\nBody text.\n")

	rec, err := ReadRecord(dir, "picnic.md")
	require.NoError(t, err)
	assert.Equal(t, "From frontmatter", rec.Fields["description"])
}

func TestReadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.json", `{"id": "x", "tags": ["a"]}`)
	writeFile(t, dir, "bad.json", `{"id":`)

	obj, err := ReadJSON(filepath.Join(dir, "ok.json"))
	require.NoError(t, err)
	assert.Equal(t, "x", obj["id"])

	_, err = ReadJSON(filepath.Join(dir, "bad.json"))
	assert.Error(t, err)
}
