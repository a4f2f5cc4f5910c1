package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/filterlist/internal/config"
	"github.com/ruminaider/filterlist/internal/filterlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const produceDoc = `title: Produce
groups:
  - name: Fruit
    items:
      - id: apple
        text: Apple
      - banana
  - name: Veg
    items:
      - id: pea
        text: Green Pea
        detail: round and green
`

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "filterlist "+version+"\n", out)
}

func TestValidateCmd(t *testing.T) {
	out, err := execute(t, "", "validate", writeDoc(t, produceDoc))
	require.NoError(t, err)
	assert.Equal(t, "ok: 2 group(s), 3 item(s)\n", out)
}

func TestValidateCmd_Stdin(t *testing.T) {
	out, err := execute(t, produceDoc, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "3 item(s)")
}

func TestValidateCmd_Invalid(t *testing.T) {
	doc := `groups:
  - name: a
    items: [x, x]
`
	_, err := execute(t, "", "validate", writeDoc(t, doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate id "x"`)
}

func TestValidateCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "", "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening document")
}

func TestListCmd_Filter(t *testing.T) {
	out, err := execute(t, "", "list", "--filter", "an", writeDoc(t, produceDoc))
	require.NoError(t, err)
	assert.Equal(t, "[Fruit]\n> banana\tbanana\n", out)
}

func TestPrintRows(t *testing.T) {
	doc, err := config.Parse([]byte(produceDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	printRows(&buf, filterlist.Flatten(doc.ListGroups(), "", nil, true))
	assert.Equal(t, "[Fruit]\n  apple\tApple\n  banana\tbanana\n[Veg]\n  pea\tGreen Pea\n", buf.String())

	buf.Reset()
	pea, _ := doc.Find("pea")
	printRows(&buf, filterlist.Flatten(doc.ListGroups(), "", pea, false))
	assert.Equal(t, "  apple\tApple\n  banana\tbanana\n> pea\tGreen Pea\n", buf.String())
}

func TestWriteItem(t *testing.T) {
	it := config.Item{Key: "pea", Label: "Green Pea", Detail: "round and green"}

	var buf bytes.Buffer
	require.NoError(t, writeItem(&buf, it, "text"))
	assert.Equal(t, "pea\n", buf.String())

	buf.Reset()
	require.NoError(t, writeItem(&buf, it, "yaml"))
	assert.Equal(t, "id: pea\ntext: Green Pea\ndetail: round and green\n", buf.String())

	buf.Reset()
	require.NoError(t, writeItem(&buf, filterlist.Item{Key: "k", Label: "L"}, "yaml"))
	assert.Equal(t, "id: k\ntext: L\n", buf.String())

	assert.Error(t, writeItem(&buf, it, "json"))
}

func TestSelectedItem(t *testing.T) {
	doc, err := config.Parse([]byte(produceDoc))
	require.NoError(t, err)

	assert.Nil(t, selectedItem(doc))
	doc.Selected = "banana"
	require.NotNil(t, selectedItem(doc))
	assert.Equal(t, "banana", selectedItem(doc).ID())
	doc.Selected = "kiwi"
	assert.Nil(t, selectedItem(doc))
}
