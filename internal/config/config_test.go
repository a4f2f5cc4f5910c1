package config_test

import (
	"strings"
	"testing"

	"github.com/ruminaider/filterlist/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Run("full format", func(t *testing.T) {
		input := []byte(`title: Pick a fruit
placeholder: Type to filter
filter: an
selected: banana
headers: false
row_height: 2
groups:
  - name: Fruit
    items:
      - id: apple
        text: Apple
        detail: crunchy
      - banana
  - name: Veg
    items:
      - id: carrot
`)
		doc, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "Pick a fruit", doc.Title)
		assert.Equal(t, "Type to filter", doc.Placeholder)
		assert.Equal(t, "an", doc.Filter)
		assert.Equal(t, "banana", doc.Selected)
		assert.False(t, doc.ShowHeaders())
		assert.Equal(t, 2, doc.RowHeight)
		require.Len(t, doc.Groups, 2)

		apple := doc.Groups[0].Items[0]
		assert.Equal(t, "apple", apple.ID())
		assert.Equal(t, "Apple", apple.Text())
		assert.Equal(t, "crunchy", apple.Description())

		banana := doc.Groups[0].Items[1]
		assert.Equal(t, "banana", banana.ID())
		assert.Equal(t, "banana", banana.Text())

		// Text falls back to the id.
		assert.Equal(t, "carrot", doc.Groups[1].Items[0].Text())
		assert.Equal(t, 3, doc.ItemCount())
	})

	t.Run("empty document", func(t *testing.T) {
		doc, err := config.Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, doc.Groups)
		assert.True(t, doc.ShowHeaders())
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})

	t.Run("item of the wrong shape", func(t *testing.T) {
		_, err := config.Parse([]byte("groups:\n  - name: g\n    items:\n      - [a, b]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item must be a string or a mapping")
	})
}

func TestLoad(t *testing.T) {
	doc, err := config.Load(strings.NewReader("groups:\n  - name: g\n    items: [x, y]\n"))
	require.NoError(t, err)
	require.Len(t, doc.Groups, 1)
	assert.Len(t, doc.Groups[0].Items, 2)
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := config.Document{
		Title: "t",
		Groups: []config.Group{
			{Name: "g", Items: []config.Item{{Key: "a", Label: "Alpha"}}},
		},
	}
	data, err := config.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id: a")

	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		doc := config.Document{
			Selected: "b",
			Groups: []config.Group{
				{Name: "one", Items: []config.Item{{Key: "a"}, {Key: "b"}}},
			},
		}
		assert.NoError(t, doc.Validate())
	})

	t.Run("reports every problem", func(t *testing.T) {
		doc := config.Document{
			RowHeight: -1,
			Selected:  "missing",
			Groups: []config.Group{
				{Name: "one", Items: []config.Item{{Key: "a"}, {Label: "no id"}}},
				{Name: "two", Items: []config.Item{{Key: "a"}}},
			},
		}
		err := doc.Validate()
		require.Error(t, err)
		msg := err.Error()
		assert.Contains(t, msg, "row_height")
		assert.Contains(t, msg, "missing id")
		assert.Contains(t, msg, `duplicate id "a" in groups "one" and "two"`)
		assert.Contains(t, msg, `selected id "missing" not found`)
	})
}

func TestListGroups(t *testing.T) {
	doc := config.Document{
		Groups: []config.Group{
			{Name: "one", Items: []config.Item{{Key: "a", Label: "Alpha"}}},
			{Name: "empty"},
		},
	}
	groups := doc.ListGroups()
	require.Len(t, groups, 2)
	assert.Equal(t, "one", groups[0].Identifier)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "Alpha", groups[0].Items[0].Text())
	assert.Empty(t, groups[1].Items)
}

func TestFind(t *testing.T) {
	doc := config.Document{Groups: []config.Group{{Name: "g", Items: []config.Item{{Key: "a"}}}}}
	it, ok := doc.Find("a")
	assert.True(t, ok)
	assert.Equal(t, "a", it.Key)

	_, ok = doc.Find("b")
	assert.False(t, ok)
}
