package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		index int
		want  string
	}{
		{"Wireless Headphones!", 0, "wireless-headphones"},
		{"", 3, "3"},
		{"4K Monitor", 1, "4k-monitor"},
		{"Mesh Wi-Fi Router", 2, "mesh-wi-fi-router"},
		{"  spaced   out  ", 0, "spaced-out"},
		{"---", 7, ""},
		{"Flagship Laptop", 5, "flagship-laptop"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.title, c.index), "Slugify(%q, %d)", c.title, c.index)
	}
}

func TestSlugifyStable(t *testing.T) {
	// the slug feeds bookmarkable URLs, so the same title must always
	// produce the same slug
	first := Slugify("Wireless Headphones", 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slugify("Wireless Headphones", i))
	}
}
