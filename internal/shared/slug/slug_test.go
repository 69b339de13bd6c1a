package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Electronics", "electronics"},
		{"Home & Office", "home-office"},
		{"  Smart   Gadgets!  ", "smart-gadgets"},
		{"Top 10 Deals", "top-10-deals"},
		{"", "untitled"},
		{"!!!", "untitled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromName(tt.in), "FromName(%q)", tt.in)
	}
}
