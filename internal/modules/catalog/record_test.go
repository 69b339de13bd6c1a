package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestNormalizeSparseRecord(t *testing.T) {
	p := Normalize(Record{})

	assert.Empty(t, p.ID)
	assert.Empty(t, p.Images)
	assert.Nil(t, p.BuyPrice)
	assert.Nil(t, p.OriginalPrice)
	assert.Equal(t, "Untitled", p.DisplayName())
	assert.Empty(t, p.FirstImage())
	assert.False(t, p.HasDiscount())
}

func TestNormalizeFullRecord(t *testing.T) {
	p := Normalize(Record{
		"id":              float64(42), // JSON numbers decode as float64
		"name":            "  Trail Camera  ",
		"platform":        "Amazon",
		"category":        "Outdoors",
		"tags":            "camera, wildlife",
		"description":     "Weatherproof.",
		"buy_price":       float64(5499),
		"original_price":  "7999", // sheet sometimes exports numbers as strings
		"first_image_url": "https://img.example.com/a.jpg",
		"affiliate_url":   " https://example.com/buy/42 ",
	})

	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "Trail Camera", p.Name)
	require.NotNil(t, p.BuyPrice)
	assert.Equal(t, 5499.0, *p.BuyPrice)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 7999.0, *p.OriginalPrice)
	assert.Equal(t, "https://example.com/buy/42", p.AffiliateURL)
	assert.Equal(t, []string{"camera", "wildlife"}, p.TagList())
}

func TestNum(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want *float64
	}{
		{"float", float64(12.5), f(12.5)},
		{"int", 7, f(7)},
		{"zero is kept", float64(0), f(0)},
		{"numeric string", "99.9", f(99.9)},
		{"padded string", "  42 ", f(42)},
		{"empty string", "", nil},
		{"junk string", "n/a", nil},
		{"nan", math.NaN(), nil},
		{"inf", math.Inf(1), nil},
		{"missing", nil, nil},
		{"bool", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Record{"k": tt.val}.Num("k")
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestStrRendersNumericIDs(t *testing.T) {
	assert.Equal(t, "42", Record{"id": float64(42)}.Str("id"))
	assert.Equal(t, "42.5", Record{"id": float64(42.5)}.Str("id"))
}

func TestSanitizeURL(t *testing.T) {
	assert.Equal(t, "", SanitizeURL("   "))
	assert.Equal(t, "", SanitizeURL("http://exa mple.com/%zz"))
	assert.Equal(t, "https://example.com/a", SanitizeURL("  https://example.com/a  "))
}

func TestCollectImages(t *testing.T) {
	t.Run("slot order preserved", func(t *testing.T) {
		p := Normalize(Record{
			"first_image_url":  "https://img/1",
			"second_image_url": "https://img/2",
			"third_image_url":  "https://img/3",
			"fourth_image_url": "https://img/4",
		})
		assert.Equal(t, []string{"https://img/1", "https://img/2", "https://img/3", "https://img/4"}, p.Images)
	})

	t.Run("misspelled fourth column still works", func(t *testing.T) {
		p := Normalize(Record{
			"first_image_url":  "https://img/1",
			"foutrh_image_url": "https://img/4",
		})
		assert.Equal(t, []string{"https://img/1", "https://img/4"}, p.Images)
	})

	t.Run("correct spelling wins over typo", func(t *testing.T) {
		p := Normalize(Record{
			"fourth_image_url": "https://img/new",
			"foutrh_image_url": "https://img/old",
		})
		assert.Equal(t, []string{"https://img/new"}, p.Images)
	})

	t.Run("duplicates collapse into the earlier slot", func(t *testing.T) {
		p := Normalize(Record{
			"first_image_url":  "https://img/1",
			"second_image_url": "https://img/1",
			"third_image_url":  "https://img/3",
		})
		assert.Equal(t, []string{"https://img/1", "https://img/3"}, p.Images)
	})

	t.Run("blank and invalid slots are skipped", func(t *testing.T) {
		p := Normalize(Record{
			"first_image_url": "   ",
			"third_image_url": "https://img/3",
		})
		assert.Equal(t, []string{"https://img/3"}, p.Images)
	})
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name        string
		buy, orig   *float64
		has         bool
		wantPercent int
	}{
		{"both set, original higher", f(80), f(100), true, 20},
		{"rounding", f(66.6), f(100), true, 33},
		{"equal prices", f(100), f(100), false, 0},
		{"original lower", f(120), f(100), false, 0},
		{"zero buy price", f(0), f(100), false, 0},
		{"missing original", f(80), nil, false, 0},
		{"missing buy", nil, f(100), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{BuyPrice: tt.buy, OriginalPrice: tt.orig}
			assert.Equal(t, tt.has, p.HasDiscount())
			assert.Equal(t, tt.wantPercent, p.DiscountPercent())
		})
	}
}
