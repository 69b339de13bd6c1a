package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Record is one raw product row exactly as the feed returns it. The feed
// is a converted spreadsheet, so columns come and go and extra keys are
// normal; every read goes through an accessor, nothing is trusted by shape.
type Record map[string]any

// Str reads a field as a display string. Numbers are rendered without a
// trailing ".0" so numeric IDs stay usable as routing keys.
func (r Record) Str(key string) string {
	return stringify(r[key])
}

// Num reads a field as an optional number. NaN, Inf, empty strings and
// junk all normalize to absent. Zero is a legitimate price and is kept.
func (r Record) Num(key string) *float64 {
	switch v := r[key].(type) {
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return finite(float64(v))
	case int64:
		return finite(float64(v))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return finite(n)
	default:
		return nil
	}
}

// firstOf returns the first key that holds a non-empty string value.
func (r Record) firstOf(keys ...string) string {
	for _, k := range keys {
		if s := r.Str(k); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func finite(n float64) *float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// SanitizeURL trims and percent-encodes a candidate URL. Anything that
// does not survive the round trip comes back as "" (treated as no image),
// it never propagates an error.
func SanitizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	return u.String()
}

// Image slot columns, in precedence order. The fourth slot has shipped
// misspelled from the sheet since day one; both spellings are part of the
// upstream contract and must stay supported.
const (
	keyFirstImage      = "first_image_url"
	keySecondImage     = "second_image_url"
	keyThirdImage      = "third_image_url"
	keyFourthImage     = "fourth_image_url"
	keyFourthImageTypo = "foutrh_image_url"
)

const maxImages = 4

// Normalize converts a raw feed row into the canonical product the rest
// of the app renders. Pure and total: a maximally sparse record still
// yields a usable value.
func Normalize(r Record) Product {
	return Product{
		ID:            r.Str("id"),
		Name:          strings.TrimSpace(r.Str("name")),
		Images:        collectImages(r),
		Platform:      strings.TrimSpace(r.Str("platform")),
		Category:      strings.TrimSpace(r.Str("category")),
		Tags:          strings.TrimSpace(r.Str("tags")),
		Description:   strings.TrimSpace(r.Str("description")),
		BuyPrice:      r.Num("buy_price"),
		OriginalPrice: r.Num("original_price"),
		AffiliateURL:  SanitizeURL(r.Str("affiliate_url")),
	}
}

func collectImages(r Record) []string {
	candidates := []string{
		r.Str(keyFirstImage),
		r.Str(keySecondImage),
		r.Str(keyThirdImage),
		r.firstOf(keyFourthImage, keyFourthImageTypo),
	}

	seen := make(map[string]struct{}, maxImages)
	out := make([]string, 0, maxImages)
	for _, c := range candidates {
		u := SanitizeURL(c)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
		if len(out) == maxImages {
			break
		}
	}
	return out
}
