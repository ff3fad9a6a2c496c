package intl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestGetSupportedLanguages(t *testing.T) {
	assert.Len(t, GetSupportedLanguages(nil), 2)

	filtered := GetSupportedLanguages([]string{"ne", "xx"})
	if assert.Len(t, filtered, 1) {
		assert.Equal(t, language.Nepali, filtered[0].Tag)
	}
}

func TestT_FallsBackToMessageID(t *testing.T) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.MustParseMessageFileBytes([]byte(`{"Greeting": "Hello {{.Name}}"}`), "en.json")

	ctx := WithLocalizer(context.Background(), i18n.NewLocalizer(bundle, "ne"))

	assert.Equal(t, "Hello Ram", T(ctx, "Greeting", map[string]interface{}{"Name": "Ram"}))
	assert.Equal(t, "Missing.Key", T(ctx, "Missing.Key"))
	assert.Equal(t, "Missing.Key", T(context.Background(), "Missing.Key"))
	assert.Panics(t, func() { MustT(context.Background(), "Greeting") })
}
