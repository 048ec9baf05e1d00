package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesLocalize(t *testing.T) {
	bundle, err := newBundle()
	require.NoError(t, err)

	en := newMessages(bundle, "en-US")
	assert.Equal(t, "Reset", en.T("ResetButton"))
	assert.Equal(t, "Knowledge: kb.yaml (1 symptom)", en.N("KnowledgeSummary", 1, map[string]any{"Source": "kb.yaml", "Count": 1}))

	ja := newMessages(bundle, "ja")
	assert.Equal(t, "CSVエクスポート", ja.T("ExportButton"))

	fallback := newMessages(bundle, "fr-FR")
	assert.Equal(t, "Export CSV", fallback.T("ExportButton"))
	assert.Equal(t, "NoSuchMessage", fallback.T("NoSuchMessage"))

	var missing *messages
	assert.Equal(t, "ResetButton", missing.T("ResetButton"))
}

func TestPreferredLanguages(t *testing.T) {
	system := func() ([]string, error) { return []string{"ja-JP", "en-US"}, nil }
	broken := func() ([]string, error) { return nil, errors.New("no locale") }

	assert.Equal(t, []string{"en"}, preferredLanguages(" en ", system))
	assert.Equal(t, []string{"ja-JP", "en-US"}, preferredLanguages("", system))
	assert.Equal(t, []string{"ja-JP", "en-US"}, preferredLanguages("Auto", system))
	assert.Nil(t, preferredLanguages("", broken))
}
