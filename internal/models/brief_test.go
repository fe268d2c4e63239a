package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBriefJSONRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	designer := uuid.New()

	original := Brief{
		UUID:                uuid.New(),
		Summary:             "Premium minimal merch for a bakery-tech startup.",
		CoreDesignDirection: datatypes.NewJSONSlice([]string{"minimal", "warm", "confident"}),
		VisualLanguage:      datatypes.NewJSONSlice([]string{"soft geometry", "bread motifs"}),
		ColorAndTypography:  datatypes.NewJSONSlice([]string{"cream base", "rust accents", "grotesk type"}),
		ProductSpecificNotes: datatypes.NewJSONType(ProductNotes{
			Tee:         []string{"heavyweight cotton", "small chest mark"},
			TeamJacket:  []string{"embroidered back hit"},
			FounderWear: []string{"tonal premium knit"},
		}),
		Dos:               datatypes.NewJSONSlice([]string{"keep it quiet", "use the wordmark"}),
		Donts:             datatypes.NewJSONSlice([]string{"no gradients", "no slogans on sleeves"}),
		ClosingToCustomer: "Thanks, your designer will take it from here.",
		CustomerEmail:     "founder@breadbox.example",
		Status:            BriefStatusOpen,
		DesignerID:        &designer,
		AssignedAt:        &now,
		CreatedAt:         now,
	}

	payload, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Brief
	require.NoError(t, json.Unmarshal(payload, &decoded))

	// array sections keep their order
	assert.Equal(t, []string{"minimal", "warm", "confident"}, []string(decoded.CoreDesignDirection))
	assert.Equal(t, []string{"cream base", "rust accents", "grotesk type"}, []string(decoded.ColorAndTypography))
	assert.Equal(t, []string{"heavyweight cotton", "small chest mark"}, decoded.ProductSpecificNotes.Data().Tee)

	// structural identity: a second marshal yields the same document
	payload2, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(payload2))
}

func TestBriefWireSchemaKeys(t *testing.T) {
	payload, err := json.Marshal(Brief{})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(payload, &doc))

	for _, key := range []string{
		"summary",
		"core_design_direction",
		"visual_language",
		"color_and_typography",
		"product_specific_notes",
		"dos",
		"donts",
		"closing_to_customer",
		"status",
	} {
		assert.Contains(t, doc, key)
	}
}
