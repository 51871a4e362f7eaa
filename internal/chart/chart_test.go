package chart_test

import (
	"encoding/base64"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linhares06/expensetracker-app/internal/chart"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRender(t *testing.T) {
	labels := []string{"Food", "Transport", "Rent"}
	values := []decimal.Decimal{
		decimal.RequireFromString("62.50"),
		decimal.RequireFromString("12.50"),
		decimal.RequireFromString("25"),
	}

	png, err := chart.Render(labels, values)
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:len(pngMagic)])
}

func TestRender_LengthMismatch(t *testing.T) {
	labels := []string{"Food", "Transport"}
	values := []decimal.Decimal{decimal.RequireFromString("10")}

	_, err := chart.Render(labels, values)
	assert.ErrorIs(t, err, chart.ErrLengthMismatch)
}

func TestRender_NoData(t *testing.T) {
	_, err := chart.Render(nil, nil)
	assert.ErrorIs(t, err, chart.ErrNoData)
}

func TestRenderBase64(t *testing.T) {
	labels := []string{"Food"}
	values := []decimal.Decimal{decimal.RequireFromString("42")}

	encoded, err := chart.RenderBase64(labels, values)
	require.NoError(t, err)

	png, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:len(pngMagic)])
}
