// Package chart renders the spending distribution pie served on the
// home page.
package chart

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	gochart "github.com/wcharczuk/go-chart/v2"
)

const (
	title = "Expense Distribution by Category"

	width  = 512
	height = 512
)

var (
	ErrLengthMismatch = errors.New("labels and values must have the same length")
	ErrNoData         = errors.New("no values to chart")
)

// Render draws a pie of the given series as a PNG. Slice labels carry
// the category name and its share of the total to one decimal place,
// e.g. "Food 62.5%". The two slices must line up; amounts only shape
// slice geometry here, so the float conversion never feeds back into any
// stored or reported number.
func Render(labels []string, values []decimal.Decimal) ([]byte, error) {
	if len(labels) != len(values) {
		return nil, ErrLengthMismatch
	}

	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}

	if total.IsZero() {
		return nil, ErrNoData
	}

	hundred := decimal.NewFromInt(100)

	pie := gochart.PieChart{
		Title:  title,
		Width:  width,
		Height: height,
		Values: make([]gochart.Value, 0, len(values)),
	}

	for i, v := range values {
		share := v.Div(total).Mul(hundred)

		pie.Values = append(pie.Values, gochart.Value{
			Value: v.InexactFloat64(),
			Label: fmt.Sprintf("%s %s%%", labels[i], share.StringFixed(1)),
		})
	}

	var buf bytes.Buffer
	if err := pie.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering pie chart: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderBase64 encodes the PNG for inline embedding in an img tag.
func RenderBase64(labels []string, values []decimal.Decimal) (string, error) {
	png, err := Render(labels, values)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
