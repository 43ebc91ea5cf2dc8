package seed_test

import (
	"strings"
	"testing"
	"time"

	"fulfillment/internal/adapters/in/seed"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOrdersCSV(t *testing.T) {
	input := strings.Join([]string{
		"id,product,zone,created_at,quantity,status",
		"ORD-0001,Tundra Eau de Parfum,Zona Sur,2024-03-08T09:30:00Z,2,processing",
		"ORD-0002,Set LeBoret No. 1,Zona Bajío–Occidente,2024-03-09,1,",
	}, "\n")

	seeds, err := seed.ReadOrdersCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, seeds, 2)

	assert.Equal(t, "ORD-0001", seeds[0].ID)
	assert.Equal(t, "Tundra Eau de Parfum", seeds[0].Product)
	assert.Equal(t, "Zona Sur", seeds[0].Zone)
	assert.Equal(t, time.Date(2024, 3, 8, 9, 30, 0, 0, time.UTC), seeds[0].CreatedAt)
	assert.Equal(t, 2, seeds[0].Quantity)
	assert.Equal(t, "processing", seeds[0].Status)
	assert.Nil(t, seeds[0].HandlerID)

	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), seeds[1].CreatedAt)
	assert.Empty(t, seeds[1].Status, "blank status is left for the command to default")
}

func TestReadOrdersCSV_BadDate(t *testing.T) {
	input := "id,product,zone,created_at,quantity,status\nORD-0001,Tundra,Zona Sur,yesterday,2,pending\n"

	_, err := seed.ReadOrdersCSV(strings.NewReader(input))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadOrdersCSV_BadQuantity(t *testing.T) {
	input := "id,product,zone,created_at,quantity,status\nORD-0001,Tundra,Zona Sur,2024-03-08,many,pending\n"

	_, err := seed.ReadOrdersCSV(strings.NewReader(input))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestReadOrdersCSV_Empty(t *testing.T) {
	seeds, err := seed.ReadOrdersCSV(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, seeds)
}
