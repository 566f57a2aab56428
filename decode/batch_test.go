package decode

import (
	"context"
	"testing"

	"github.com/kungfusheep/ncstream/ncerr"
	"github.com/kungfusheep/ncstream/ncstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAllPreservesOrder(t *testing.T) {
	packets := [][]byte{
		buildHeaderFrame(t, &ncstream.Header{Root: &ncstream.Group{Name: "a"}}),
		buildHeaderFrame(t, &ncstream.Header{Root: &ncstream.Group{Name: "b"}}),
		buildHeaderFrame(t, &ncstream.Header{Root: &ncstream.Group{Name: "c"}}),
	}

	results, err := DecodeAll(context.Background(), packets, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Header.Root.Name)
	assert.Equal(t, "b", results[1].Header.Root.Name)
	assert.Equal(t, "c", results[2].Header.Root.Name)
}

func TestDecodeAllStopsOnFirstError(t *testing.T) {
	bad := buildHeaderFrame(t, &ncstream.Header{
		Root: &ncstream.Group{
			Vars: []*ncstream.Variable{
				{Name: "v", DataType: ncstream.Float, Shape: []*ncstream.Dimension{{Name: ncstream.Some("missing")}}},
			},
		},
	})
	packets := [][]byte{
		buildHeaderFrame(t, &ncstream.Header{Root: &ncstream.Group{Name: "ok"}}),
		bad,
	}

	_, err := DecodeAll(context.Background(), packets, 2)
	assert.ErrorIs(t, err, ncerr.ErrInvalidCoords)
}

func TestDecodeAllDefaultsConcurrencyWhenZero(t *testing.T) {
	packets := [][]byte{
		buildHeaderFrame(t, &ncstream.Header{Root: &ncstream.Group{Name: "only"}}),
	}
	results, err := DecodeAll(context.Background(), packets, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "only", results[0].Header.Root.Name)
}
