package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestKnown(t *testing.T) {
	assert.True(t, Known(TotalDebt))
	assert.True(t, Known(DebtByCreditor))
	assert.False(t, Known("STOCK_PRICE"))
	assert.False(t, Known(""))
	assert.False(t, Known("total_debt"), "names are case sensitive")
}

func TestNamesCoversVocabulary(t *testing.T) {
	names := Names()
	assert.Len(t, names, 9)
	for _, name := range names {
		assert.True(t, Known(name))
	}
}

func TestDecodeMetadataTypedVariants(t *testing.T) {
	raw := datatypes.JSON(`{"domestic": 314400000000, "external": 330200000000, "currency": "GHS"}`)
	meta, err := DecodeMetadata(TotalDebt, raw)
	require.NoError(t, err)

	debt, ok := meta.(*DebtMetadata)
	require.True(t, ok)
	assert.Equal(t, 314400000000.0, debt.Domestic)
	assert.Equal(t, 330200000000.0, debt.External)
	assert.Equal(t, "GHS", debt.Currency)
}

func TestDecodeMetadataUnknownIndicator(t *testing.T) {
	_, err := DecodeMetadata("UNKNOWN", datatypes.JSON(`{}`))
	assert.Error(t, err)
}

func TestDecodeMetadataEmptyYieldsZeroValue(t *testing.T) {
	meta, err := DecodeMetadata(InflationRate, nil)
	require.NoError(t, err)

	inflation, ok := meta.(*InflationMetadata)
	require.True(t, ok)
	assert.Nil(t, inflation.PolicyRate)
	assert.Nil(t, inflation.Food)
}

func TestDecodeMetadataMalformed(t *testing.T) {
	_, err := DecodeMetadata(GDPGrowth, datatypes.JSON(`{"quarter": 3}`))
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rate := 27.0
	in := &InflationMetadata{PolicyRate: &rate}

	raw, err := EncodeMetadata(in)
	require.NoError(t, err)

	meta, err := DecodeMetadata(InflationRate, raw)
	require.NoError(t, err)
	out := meta.(*InflationMetadata)
	require.NotNil(t, out.PolicyRate)
	assert.Equal(t, 27.0, *out.PolicyRate)
}

func TestEncodeMetadataNil(t *testing.T) {
	raw, err := EncodeMetadata(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)
}
