package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartyHeaderMapping(t *testing.T) {
	raw := "Name,Station,Mobile\nAcme,Pune,9999\n"

	result, err := ParsePartyCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, PartyRow{Name: "Acme", Station: "Pune", Mobile: "9999"}, result.Rows[0])
}

func TestPartyHeaderOrderIndependent(t *testing.T) {
	raw := "Mobile,Name,Station\n9999,Acme,Pune\n"

	result, err := ParsePartyCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, PartyRow{Name: "Acme", Station: "Pune", Mobile: "9999"}, result.Rows[0])
}

func TestPartyPositionalFallback(t *testing.T) {
	raw := "Acme,Pune,9999\nGlobex,Nashik,8888\n"

	result, err := ParsePartyCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, PartyRow{Name: "Acme", Station: "Pune", Mobile: "9999"}, result.Rows[0])
	assert.Equal(t, PartyRow{Name: "Globex", Station: "Nashik", Mobile: "8888"}, result.Rows[1])
}

func TestPartyTabDelimiterWinsOverQuotedCommas(t *testing.T) {
	raw := "Name\tStation\n\"Acme, Inc\"\tPune\n"

	result, err := ParsePartyCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Acme, Inc", result.Rows[0].Name)
	assert.Equal(t, "Pune", result.Rows[0].Station)
}

func TestPartySingleColumnFallsBackPositionally(t *testing.T) {
	raw := "Sharma Traders\nGupta & Sons\n"

	result, err := ParsePartyCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	assert.Equal(t, "Sharma Traders", result.Rows[0].Name)
	assert.Equal(t, 0, result.Rows[0].Index)
	assert.Equal(t, "Gupta & Sons", result.Rows[1].Name)
	assert.Equal(t, 1, result.Rows[1].Index)
}

func TestPartySkipsEmptyNames(t *testing.T) {
	raw := "Name,Station\nAcme,Pune\n,Nashik\n"

	result, err := ParsePartyCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 1, result.Skipped[0].Index)
}

func TestPartyMissingOptionalColumns(t *testing.T) {
	raw := "Name\nAcme\n"

	result, err := ParsePartyCSV(raw)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, PartyRow{Name: "Acme"}, result.Rows[0])
}
