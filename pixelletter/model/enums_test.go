package model

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {

	for _, a := range []Action{ActionLetter, ActionFax, ActionLetterAndFax} {
		parsed, err := ParseAction(int(a))
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	_, err := ParseAction(4)
	assert.Error(t, err)
	_, err = ParseAction(0)
	assert.Error(t, err)
}

func TestParseLocation(t *testing.T) {

	for _, l := range []Location{LocationMuenchen, LocationHausleiten, LocationHamburg} {
		parsed, err := ParseLocation(int(l))
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}

	_, err := ParseLocation(5)
	assert.Error(t, err)
}

func TestParseAddOption(t *testing.T) {

	valid := []AddOption{
		AddOptionEinschreiben, AddOptionRueckschein, AddOptionEigenhaendig,
		AddOptionEinschreibenEinwurf, AddOptionColor, AddOptionGreen,
	}
	for _, o := range valid {
		parsed, err := ParseAddOption(int(o))
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}

	// The vocabulary is sparse, the neighbours are not valid codes.
	for _, v := range []int{26, 31, 32, 34, 43, 45, 0} {
		_, err := ParseAddOption(v)
		assert.Error(t, err, "value %d must not parse", v)
	}
}

type addOptionDoc struct {
	XMLName    xml.Name      `xml:"options"`
	AddOptions AddOptionList `xml:"addoption,omitempty"`
}

func TestAddOptionList_RoundTrip(t *testing.T) {

	out, err := xml.Marshal(addOptionDoc{AddOptions: AddOptionList{AddOptionEinschreiben, AddOptionColor}})
	require.NoError(t, err)
	assert.Equal(t, "<options><addoption>27,33</addoption></options>", string(out))

	var doc addOptionDoc
	require.NoError(t, xml.Unmarshal(out, &doc))
	assert.Equal(t, AddOptionList{AddOptionEinschreiben, AddOptionColor}, doc.AddOptions)
}

func TestAddOptionList_DropsUnknownTokens(t *testing.T) {

	var doc addOptionDoc
	require.NoError(t, xml.Unmarshal([]byte("<options><addoption>27,999,44</addoption></options>"), &doc))
	assert.Equal(t, AddOptionList{AddOptionEinschreiben, AddOptionGreen}, doc.AddOptions)

	require.NoError(t, xml.Unmarshal([]byte("<options><addoption>abc,,-5</addoption></options>"), &doc))
	assert.Empty(t, doc.AddOptions)
}

func TestAddOptionList_EmptyIsOmitted(t *testing.T) {

	out, err := xml.Marshal(addOptionDoc{})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "addoption")
}

type yesNoDoc struct {
	XMLName xml.Name `xml:"auth"`
	AGB     YesNo    `xml:"agb"`
}

func TestYesNo_Encoding(t *testing.T) {

	out, err := xml.Marshal(yesNoDoc{AGB: true})
	require.NoError(t, err)
	assert.Equal(t, "<auth><agb>ja</agb></auth>", string(out))

	out, err = xml.Marshal(yesNoDoc{AGB: false})
	require.NoError(t, err)
	assert.Equal(t, "<auth><agb>nein</agb></auth>", string(out))
}

func TestYesNo_Decoding(t *testing.T) {

	var doc yesNoDoc
	require.NoError(t, xml.Unmarshal([]byte("<auth><agb>ja</agb></auth>"), &doc))
	assert.True(t, bool(doc.AGB))

	require.NoError(t, xml.Unmarshal([]byte("<auth><agb>nein</agb></auth>"), &doc))
	assert.False(t, bool(doc.AGB))

	err := xml.Unmarshal([]byte("<auth><agb>maybe</agb></auth>"), &doc)
	assert.ErrorContains(t, err, "expected 'ja' or 'nein'")
}

func TestAction_StrictDecode(t *testing.T) {

	type doc struct {
		XMLName xml.Name `xml:"options"`
		Action  Action   `xml:"action"`
	}

	var d doc
	require.NoError(t, xml.Unmarshal([]byte("<options><action>3</action></options>"), &d))
	assert.Equal(t, ActionLetterAndFax, d.Action)

	// Unlike the addoption list, scalar enums never default silently.
	err := xml.Unmarshal([]byte("<options><action>9</action></options>"), &d)
	assert.ErrorContains(t, err, "invalid action")
}
