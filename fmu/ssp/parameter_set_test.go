package ssp

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parsedSet struct {
	XMLName xml.Name `xml:"ParameterSet"`
	Version string   `xml:"version,attr"`
	Name    string   `xml:"name,attr"`
	Params  []struct {
		Name   string `xml:"name,attr"`
		Values []struct {
			XMLName xml.Name
			Value   string `xml:"value,attr"`
		} `xml:",any"`
	} `xml:"Parameters>Parameter"`
}

func parse(t *testing.T, data []byte) parsedSet {
	t.Helper()
	var ps parsedSet
	require.NoError(t, xml.Unmarshal(data, &ps))
	return ps
}

func TestMarshal_AddReal_WritesTypedValue(t *testing.T) {
	s := NewParameterSet(DefaultName).AddReal("gain", "2.5")
	data, err := s.Marshal()
	require.NoError(t, err)

	ps := parse(t, data)
	assert.Equal(t, NamespaceParameterValues, ps.XMLName.Space)
	assert.Equal(t, "1.0", ps.Version)
	assert.Equal(t, "Default", ps.Name)
	require.Len(t, ps.Params, 1)
	assert.Equal(t, "gain", ps.Params[0].Name)
	require.Len(t, ps.Params[0].Values, 1)
	assert.Equal(t, "Real", ps.Params[0].Values[0].XMLName.Local)
	assert.Equal(t, NamespaceParameterValues, ps.Params[0].Values[0].XMLName.Space)
	assert.Equal(t, "2.5", ps.Params[0].Values[0].Value)
}

func TestMarshal_DeclaresBothNamespacesOnce(t *testing.T) {
	data, err := NewParameterSet("p").AddString("a", "x").AddString("b", "y").Marshal()
	require.NoError(t, err)
	doc := string(data)

	assert.True(t, strings.HasPrefix(doc, xml.Header))
	assert.Equal(t, 1, strings.Count(doc, `xmlns:ssv="`+NamespaceParameterValues+`"`))
	assert.Equal(t, 1, strings.Count(doc, `xmlns:ssc="`+NamespaceCommon+`"`))
	assert.Contains(t, doc, `<ssv:Parameter name="a">`)
	assert.Contains(t, doc, `<ssv:String value="x"></ssv:String>`)
}

func TestMarshal_PreservesOrderAndTypes(t *testing.T) {
	s := NewParameterSet("mixed")
	require.NoError(t, s.Add("scenario_input", "string", "t;L;0,0;1,1\ny;ZOH;0,0"))
	require.NoError(t, s.Add("n", "INTEGER", "3"))
	require.NoError(t, s.Add("on", "boolean", "true"))
	require.NoError(t, s.Add("k", "Real", ""))

	data, err := s.Marshal()
	require.NoError(t, err)
	ps := parse(t, data)

	require.Len(t, ps.Params, 4)
	wantTypes := []string{"String", "Integer", "Boolean", "Real"}
	wantValues := []string{"t;L;0,0;1,1\ny;ZOH;0,0", "3", "true", ""}
	for i, p := range ps.Params {
		require.Len(t, p.Values, 1)
		assert.Equal(t, wantTypes[i], p.Values[0].XMLName.Local)
		assert.Equal(t, wantValues[i], p.Values[0].Value)
	}
}

func TestAdd_UnsupportedType_FailsImmediately(t *testing.T) {
	s := NewParameterSet("x")
	err := s.Add("bad", "float", "1")

	var ute *UnsupportedTypeError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "float", ute.Token)
	assert.Contains(t, err.Error(), "bad")
	assert.Empty(t, s.Parameters())
}

func TestParseType_NormalizesCase(t *testing.T) {
	tests := map[string]Type{
		"string": TypeString, "String": TypeString, "sTRING": TypeString,
		"real": TypeReal, "REAL": TypeReal,
		"integer": TypeInteger, "boolean": TypeBoolean,
	}
	for in, want := range tests {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "int", "double", "Enumeration"} {
		_, err := ParseType(bad)
		assert.Error(t, err, bad)
	}
}

func TestExtend_AppendsTypedParameters(t *testing.T) {
	s := NewParameterSet("x")
	require.NoError(t, s.Extend(
		Parameter{Name: "a", Type: TypeBoolean, Value: "false"},
		Parameter{Name: "b", Type: TypeInteger},
	))
	assert.Equal(t, []Parameter{
		{Name: "a", Type: TypeBoolean, Value: "false"},
		{Name: "b", Type: TypeInteger},
	}, s.Parameters())
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "parameters.ssv")
	require.NoError(t, NewParameterSet("Default").AddString("scenario_input", "").WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	ps := parse(t, data)
	require.Len(t, ps.Params, 1)
	assert.Equal(t, "scenario_input", ps.Params[0].Name)
	assert.Equal(t, "", ps.Params[0].Values[0].Value)
}

func TestExtend_OutOfRangeType_FailsAndAppendsNothing(t *testing.T) {
	// GIVEN a set with one valid parameter
	s := NewParameterSet("x").AddReal("gain", "2.5")

	// WHEN extending with a type outside the four kinds
	err := s.Extend(
		Parameter{Name: "ok", Type: TypeString, Value: "v"},
		Parameter{Name: "a", Type: Type(7), Value: "1"},
	)

	// THEN construction fails and the set is unchanged
	var ute *UnsupportedTypeError
	require.True(t, errors.As(err, &ute), "got %v", err)
	assert.Equal(t, "Type(7)", ute.Token)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Len(t, s.Parameters(), 1)

	data, err := s.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Type(7)")
	parse(t, data)
}
