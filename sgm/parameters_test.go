package sgm_test

import (
	"strings"
	"testing"

	"github.com/sgmvision/camsgm/sgm"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameters_Valid(t *testing.T) {
	p := sgm.DefaultParameters(480, 640)
	require.NoError(t, p.Validate())
	require.Equal(t, sgm.Grey, p.ImageType)
}

func TestValidate_RejectsNonPositiveDimensions(t *testing.T) {
	p := sgm.DefaultParameters(0, 640)
	require.ErrorIs(t, p.Validate(), sgm.ErrInvalidParameters)
}

func TestValidate_RejectsMaskRadiusBelowOne(t *testing.T) {
	p := sgm.DefaultParameters(10, 10)
	p.CensusMaskRadius = 0
	require.ErrorIs(t, p.Validate(), sgm.ErrInvalidMaskRadius)
}

func TestValidate_AllowsMaskRadiusAboveSeven(t *testing.T) {
	p := sgm.DefaultParameters(10, 10)
	p.CensusMaskRadius = 12
	require.NoError(t, p.Validate())
}

func TestLoadParametersYAML_RoundTrips(t *testing.T) {
	doc := `
rows: 100
cols: 200
maxparalleltasks: 8
maxdisparity: 48
censusmaskradius: 4
lowpenaltycoeff: 0.1
highpenaltycoeff: 0.25
intensitythreshold: 20
disparitypathlengththreshold: 2
costmethodpower: 2
`
	p, err := sgm.LoadParametersYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 100, p.Rows)
	require.Equal(t, 200, p.Cols)
	require.Equal(t, 48, p.MaxDisparity)
	require.Equal(t, 4, p.CensusMaskRadius)
	require.NoError(t, p.Validate())
}

func TestImageType_String(t *testing.T) {
	require.Equal(t, "Grey", sgm.Grey.String())
	require.Equal(t, "MaskedColor", sgm.MaskedColor.String())
}
