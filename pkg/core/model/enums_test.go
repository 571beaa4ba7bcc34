package model_test

import (
	"testing"

	"github.com/rentautos/rentaweb/pkg/core/model"
	"github.com/stretchr/testify/assert"
)

func TestParseGearbox(t *testing.T) {
	g, err := model.ParseGearbox("manual")
	assert.NoError(t, err)
	assert.Equal(t, model.GearboxManual, g)

	g, err = model.ParseGearbox("automatic")
	assert.NoError(t, err)
	assert.Equal(t, model.GearboxAutomatic, g)

	_, err = model.ParseGearbox("semi-automatic")
	assert.ErrorIs(t, err, model.ErrUnknownGearbox)

	assert.ErrorIs(
		t, model.Gearbox("").Validate(), model.ErrUnknownGearbox,
	)
}

func TestParseDocumentType(t *testing.T) {
	for _, valid := range []string{"passport", "dni", "cedula"} {
		d, err := model.ParseDocumentType(valid)
		assert.NoError(t, err)
		assert.Equal(t, model.DocumentType(valid), d)
	}
	_, err := model.ParseDocumentType("driver-license")
	assert.ErrorIs(t, err, model.ErrUnknownDocumentType)
}
