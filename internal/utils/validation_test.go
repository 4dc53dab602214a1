package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("0101"))
	assert.NoError(t, ValidateID("cityline_2025"))
	assert.NoError(t, ValidateID("area-1.2"))

	assert.Error(t, ValidateID(""))
	assert.Error(t, ValidateID("id with spaces"))
	assert.Error(t, ValidateID("<script>"))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateID(string(long)))
}

func TestValidateYear(t *testing.T) {
	assert.NoError(t, ValidateYear("2025"))
	assert.NoError(t, ValidateYear("2030"))

	assert.Error(t, ValidateYear(""))
	assert.Error(t, ValidateYear("25"))
	assert.Error(t, ValidateYear("20250"))
	assert.Error(t, ValidateYear("twenty"))
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery(""))
	assert.NoError(t, ValidateQuery("Hlemmur"))
	assert.NoError(t, ValidateQuery("Lækjartorg"))

	assert.Error(t, ValidateQuery("stop'; -- drop"))
	assert.Error(t, ValidateQuery("<b>bold</b>"))
}

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateLatitude(64.11))
	assert.Error(t, ValidateLatitude(91))
	assert.Error(t, ValidateLatitude(-91))

	assert.NoError(t, ValidateLongitude(-21.90))
	assert.Error(t, ValidateLongitude(181))
	assert.Error(t, ValidateLongitude(-181))
}

func TestValidateRadius(t *testing.T) {
	assert.NoError(t, ValidateRadius(0))
	assert.NoError(t, ValidateRadius(400))
	assert.NoError(t, ValidateRadius(10000))

	assert.Error(t, ValidateRadius(-1))
	assert.Error(t, ValidateRadius(10001))
}

func TestValidateLocationParams(t *testing.T) {
	fieldErrors := ValidateLocationParams(64.11, -21.90, 400)
	assert.Empty(t, fieldErrors)

	fieldErrors = ValidateLocationParams(95, -200, 20000)
	assert.Contains(t, fieldErrors, "lat")
	assert.Contains(t, fieldErrors, "lon")
	assert.Contains(t, fieldErrors, "radius")

	// A zero radius means "use the default" and is not an error.
	fieldErrors = ValidateLocationParams(64.11, -21.90, 0)
	assert.Empty(t, fieldErrors)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "Hlemmur", SanitizeInput("  Hlemmur  "))
	assert.Equal(t, "alert(1)", SanitizeInput("<script>alert(1)</script>"))
}

func TestValidateAndSanitizeQuery(t *testing.T) {
	query, err := ValidateAndSanitizeQuery(" Hátún ")
	assert.NoError(t, err)
	assert.Equal(t, "Hátún", query)

	_, err = ValidateAndSanitizeQuery("x'; -- y")
	assert.Error(t, err)
}
