package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "HIGHspeed12@", true},
		{"exactly eight", "Ab1@abcd", true},
		{"too short", "Ab1@abc", false},
		{"no uppercase", "highspeed12@", false},
		{"no lowercase", "HIGHSPEED12@", false},
		{"no digit", "HIGHspeed@@", false},
		{"no special", "HIGHspeed12", false},
		{"special outside set", "HIGHspeed12#", false},
		{"space not allowed", "HIGH speed12@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"9809461773", "9841234567", "+9779851234567", "9779861234567", "09721234567"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{"", "1234567890", "980946177", "98094617731", "+19809461773", "98a9461773"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("kingshahi163@gmail.com"))
	assert.True(t, ValidateEmail("first.last+tag@mail-server.co.uk"))

	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("no-at-sign.com"))
	assert.False(t, ValidateEmail("user@nodot"))
	assert.False(t, ValidateEmail("user name@example.com"))
}

func TestValidateURL(t *testing.T) {
	assert.True(t, ValidateURL("https://example.com/pic.png"))
	assert.True(t, ValidateURL("http://www.cdn.example.org/a/b?size=2"))

	assert.False(t, ValidateURL("example.com/pic.png"))
	assert.False(t, ValidateURL("ftp://example.com/pic.png"))
	assert.False(t, ValidateURL("not a url"))
}

func TestValidateUUID(t *testing.T) {
	assert.True(t, ValidateUUID("6f1c2f4e-8a52-4f7e-9d3a-3f6b1a2c9e10"))
	assert.False(t, ValidateUUID(""))
	assert.False(t, ValidateUUID("not-a-uuid"))
	assert.False(t, ValidateUUID("6f1c2f4e-8a52-4f7e-9d3a"))
}

func TestFirst_StopsAtFirstFailure(t *testing.T) {
	evaluated := 0
	counting := func(ok bool) func() bool {
		return func() bool {
			evaluated++
			return ok
		}
	}

	err := First(
		Rule{Field: "a", Valid: counting(true), Message: "a failed"},
		Rule{Field: "b", Valid: counting(false), Message: "b failed"},
		Rule{Field: "c", Valid: counting(false), Message: "c failed"},
	)

	if assert.NotNil(t, err) {
		assert.Equal(t, "b", err.Field)
		assert.Equal(t, "b failed", err.Message)
	}
	assert.Equal(t, 2, evaluated)
}

func TestFirst_AllPass(t *testing.T) {
	assert.Nil(t, First(
		Required("name", "value", "name required"),
		Optional("pic", "", ValidateURL, "bad url"),
		Check("email", "a@b.co", ValidateEmail, "bad email"),
	))
}

func TestRequired_TrimsWhitespace(t *testing.T) {
	err := First(Required("name", "   ", "name required"))
	if assert.NotNil(t, err) {
		assert.Equal(t, "name", err.Field)
	}
}

func TestNotEmpty_KeepsWhitespace(t *testing.T) {
	assert.Nil(t, First(NotEmpty("password", "   ", "password required")))

	err := First(NotEmpty("password", "", "password required"))
	if assert.NotNil(t, err) {
		assert.Equal(t, "password required", err.Message)
	}
}
