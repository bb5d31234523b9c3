package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordOK(t *testing.T) {
	cases := []struct {
		pw string
		ok bool
	}{
		{"Abc123", true},
		{"Passw0rd", true},
		{"short", false},           // too short
		{"alllowercase1", false},   // no uppercase
		{"ALLUPPERCASE1", false},   // no lowercase
		{"NoDigitsHere", false},    // no digit
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, PasswordOK(tc.pw), "password %q", tc.pw)
	}

	long := make([]byte, 61)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, PasswordOK("A1"+string(long)), "over 60 bytes")
}

func TestValidatorCustomRule(t *testing.T) {
	type body struct {
		Password string `validate:"required,userpassword"`
	}
	v := New()

	assert.NoError(t, v.Validate(&body{Password: "Abc123"}))
	assert.Error(t, v.Validate(&body{Password: "weak"}))
	assert.Error(t, v.Validate(&body{}))
}
