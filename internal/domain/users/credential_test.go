package users

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialSetAndVerify(t *testing.T) {
	var c Credential
	require.NoError(t, c.Set("opensesame"))

	assert.True(t, c.Verify("opensesame"))
	assert.False(t, c.Verify("wrong"))
	assert.False(t, c.Verify(""))
}

func TestCredentialEmptyNeverVerifies(t *testing.T) {
	var c Credential
	assert.False(t, c.Verify(""))
	assert.False(t, c.Verify("anything"))
}

func TestCredentialValueScanRoundTrip(t *testing.T) {
	var c Credential
	require.NoError(t, c.Set("opensesame"))

	v, err := c.Value()
	require.NoError(t, err)

	var restored Credential
	require.NoError(t, restored.Scan(v))
	assert.True(t, restored.Verify("opensesame"))

	var fromBytes Credential
	require.NoError(t, fromBytes.Scan([]byte(v.(string))))
	assert.True(t, fromBytes.Verify("opensesame"))

	var fromNil Credential
	require.NoError(t, fromNil.Scan(nil))
	assert.False(t, fromNil.Verify("opensesame"))

	var bad Credential
	assert.Error(t, bad.Scan(42))
}

func TestUserJSONNeverExposesPassword(t *testing.T) {
	u := User{Username: "reader", Firstname: "Jo", Lastname: "Doe"}
	require.NoError(t, u.Password.Set("opensesame"))

	out, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "password")
	v, _ := u.Password.Value()
	assert.NotContains(t, string(out), v.(string))
}
