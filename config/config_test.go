package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("DSA_CONFIG_TEST", "a=b")
	c := New()
	assert.Equal(t, "a=b", c["DSA_CONFIG_TEST"])
}

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":             "9000",
		"BAD_INT":          "nine",
		"SEED_DATABASE":    "false",
		"SEED_ONLY":        "maybe",
		"ACCEPTED_ORIGINS": " http://a.test , ,http://b.test",
		"EMPTY":            "",
		"TIMEOUT":          "7",
	}

	assert.Equal(t, 9000, GetInt(c, "PORT", 8000))
	assert.Equal(t, 8000, GetInt(c, "BAD_INT", 8000))
	assert.Equal(t, 8000, GetInt(c, "MISSING", 8000))
	assert.Equal(t, 8000, GetInt(nil, "PORT", 8000))

	assert.False(t, GetBool(c, "SEED_DATABASE", true))
	assert.True(t, GetBool(c, "SEED_ONLY", true))
	assert.True(t, GetBool(c, "MISSING", true))

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetStrings(c, "ACCEPTED_ORIGINS", nil))
	assert.Equal(t, []string{"x"}, GetStrings(c, "EMPTY", []string{"x"}))

	assert.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
	assert.Equal(t, 7*time.Second, GetSeconds(c, "TIMEOUT", 180))
}

type fakeParameterGetter struct {
	values map[string]string
	calls  []string
}

func (f *fakeParameterGetter) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	name := aws.ToString(in.Name)
	f.calls = append(f.calls, name)
	v, ok := f.values[name]
	if !ok {
		return nil, errors.New("ParameterNotFound")
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Name: in.Name, Value: aws.String(v)}}, nil
}

func TestResolveSecrets(t *testing.T) {
	getter := &fakeParameterGetter{values: map[string]string{"/dsa/db-password": "s3cret"}}
	c := map[string]string{
		"DB_PASSWORD_SSM_PARAM": "/dsa/db-password",
		"DB_USER":               "postgres",
		"DB_USER_SSM_PARAM":     "/dsa/db-user",
	}

	require.True(t, HasSecretReferences(c))
	require.NoError(t, ResolveSecrets(context.Background(), c, getter))

	assert.Equal(t, "s3cret", c["DB_PASSWORD"])
	assert.Equal(t, "postgres", c["DB_USER"])
	assert.Equal(t, []string{"/dsa/db-password"}, getter.calls)
}

func TestResolveSecretsMissingParameter(t *testing.T) {
	getter := &fakeParameterGetter{values: map[string]string{}}
	c := map[string]string{"DB_PASSWORD_SSM_PARAM": "/dsa/missing"}

	err := ResolveSecrets(context.Background(), c, getter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.False(t, HasSecretReferences(map[string]string{"PORT": "8000"}))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DSA_DOTENV_TEST=loaded\nDSA_DOTENV_KEEP=from-file\n"), 0o600))

	t.Setenv("DSA_DOTENV_KEEP", "from-env")
	t.Cleanup(func() { os.Unsetenv("DSA_DOTENV_TEST") })

	path, ok := LoadDotEnv(filepath.Join(dir, "missing.env"), envPath)
	require.True(t, ok)
	assert.Equal(t, envPath, path)
	assert.Equal(t, "loaded", os.Getenv("DSA_DOTENV_TEST"))
	assert.Equal(t, "from-env", os.Getenv("DSA_DOTENV_KEEP"))

	_, ok = LoadDotEnv(filepath.Join(dir, "nope.env"))
	assert.False(t, ok)
}
