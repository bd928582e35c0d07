package aws

import (
	"context"
	"testing"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsAPI struct {
	value *string
	calls int
}

func (f *fakeSecretsAPI) GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	return &secretsmanager.GetSecretValueOutput{SecretString: f.value}, nil
}

func TestGetSecretMap_FlattensScalars(t *testing.T) {
	api := &fakeSecretsAPI{value: sdkaws.String(`{"POSTGRES_USER":"store","POSTGRES_PORT":5432,"DEBUG":true,"EMPTY":null}`)}
	c := newSecretsClient(api)

	m, err := c.GetSecretMap(context.Background(), "sportsstore/DB_CREDENTIALS")
	require.NoError(t, err)
	assert.Equal(t, "store", m["POSTGRES_USER"])
	assert.Equal(t, "5432", m["POSTGRES_PORT"])
	assert.Equal(t, "true", m["DEBUG"])
	assert.Equal(t, "", m["EMPTY"])

	_, err = c.GetSecretMap(context.Background(), "sportsstore/DB_CREDENTIALS")
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
}

func TestGetSecretMap_Rejects(t *testing.T) {
	_, err := newSecretsClient(&fakeSecretsAPI{}).GetSecretMap(context.Background(), "binary")
	assert.Error(t, err)

	_, err = newSecretsClient(&fakeSecretsAPI{value: sdkaws.String(`["a"]`)}).GetSecretMap(context.Background(), "list")
	assert.Error(t, err)

	_, err = newSecretsClient(&fakeSecretsAPI{value: sdkaws.String(`{"DB":{"user":"x"}}`)}).GetSecretMap(context.Background(), "nested")
	assert.Error(t, err)
}
