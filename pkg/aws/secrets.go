package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type secretsAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsClient loads JSON key/value secrets, such as credential bundles,
// and keeps the decoded maps for the life of the process.
type SecretsClient struct {
	api    secretsAPI
	mu     sync.Mutex
	loaded map[string]map[string]string
}

func NewSecretsClient(cfg sdkaws.Config) *SecretsClient {
	return newSecretsClient(secretsmanager.NewFromConfig(cfg))
}

func newSecretsClient(api secretsAPI) *SecretsClient {
	return &SecretsClient{api: api, loaded: make(map[string]map[string]string)}
}

// GetSecretMap returns the secret name decoded as a flat JSON object.
// Numbers and booleans are kept in their JSON text form, so a secret holding
// {"POSTGRES_PORT": 5432} yields "5432". Nested values are rejected.
func (s *SecretsClient) GetSecretMap(ctx context.Context, name string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.loaded[name]; ok {
		return m, nil
	}

	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: sdkaws.String(name)})
	if err != nil {
		return nil, fmt.Errorf("read secret %s: %w", name, err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s is binary, want a JSON object", name)
	}

	m, err := decodeSecretMap([]byte(*out.SecretString))
	if err != nil {
		return nil, fmt.Errorf("secret %s: %w", name, err)
	}
	s.loaded[name] = m
	return m, nil
}

func decodeSecretMap(data []byte) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("not a JSON object: %w", err)
	}
	m := make(map[string]string, len(raw))
	for k, v := range raw {
		var str string
		if err := json.Unmarshal(v, &str); err == nil {
			m[k] = str
			continue
		}
		var scalar interface{}
		if err := json.Unmarshal(v, &scalar); err != nil {
			return nil, fmt.Errorf("key %s: %w", k, err)
		}
		switch x := scalar.(type) {
		case float64:
			m[k] = string(v)
		case bool:
			m[k] = strconv.FormatBool(x)
		case nil:
			m[k] = ""
		default:
			return nil, fmt.Errorf("key %s holds a nested value", k)
		}
	}
	return m, nil
}
