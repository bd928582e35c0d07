package aws

import (
	"context"
	"fmt"
	"os"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// LoadAWSConfig loads the default AWS config. When AWS_ENDPOINT is set (LocalStack)
// every client targets that URL, and AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY are
// used as static credentials.
func LoadAWSConfig(ctx context.Context) (sdkaws.Config, error) {
	var opts []func(*config.LoadOptions) error

	endpoint := os.Getenv("AWS_ENDPOINT")
	if endpoint != "" {
		key, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
		if key != "" && secret != "" {
			opts = append(opts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(key, secret, ""),
			))
		}
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return cfg, fmt.Errorf("failed to load aws config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = os.Getenv("AWS_REGION")
	}

	if endpoint != "" {
		signingRegion := cfg.Region
		cfg.EndpointResolverWithOptions = sdkaws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (sdkaws.Endpoint, error) {
				sr := signingRegion
				if sr == "" {
					sr = region
				}
				return sdkaws.Endpoint{URL: endpoint, SigningRegion: sr, HostnameImmutable: true}, nil
			})
	}

	return cfg, nil
}
