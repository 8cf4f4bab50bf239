package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// SSMParamSuffix marks a key whose value names an SSM parameter. For example
// DB_PASSWORD_SSM_PARAM=/dsa/prod/db-password fills DB_PASSWORD.
const SSMParamSuffix = "_SSM_PARAM"

// ParameterGetter is the subset of *ssm.Client used to resolve secrets.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewSSMParameterGetter builds an SSM client from the default AWS credential chain.
func NewSSMParameterGetter(ctx context.Context) (ParameterGetter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// HasSecretReferences reports whether any key asks for SSM resolution.
func HasSecretReferences(c map[string]string) bool {
	for key, value := range c {
		if strings.HasSuffix(key, SSMParamSuffix) && value != "" {
			return true
		}
	}
	return false
}

// ResolveSecrets replaces every <KEY>_SSM_PARAM entry with the decrypted
// parameter value stored under <KEY>. A value already set directly for <KEY>
// wins over the parameter store.
func ResolveSecrets(ctx context.Context, c map[string]string, getter ParameterGetter) error {
	for key, name := range c {
		if !strings.HasSuffix(key, SSMParamSuffix) || name == "" {
			continue
		}
		target := strings.TrimSuffix(key, SSMParamSuffix)
		if c[target] != "" {
			log.Debug().Str("key", target).Msg("secret already set, skipping parameter store")
			continue
		}

		out, err := getter.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(name),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return fmt.Errorf("resolving %s from parameter %s: %w", target, name, err)
		}
		if out.Parameter == nil {
			return fmt.Errorf("parameter %s has no value", name)
		}
		c[target] = aws.ToString(out.Parameter.Value)
		log.Info().Str("key", target).Str("parameter", name).Msg("resolved secret from parameter store")
	}
	return nil
}
