package config

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"gopkg.in/yaml.v3"
)

// Secrets is the YAML document kept in Parameter Store.
// Empty fields leave the environment value untouched.
type Secrets struct {
	DBPassword   string `yaml:"db_password"`
	JWTSecret    string `yaml:"jwt_secret"`
	SMTPPassword string `yaml:"smtp_password"`
	SlackToken   string `yaml:"slack_token"`
}

func (c *Config) applySSMSecrets(paramName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.Storage.Region))
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(awsCfg)
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("get parameter %s: %w", paramName, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return fmt.Errorf("parameter %s has no value", paramName)
	}

	secrets, err := ParseSecrets([]byte(*out.Parameter.Value))
	if err != nil {
		return err
	}
	c.ApplySecrets(secrets)
	return nil
}

// ParseSecrets decodes the Parameter Store YAML payload.
func ParseSecrets(data []byte) (Secrets, error) {
	var s Secrets
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Secrets{}, fmt.Errorf("unmarshal secrets yaml: %w", err)
	}
	return s, nil
}

// ApplySecrets overlays non-empty secrets onto the configuration.
func (c *Config) ApplySecrets(s Secrets) {
	if s.DBPassword != "" {
		c.Database.Password = s.DBPassword
	}
	if s.JWTSecret != "" {
		c.JWT.Secret = s.JWTSecret
	}
	if s.SMTPPassword != "" {
		c.Mail.Password = s.SMTPPassword
	}
	if s.SlackToken != "" {
		c.Slack.Token = s.SlackToken
	}
}
