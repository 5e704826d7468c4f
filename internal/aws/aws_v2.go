// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"
	"io"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/backup"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/bkctl/internal/log"
)

// options are the overrides applied on top of the SDK's default chain.
type options struct {
	profile     string
	region      string
	retryer     func() awsv2.Retryer
	maxAttempts int
	appID       string
}

// Option overrides one part of the SDK config. Anything left unset comes from
// the usual AWS_* variables, shared config files and instance metadata.
type Option func(*options)

// loaders translates the overrides into SDK load options.
func (o options) loaders() []func(*config.LoadOptions) error {
	var out []func(*config.LoadOptions) error
	add := func(set bool, fn func(*config.LoadOptions) error) {
		if set {
			out = append(out, fn)
		}
	}
	add(o.profile != "", config.WithSharedConfigProfile(o.profile))
	add(o.region != "", config.WithRegion(o.region))
	add(o.retryer != nil, config.WithRetryer(o.retryer))
	add(o.maxAttempts > 0, config.WithRetryMaxAttempts(o.maxAttempts))
	add(o.appID != "", config.WithAppID(o.appID))
	return out
}

// LoadAWSConfig resolves SDK config from the default chain plus opts.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	loaders := o.loaders()
	log.Debugf("loading aws config: profile=%q, region=%q, overrides=%d", o.profile, o.region, len(loaders))

	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return awsv2.Config{}, err
	}
	log.Debugf("aws config loaded: region=%s", cfg.Region)
	return cfg, nil
}

func NewBackup(cfg awsv2.Config, optFns ...func(*backup.Options)) *backup.Client {
	return backup.NewFromConfig(cfg, optFns...)
}

// NewS3 builds the client report-fetch downloads with.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}

// WithProfile selects a named shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer replaces the SDK's standard retryer.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// WithMaxAttempts caps the attempts of the SDK's standard retryer.
func WithMaxAttempts(n int) Option {
	return func(o *options) { o.maxAttempts = n }
}

// WithAppID sets the application ID reported in the user agent.
func WithAppID(id string) Option {
	return func(o *options) { o.appID = id }
}

// WithBackupEndpoint points the Backup client at a custom endpoint URL.
func WithBackupEndpoint(url string) func(*backup.Options) {
	return func(o *backup.Options) {
		o.BaseEndpoint = awsv2.String(url)
	}
}

// WithS3Endpoint points the S3 client at a custom endpoint URL. Custom
// endpoints are usually emulators, so path-style addressing is used.
func WithS3Endpoint(url string) func(*s3v2.Options) {
	return func(o *s3v2.Options) {
		o.BaseEndpoint = awsv2.String(url)
		o.UsePathStyle = true
	}
}

// Settings are the session flags of a command.
type Settings struct {
	Profile     string
	Region      string
	Endpoint    string
	MaxAttempts int
	AppID       string
}

// Session is the loaded config plus the clients built from it.
type Session struct {
	Config   awsv2.Config
	Backup   *backup.Client
	S3       *s3v2.Client
	Endpoint string
}

// Region returns the region the session resolved to.
func (s *Session) Region() string {
	return s.Config.Region
}

// Connect loads config for the settings and builds the clients. The S3
// client is only used for report downloads and shares the endpoint override.
func Connect(ctx context.Context, s Settings) (*Session, error) {
	cfg, err := LoadAWSConfig(ctx,
		WithProfile(s.Profile),
		WithRegion(s.Region),
		WithMaxAttempts(s.MaxAttempts),
		WithAppID(s.AppID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var (
		backupOpts []func(*backup.Options)
		s3Opts     []func(*s3v2.Options)
	)
	if s.Endpoint != "" {
		backupOpts = append(backupOpts, WithBackupEndpoint(s.Endpoint))
		s3Opts = append(s3Opts, WithS3Endpoint(s.Endpoint))
	}

	return &Session{
		Config:   cfg,
		Backup:   NewBackup(cfg, backupOpts...),
		S3:       NewS3(cfg, s3Opts...),
		Endpoint: s.Endpoint,
	}, nil
}

// ObjectGetter is the part of the S3 client report downloads need.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// Download reads one object into memory.
func Download(ctx context.Context, client ObjectGetter, bucket, key string) ([]byte, error) {
	out, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	log.Debugf("downloaded: bucket=%s, key=%s, bytes=%d", bucket, key, len(body))
	return body, nil
}
