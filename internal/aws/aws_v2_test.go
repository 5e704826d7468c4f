// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/service/backup"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's shared config out of the tests.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
}

// TestOptions verifies that each Option sets its field.
func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		check func(t *testing.T, o options)
	}{
		{"profile", WithProfile("backup-admin"), func(t *testing.T, o options) { assert.Equal(t, "backup-admin", o.profile) }},
		{"empty profile", WithProfile(""), func(t *testing.T, o options) { assert.Empty(t, o.profile) }},
		{"region", WithRegion("eu-west-1"), func(t *testing.T, o options) { assert.Equal(t, "eu-west-1", o.region) }},
		{"max attempts", WithMaxAttempts(7), func(t *testing.T, o options) { assert.Equal(t, 7, o.maxAttempts) }},
		{"app id", WithAppID("bkctl/1.0"), func(t *testing.T, o options) { assert.Equal(t, "bkctl/1.0", o.appID) }},
		{"retryer", WithRetryer(func() awsv2.Retryer { return retry.NewStandard() }), func(t *testing.T, o options) {
			require.NotNil(t, o.retryer)
			assert.NotNil(t, o.retryer())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o options
			tt.opt(&o)
			tt.check(t, o)
		})
	}
}

func TestOptions_Loaders(t *testing.T) {
	assert.Empty(t, options{}.loaders())

	o := options{profile: "p", region: "us-west-2", maxAttempts: 3}
	assert.Len(t, o.loaders(), 3)

	o.appID = "bkctl"
	o.retryer = func() awsv2.Retryer { return retry.NewStandard() }
	assert.Len(t, o.loaders(), 5)
}

// TestLoadAWSConfig verifies that options reach the loaded config.
func TestLoadAWSConfig(t *testing.T) {
	isolate(t)

	cfg, err := LoadAWSConfig(context.Background(),
		WithRegion("us-east-1"),
		WithRegion("eu-central-1"),
		WithMaxAttempts(5),
		WithAppID("bkctl/test"),
	)
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, 5, cfg.RetryMaxAttempts)
	assert.Equal(t, "bkctl/test", cfg.AppID)
}

// TestLoadAWSConfig_MissingProfile verifies a named profile must exist.
func TestLoadAWSConfig_MissingProfile(t *testing.T) {
	isolate(t)

	_, err := LoadAWSConfig(context.Background(), WithProfile("no-such-profile"))
	assert.Error(t, err)
}

// TestNewBackup_Endpoint verifies the endpoint override on the Backup client.
func TestNewBackup_Endpoint(t *testing.T) {
	isolate(t)
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"))
	require.NoError(t, err)

	client := NewBackup(cfg, WithBackupEndpoint("http://localhost:4566"))
	require.NotNil(t, client)
	require.NotNil(t, client.Options().BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *client.Options().BaseEndpoint)

	assert.Nil(t, NewBackup(cfg).Options().BaseEndpoint)
}

// TestConnect verifies that both clients share region and endpoint.
func TestConnect(t *testing.T) {
	isolate(t)

	sess, err := Connect(context.Background(), Settings{Region: "ap-southeast-2", Endpoint: "http://localhost:4566", MaxAttempts: 2})
	require.NoError(t, err)

	assert.Equal(t, "ap-southeast-2", sess.Region())
	assert.Equal(t, "http://localhost:4566", sess.Endpoint)
	assert.IsType(t, &backup.Client{}, sess.Backup)
	assert.IsType(t, &s3v2.Client{}, sess.S3)
	assert.True(t, sess.S3.Options().UsePathStyle)
	assert.Equal(t, "http://localhost:4566", *sess.S3.Options().BaseEndpoint)
}

type fakeGetter struct {
	body string
	err  error
	got  *s3v2.GetObjectInput
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

// TestDownload verifies object bodies are read and errors name the object.
func TestDownload(t *testing.T) {
	getter := &fakeGetter{body: "report,data\n1,2\n"}
	body, err := Download(context.Background(), getter, "reports", "Backup/jobs.csv")
	require.NoError(t, err)
	assert.Equal(t, "report,data\n1,2\n", string(body))
	assert.Equal(t, "reports", *getter.got.Bucket)
	assert.Equal(t, "Backup/jobs.csv", *getter.got.Key)

	getter = &fakeGetter{err: errors.New("AccessDenied")}
	_, err = Download(context.Background(), getter, "reports", "x.json")
	assert.ErrorContains(t, err, "s3://reports/x.json")
	assert.ErrorContains(t, err, "AccessDenied")
}
