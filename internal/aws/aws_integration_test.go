// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package aws

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/backup"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegration_ListBackupVaults lists vaults with the default credential
// chain. Every account has at least the Default vault once Backup is used.
func TestIntegration_ListBackupVaults(t *testing.T) {
	ctx := context.Background()

	sess, err := Connect(ctx, Settings{Region: "us-east-1"})
	require.NoError(t, err)

	out, err := sess.Backup.ListBackupVaults(ctx, &backup.ListBackupVaultsInput{MaxResults: awsv2.Int32(10)})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

// TestIntegration_Download round-trips an object through a scratch bucket.
func TestIntegration_Download(t *testing.T) {
	ctx := context.Background()

	sess, err := Connect(ctx, Settings{Region: "us-east-1"})
	require.NoError(t, err)
	client := sess.S3

	bucket := fmt.Sprintf("bkctl-test-%d", time.Now().UnixNano())
	key := "reports/report.json"
	data := []byte(`{"report":"ok"}`)

	_, err = client.CreateBucket(ctx, &s3v2.CreateBucketInput{Bucket: awsv2.String(bucket)})
	require.NoError(t, err)
	defer func() {
		client.DeleteObject(ctx, &s3v2.DeleteObjectInput{Bucket: awsv2.String(bucket), Key: awsv2.String(key)})
		client.DeleteBucket(ctx, &s3v2.DeleteBucketInput{Bucket: awsv2.String(bucket)})
	}()

	_, err = client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
		Body:   bytes.NewReader(data),
	})
	require.NoError(t, err)

	got, err := Download(ctx, client, bucket, key)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}
