//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Copyright (C) 2026 Nyein Phyo nphyo.dev@gmail.com
//
// This file is part of Wrangler.
//
// Wrangler is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wrangler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wrangler. If not, see https://www.gnu.org/licenses/.

package readers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nphyo/wrangler/table"
)

// S3ReaderError wraps structured error information for the S3 reader.
type S3ReaderError struct {
	Op  string
	Err error
}

func (e *S3ReaderError) Error() string {
	return fmt.Sprintf("s3 reader %s: %v", e.Op, e.Err)
}

func (e *S3ReaderError) Unwrap() error {
	return e.Err
}

// S3ReaderOptions configures the S3 CSV reader.
type S3ReaderOptions struct {
	Bucket      string
	Key         string
	Region      string
	EndpointURL string            // Custom endpoint for S3-compatible stores
	CSVOptions  []ReaderOptionCSV // Passed through to the CSV reader
}

// ReaderOptionS3 allows functional customization of S3CSVReader.
type ReaderOptionS3 func(*S3ReaderOptions)

func WithS3Bucket(bucket string) ReaderOptionS3 {
	return func(o *S3ReaderOptions) { o.Bucket = bucket }
}

func WithS3Key(key string) ReaderOptionS3 {
	return func(o *S3ReaderOptions) { o.Key = key }
}

func WithS3Region(region string) ReaderOptionS3 {
	return func(o *S3ReaderOptions) { o.Region = region }
}

func WithS3Endpoint(url string) ReaderOptionS3 {
	return func(o *S3ReaderOptions) { o.EndpointURL = url }
}

func WithS3CSVOptions(options ...ReaderOptionCSV) ReaderOptionS3 {
	return func(o *S3ReaderOptions) { o.CSVOptions = options }
}

// S3CSVReader implements wrangler.TableSource for CSV objects stored in
// S3 or an S3-compatible store. The object body is streamed into the CSV
// reader; credentials come from the default AWS credential chain.
type S3CSVReader struct {
	opts   S3ReaderOptions
	client *s3.Client
	csv    *CSVReader
}

// NewS3CSVReader creates an S3 CSV reader with the given options.
func NewS3CSVReader(ctx context.Context, options ...ReaderOptionS3) (*S3CSVReader, error) {
	opts := S3ReaderOptions{}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.Bucket == "" {
		return nil, &S3ReaderError{Op: "validate", Err: fmt.Errorf("bucket is required")}
	}
	if opts.Key == "" {
		return nil, &S3ReaderError{Op: "validate", Err: fmt.Errorf("key is required")}
	}

	var cfgOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(opts.Region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, &S3ReaderError{Op: "create_aws_config", Err: err}
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.EndpointURL != "" {
			o.BaseEndpoint = aws.String(opts.EndpointURL)
		}
	})

	return &S3CSVReader{opts: opts, client: client}, nil
}

// ReadAll implements the wrangler.TableSource interface.
func (s *S3CSVReader) ReadAll(ctx context.Context) (*table.Table, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(s.opts.Key),
	})
	if err != nil {
		return nil, &S3ReaderError{Op: "get_object", Err: err}
	}

	s.csv = NewCSVReader(out.Body, s.opts.CSVOptions...)
	tbl, err := s.csv.ReadAll(ctx)
	if err != nil {
		return nil, &S3ReaderError{Op: "parse_object", Err: err}
	}
	return tbl, nil
}

// Close implements the wrangler.TableSource interface.
func (s *S3CSVReader) Close() error {
	if s.csv != nil {
		return s.csv.Close()
	}
	return nil
}
