package s3_test

import (
	"testing"
	"tripdesk/config"
	"tripdesk/infras/otel/mocks"
	"tripdesk/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = "http://minio:9000"
	cfg.External.S3.BucketName = "tripdesk"

	assert.Equal(t, "http://minio:9000/tripdesk/quotation-versions/q-1/v2.json", s3.ObjectURL(cfg, "quotation-versions/q-1/v2.json"))

	cfg.External.S3.PublicDomain = "https://cdn.tripdesk.io"

	assert.Equal(t, "https://cdn.tripdesk.io/quotation-versions/q-1/v2.json", s3.ObjectURL(cfg, "quotation-versions/q-1/v2.json"))
}

func TestNew_WithoutBucketIsDisabled(t *testing.T) {
	svc := s3.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, svc.Enabled())
}
